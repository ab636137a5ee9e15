package restaurant

import "context"

// Reader is the read-only view the analysis and partnership services
// depend on. Everything is a fresh snapshot per request.
type Reader interface {
	All(ctx context.Context) ([]*Restaurant, error)
	WithinRadius(ctx context.Context, lat, lng float64, radiusMeters int) ([]*Restaurant, error)

	// ReviewsForPlaces returns reviews for the given place IDs,
	// newest first.
	ReviewsForPlaces(ctx context.Context, placeIDs []int64) ([]*Review, error)
}

// Writer is used by the seeding pipeline only.
type Writer interface {
	UpsertRestaurant(ctx context.Context, r *Restaurant) error

	// InsertReviewIfAbsent skips rows whose (placeID, sourceReviewID)
	// pair already exists. Returns true when a row was written.
	InsertReviewIfAbsent(ctx context.Context, rv *Review) (bool, error)
}

// Repository is the full persistence surface.
type Repository interface {
	Reader
	Writer
}
