package restaurant

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const restaurantColumns = `
	kakao_place_id, restaurant_name, category, rating, rating_count,
	review_count, road_address, number_address, business_time, kakao_url,
	latitude, longitude
`

func (p *PostgresRepository) All(ctx context.Context) ([]*Restaurant, error) {
	rows, err := p.db.Query(ctx, `SELECT `+restaurantColumns+` FROM restaurant`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

// WithinRadius pushes the haversine predicate into SQL so the radius
// subset never leaves the database.
func (p *PostgresRepository) WithinRadius(
	ctx context.Context,
	lat, lng float64,
	radiusMeters int,
) ([]*Restaurant, error) {

	rows, err := p.db.Query(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurant
		WHERE latitude IS NOT NULL
		  AND longitude IS NOT NULL
		  AND NOT (latitude = 0 AND longitude = 0)
		  AND 2 * 6371000 * asin(sqrt(
				power(sin(radians(latitude - $1) / 2), 2) +
				cos(radians($1)) * cos(radians(latitude)) *
				power(sin(radians(longitude - $2) / 2), 2)
		  )) <= $3
	`, lat, lng, radiusMeters)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

func (p *PostgresRepository) ReviewsForPlaces(
	ctx context.Context,
	placeIDs []int64,
) ([]*Review, error) {

	if len(placeIDs) == 0 {
		return nil, nil
	}

	rows, err := p.db.Query(ctx, `
		SELECT id, kakao_place_id, source_review_id, rating, content
		FROM review
		WHERE kakao_place_id = ANY($1)
		ORDER BY id DESC
	`, placeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Review
	for rows.Next() {
		rv := &Review{}
		if err := rows.Scan(
			&rv.ID,
			&rv.KakaoPlaceID,
			&rv.SourceReviewID,
			&rv.Rating,
			&rv.Content,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (p *PostgresRepository) UpsertRestaurant(ctx context.Context, r *Restaurant) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO restaurant (`+restaurantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (kakao_place_id) DO UPDATE SET
			restaurant_name = EXCLUDED.restaurant_name,
			category        = EXCLUDED.category,
			rating          = EXCLUDED.rating,
			rating_count    = EXCLUDED.rating_count,
			review_count    = EXCLUDED.review_count,
			road_address    = EXCLUDED.road_address,
			number_address  = EXCLUDED.number_address,
			business_time   = EXCLUDED.business_time,
			kakao_url       = EXCLUDED.kakao_url,
			latitude        = EXCLUDED.latitude,
			longitude       = EXCLUDED.longitude
	`,
		r.KakaoPlaceID, r.Name, r.Category, r.Rating, r.RatingCount,
		r.ReviewCount, r.RoadAddress, r.NumberAddress, r.BusinessTime,
		r.KakaoURL, r.Latitude, r.Longitude,
	)
	return err
}

func (p *PostgresRepository) InsertReviewIfAbsent(ctx context.Context, rv *Review) (bool, error) {
	tag, err := p.db.Exec(ctx, `
		INSERT INTO review (kakao_place_id, source_review_id, rating, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (kakao_place_id, source_review_id) DO NOTHING
	`, rv.KakaoPlaceID, rv.SourceReviewID, rv.Rating, rv.Content)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanRestaurants(rows pgx.Rows) ([]*Restaurant, error) {
	var out []*Restaurant
	for rows.Next() {
		r := &Restaurant{}
		if err := rows.Scan(
			&r.KakaoPlaceID,
			&r.Name,
			&r.Category,
			&r.Rating,
			&r.RatingCount,
			&r.ReviewCount,
			&r.RoadAddress,
			&r.NumberAddress,
			&r.BusinessTime,
			&r.KakaoURL,
			&r.Latitude,
			&r.Longitude,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
