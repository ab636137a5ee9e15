package restaurant

import (
	"context"
	"fmt"
)

// GeoEntry is the flat map-frontend view of a restaurant.
type GeoEntry struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Coordinate *string  `json:"coordinate"`
}

type Service struct {
	repo Reader
}

func NewService(repo Reader) *Service {
	return &Service{repo: repo}
}

// ListGeo returns every restaurant as a name/address/coordinate tuple.
// Records without a coordinate keep a nil coordinate string.
func (s *Service) ListGeo(ctx context.Context) ([]GeoEntry, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]GeoEntry, 0, len(all))
	for _, r := range all {
		e := GeoEntry{
			Name:      r.SafeName(),
			Address:   r.BestAddress(),
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		}
		if r.Latitude != nil && r.Longitude != nil {
			coord := fmt.Sprintf("%.6f, %.6f", *r.Latitude, *r.Longitude)
			e.Coordinate = &coord
		}
		out = append(out, e)
	}
	return out, nil
}
