package seed

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/erica-likelion/team3-be/internal/restaurant"
)

// RestaurantRecord mirrors one entry of the Kakao crawl dump. Field
// names are the crawler's Korean column headers.
type RestaurantRecord struct {
	Name         string `json:"가게이름"`
	Category     string `json:"카테고리"`
	Rating       string `json:"평점"`
	RatingCount  string `json:"평점건수"`
	ReviewCount  string `json:"리뷰수"`
	RoadAddress  string `json:"주소"`
	LotAddress   string `json:"지번"`
	BusinessTime string `json:"영업시간"`
	DetailURL    string `json:"상세정보링크"`
}

// ReviewRecord mirrors one entry of the review crawl dump.
type ReviewRecord struct {
	ReviewURL     string `json:"review_url"`
	ReviewRating  string `json:"review_rating"`
	ReviewContent string `json:"review_content"`
}

// Geocoder resolves an address to a "lat,lng" string.
type Geocoder interface {
	LocationByAddress(ctx context.Context, address string) (string, error)
}

type Seeder struct {
	repo     restaurant.Writer
	geocoder Geocoder
	log      *zap.SugaredLogger
}

func NewSeeder(repo restaurant.Writer, geocoder Geocoder, log *zap.SugaredLogger) *Seeder {
	return &Seeder{repo: repo, geocoder: geocoder, log: log}
}

var (
	placeURLPattern = regexp.MustCompile(`place\.map\.kakao\.com/(\d+)`)
	nonDigits       = regexp.MustCompile(`\D+`)
	nonNumeric      = regexp.MustCompile(`[^0-9.]`)
)

// PlaceIDFromURL derives the numeric Kakao place ID from a detail or
// review URL. It prefers the place.map.kakao.com path segment and falls
// back to stripping every non-digit.
func PlaceIDFromURL(url string) (int64, error) {
	if m := placeURLPattern.FindStringSubmatch(url); m != nil {
		return strconv.ParseInt(m[1], 10, 64)
	}
	digits := nonDigits.ReplaceAllString(url, "")
	if digits == "" {
		return 0, fmt.Errorf("no place id in url %q", url)
	}
	return strconv.ParseInt(digits, 10, 64)
}

// SourceReviewID is the deterministic dedupe key for a crawled review:
// first 32 hex chars of SHA-256 over content and URL.
func SourceReviewID(content, url string) string {
	base := strings.TrimSpace(orUnderscore(content) + "||" + orUnderscore(url))
	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])[:32]
}

func orUnderscore(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "_"
	}
	return s
}

// parseRating scrubs decorations like "4.7점" down to the number.
func parseRating(s string) *float64 {
	s = nonNumeric.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseCount scrubs decorations like "(30)" down to the integer.
func parseCount(s string) *int {
	s = nonDigits.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// MapRestaurant turns one crawl record into a storable restaurant,
// geocoding its road address. A failed geocode leaves the coordinate
// nil rather than dropping the record.
func (s *Seeder) MapRestaurant(ctx context.Context, rec RestaurantRecord) (*restaurant.Restaurant, error) {
	placeID, err := PlaceIDFromURL(rec.DetailURL)
	if err != nil {
		return nil, err
	}

	r := &restaurant.Restaurant{
		KakaoPlaceID:  placeID,
		Name:          strings.TrimSpace(rec.Name),
		Category:      rec.Category,
		Rating:        parseRating(rec.Rating),
		RatingCount:   parseCount(rec.RatingCount),
		ReviewCount:   parseCount(rec.ReviewCount),
		RoadAddress:   rec.RoadAddress,
		NumberAddress: rec.LotAddress,
		BusinessTime:  rec.BusinessTime,
		KakaoURL:      rec.DetailURL,
	}

	if s.geocoder != nil && rec.RoadAddress != "" {
		loc, err := s.geocoder.LocationByAddress(ctx, rec.RoadAddress)
		if err != nil {
			s.log.Warnw("geocode failed", "name", r.Name, "address", rec.RoadAddress, "error", err)
		} else if lat, lng, perr := splitCoordinate(loc); perr == nil {
			r.Latitude = &lat
			r.Longitude = &lng
		}
	}

	return r, nil
}

func splitCoordinate(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad coordinate %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

// SeedRestaurants ingests a restaurant dump file. Upserts are keyed by
// place ID so reruns are safe.
func (s *Seeder) SeedRestaurants(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var records []RestaurantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}

	stored := 0
	for _, rec := range records {
		r, err := s.MapRestaurant(ctx, rec)
		if err != nil {
			s.log.Warnw("skipping restaurant record", "name", rec.Name, "error", err)
			continue
		}
		if err := s.repo.UpsertRestaurant(ctx, r); err != nil {
			return stored, fmt.Errorf("upsert %s: %w", r.Name, err)
		}
		stored++
	}
	return stored, nil
}

// SeedReviews ingests a review dump file. The content-hash ID makes the
// insert idempotent.
func (s *Seeder) SeedReviews(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var records []ReviewRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}

	inserted := 0
	for _, rec := range records {
		placeID, err := PlaceIDFromURL(rec.ReviewURL)
		if err != nil {
			s.log.Warnw("skipping review record", "url", rec.ReviewURL, "error", err)
			continue
		}

		rv := &restaurant.Review{
			KakaoPlaceID:   placeID,
			SourceReviewID: SourceReviewID(rec.ReviewContent, rec.ReviewURL),
			Rating:         parseRating(rec.ReviewRating),
			Content:        strings.TrimSpace(rec.ReviewContent),
		}
		ok, err := s.repo.InsertReviewIfAbsent(ctx, rv)
		if err != nil {
			return inserted, fmt.Errorf("insert review for place %d: %w", placeID, err)
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}
