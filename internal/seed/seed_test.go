package seed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/erica-likelion/team3-be/internal/restaurant"
)

type mockWriter struct {
	restaurants []*restaurant.Restaurant
	reviews     []*restaurant.Review
	seen        map[string]bool
}

func newMockWriter() *mockWriter {
	return &mockWriter{seen: map[string]bool{}}
}

func (m *mockWriter) UpsertRestaurant(ctx context.Context, r *restaurant.Restaurant) error {
	m.restaurants = append(m.restaurants, r)
	return nil
}

func (m *mockWriter) InsertReviewIfAbsent(ctx context.Context, rv *restaurant.Review) (bool, error) {
	key := rv.SourceReviewID
	if m.seen[key] {
		return false, nil
	}
	m.seen[key] = true
	m.reviews = append(m.reviews, rv)
	return true, nil
}

type mockGeocoder struct {
	result string
	err    error
}

func (m *mockGeocoder) LocationByAddress(ctx context.Context, address string) (string, error) {
	return m.result, m.err
}

func TestPlaceIDFromURL(t *testing.T) {
	tests := []struct {
		url     string
		want    int64
		wantErr bool
	}{
		{"https://place.map.kakao.com/123456", 123456, false},
		{"https://place.map.kakao.com/987654321?from=map", 987654321, false},
		{"https://example.com/shop/42", 42, false},
		{"no-digits-at-all", 0, true},
	}
	for _, tt := range tests {
		got, err := PlaceIDFromURL(tt.url)
		if tt.wantErr {
			if err == nil {
				t.Errorf("PlaceIDFromURL(%q): expected error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("PlaceIDFromURL(%q): %v", tt.url, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PlaceIDFromURL(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}

func TestSourceReviewID(t *testing.T) {
	a := SourceReviewID("맛있어요", "https://place.map.kakao.com/123456")
	b := SourceReviewID("맛있어요", "https://place.map.kakao.com/123456")
	c := SourceReviewID("별로예요", "https://place.map.kakao.com/123456")

	if a != b {
		t.Error("same content and url should hash identically")
	}
	if a == c {
		t.Error("different content should hash differently")
	}
	if len(a) != 32 {
		t.Errorf("id length = %d, want 32", len(a))
	}
}

func TestMapRestaurant_ScrubsNumericFields(t *testing.T) {
	s := NewSeeder(newMockWriter(), &mockGeocoder{result: "37.2942, 126.8440"}, zap.NewNop().Sugar())

	r, err := s.MapRestaurant(context.Background(), RestaurantRecord{
		Name:        " 테스트 식당 ",
		Category:    "음식점 > 한식",
		Rating:      "4.7점",
		RatingCount: "(30)",
		ReviewCount: "리뷰 12",
		RoadAddress: "경기 안산시 상록구 댕이길 67-1",
		DetailURL:   "https://place.map.kakao.com/123456",
	})
	if err != nil {
		t.Fatalf("MapRestaurant: %v", err)
	}

	if r.KakaoPlaceID != 123456 {
		t.Errorf("place id = %d, want 123456", r.KakaoPlaceID)
	}
	if r.Name != "테스트 식당" {
		t.Errorf("name = %q", r.Name)
	}
	if r.Rating == nil || *r.Rating != 4.7 {
		t.Errorf("rating = %v, want 4.7", r.Rating)
	}
	if r.RatingCount == nil || *r.RatingCount != 30 {
		t.Errorf("rating count = %v, want 30", r.RatingCount)
	}
	if r.ReviewCount == nil || *r.ReviewCount != 12 {
		t.Errorf("review count = %v, want 12", r.ReviewCount)
	}
	if r.Latitude == nil || *r.Latitude != 37.2942 {
		t.Errorf("latitude = %v", r.Latitude)
	}
	if r.Longitude == nil || *r.Longitude != 126.8440 {
		t.Errorf("longitude = %v", r.Longitude)
	}
}

func TestMapRestaurant_GeocodeFailureKeepsRecord(t *testing.T) {
	s := NewSeeder(newMockWriter(), &mockGeocoder{err: os.ErrDeadlineExceeded}, zap.NewNop().Sugar())

	r, err := s.MapRestaurant(context.Background(), RestaurantRecord{
		Name:        "좌표없는집",
		RoadAddress: "어딘가",
		DetailURL:   "https://place.map.kakao.com/777",
	})
	if err != nil {
		t.Fatalf("MapRestaurant: %v", err)
	}
	if r.Latitude != nil || r.Longitude != nil {
		t.Error("failed geocode should leave coordinate nil")
	}
}

func TestSeedReviews_Idempotent(t *testing.T) {
	records := []ReviewRecord{
		{ReviewURL: "https://place.map.kakao.com/123456", ReviewRating: "5점", ReviewContent: "최고였어요"},
		{ReviewURL: "https://place.map.kakao.com/123456", ReviewRating: "5점", ReviewContent: "최고였어요"},
		{ReviewURL: "https://place.map.kakao.com/123456", ReviewRating: "3", ReviewContent: "보통이에요"},
	}
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "reviews.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	w := newMockWriter()
	s := NewSeeder(w, nil, zap.NewNop().Sugar())

	inserted, err := s.SeedReviews(context.Background(), path)
	if err != nil {
		t.Fatalf("SeedReviews: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2 (duplicate skipped)", inserted)
	}
	if len(w.reviews) != 2 {
		t.Errorf("stored = %d, want 2", len(w.reviews))
	}
	if w.reviews[0].Rating == nil || *w.reviews[0].Rating != 5 {
		t.Errorf("rating = %v, want 5", w.reviews[0].Rating)
	}
}
