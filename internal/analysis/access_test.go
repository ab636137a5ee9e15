package analysis

import (
	"strings"
	"testing"

	"github.com/erica-likelion/team3-be/internal/geo"
)

func intPtr(v int) *int { return &v }

func TestDistanceAdjustment(t *testing.T) {
	tests := []struct {
		dist float64
		want int
	}{
		{0, 3},
		{30, 3},
		{31, 0},
		{50, 0},
		{51, -3},
		{60, -3},
		{61, -6},
		{120, -21},
	}
	for _, tt := range tests {
		if got := distanceAdjustment(tt.dist); got != tt.want {
			t.Errorf("distanceAdjustment(%v) = %d, want %d", tt.dist, got, tt.want)
		}
	}
}

func TestFloorAdjustment(t *testing.T) {
	tests := []struct {
		name  string
		floor *int
		want  int
	}{
		{"unknown", nil, 0},
		{"ground floor", intPtr(1), 5},
		{"second floor", intPtr(2), -7},
		{"fourth floor", intPtr(4), -21},
		{"first basement", intPtr(-1), -10},
		{"second basement", intPtr(-2), -20},
		{"floor zero", intPtr(0), 0},
	}
	for _, tt := range tests {
		if got := floorAdjustment(tt.floor); got != tt.want {
			t.Errorf("%s: floorAdjustment = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCompetitorAdjustment(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 5},
		{1, 0},
		{2, -6},
		{5, -15},
	}
	for _, tt := range tests {
		if got := competitorAdjustment(tt.count); got != tt.want {
			t.Errorf("competitorAdjustment(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestScoreAccessibility_ClampsToRange(t *testing.T) {
	cfg := DefaultConfig()

	// Right at the landmark, ground floor, no competitors: adjustments
	// push past 100 and must clamp down.
	best := scoreAccessibility(cfg, cfg.Landmark, intPtr(1), nil)
	if best.Score != 100 {
		t.Errorf("best-case score = %d, want 100", best.Score)
	}
	if len(best.Penalties) != 0 {
		t.Errorf("best case should carry no penalties, got %v", best.Penalties)
	}
	if len(best.Bonuses) != 3 {
		t.Errorf("best case should carry 3 bonuses, got %v", best.Bonuses)
	}

	// Far away, deep basement, crowded: must clamp up to 0.
	far := geo.Point{Lat: cfg.Landmark.Lat + 0.01, Lng: cfg.Landmark.Lng}
	many := make([]Competitor, 10)
	for i := range many {
		many[i] = Competitor{Name: "경쟁점", DistanceMeters: 10 + i}
	}
	worst := scoreAccessibility(cfg, far, intPtr(-3), many)
	if worst.Score != 0 {
		t.Errorf("worst-case score = %d, want 0", worst.Score)
	}
}

func TestScoreAccessibility_MoreCompetitorsNeverScoresHigher(t *testing.T) {
	cfg := DefaultConfig()
	site := geo.Point{Lat: cfg.Landmark.Lat + 0.0005, Lng: cfg.Landmark.Lng}

	prev := 101
	for n := 0; n <= 6; n++ {
		comps := make([]Competitor, n)
		for i := range comps {
			comps[i] = Competitor{Name: "가게", DistanceMeters: 20}
		}
		score := scoreAccessibility(cfg, site, intPtr(1), comps).Score
		if score > prev {
			t.Errorf("score rose from %d to %d when competitors grew to %d", prev, score, n)
		}
		prev = score
	}
}

func TestCompetitorListing(t *testing.T) {
	if got := competitorListing(nil); got != "" {
		t.Errorf("empty listing = %q, want empty", got)
	}

	comps := []Competitor{
		{Name: "가가", DistanceMeters: 40},
		{Name: "나나", DistanceMeters: 10},
		{Name: "다다", DistanceMeters: 25},
		{Name: "라라", DistanceMeters: 35},
		{Name: "마마", DistanceMeters: 15},
		{Name: "바바", DistanceMeters: 45},
		{Name: "사사", DistanceMeters: 5},
	}
	got := competitorListing(comps)

	if !strings.HasPrefix(got, "주변 경쟁점: 사사(5m), 나나(10m)") {
		t.Errorf("listing not sorted by distance: %q", got)
	}
	if !strings.HasSuffix(got, "외 2곳") {
		t.Errorf("listing missing overflow suffix: %q", got)
	}
	if strings.Contains(got, "바바") || strings.Contains(got, "가가") {
		t.Errorf("listing should cap at 5 entries: %q", got)
	}
}
