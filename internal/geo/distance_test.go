package geo

import (
	"math"
	"testing"
)

func TestDistance_SamePoint(t *testing.T) {
	d := Distance(37.297, 126.837, 37.297, 126.837)
	if d != 0 {
		t.Errorf("expected 0, got %f", d)
	}
}

func TestDistance_KnownPair(t *testing.T) {
	// One degree of latitude is ~111.19 km.
	d := Distance(37.0, 126.8, 38.0, 126.8)
	if math.Abs(d-111195) > 200 {
		t.Errorf("expected ~111195m, got %f", d)
	}
}

func TestDistance_ShortRange(t *testing.T) {
	// ~50m apart near the campus.
	d := Distance(37.29700, 126.83700, 37.29745, 126.83700)
	if d < 40 || d > 60 {
		t.Errorf("expected ~50m, got %f", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Distance(37.297, 126.837, 37.300, 126.838)
	b := Distance(37.300, 126.838, 37.297, 126.837)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", a, b)
	}
}

func TestDistance_NaNPropagates(t *testing.T) {
	d := Distance(math.NaN(), 126.837, 37.297, 126.837)
	if !math.IsNaN(d) {
		t.Errorf("expected NaN, got %f", d)
	}
}
