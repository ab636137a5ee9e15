package analysis

import "testing"

func minMax(min, max int) *MinMax {
	return &MinMax{Min: &min, Max: &max}
}

func TestRangeDelta(t *testing.T) {
	// Expected range 100..200, midpoint 150.
	tests := []struct {
		name    string
		userMax int
		want    int
	}{
		{"above expected max", 210, 10},
		{"at expected max", 200, 10},
		{"at midpoint", 150, 5},
		{"between min and midpoint", 120, 0},
		{"at expected min", 100, 0},
		{"ten percent short", 95, -5},
		{"thirty percent short", 75, -15},
		{"floored at minus thirty", 10, -30},
	}
	for _, tt := range tests {
		if got := rangeDelta(tt.userMax, 100, 150, 200); got != tt.want {
			t.Errorf("%s: rangeDelta(%d) = %d, want %d", tt.name, tt.userMax, got, tt.want)
		}
	}
}

func TestScoreBudget_MissingInputs(t *testing.T) {
	cfg := DefaultConfig()

	req := &Request{
		Budget:  minMax(150, 200),
		Deposit: minMax(2000, 3000),
		// Size missing.
	}
	sc := scoreBudget(cfg, req)

	if sc.Score != conservativeScore {
		t.Errorf("score = %d, want %d", sc.Score, conservativeScore)
	}
	if sc.ExpectedPrice != nil {
		t.Error("missing inputs should not produce an expected price")
	}
	if len(sc.Penalties) != 0 || len(sc.Bonuses) != 0 {
		t.Error("missing inputs should not produce adjustments")
	}
}

func TestScoreBudget_GroundFloorEstimate(t *testing.T) {
	cfg := DefaultConfig()

	req := &Request{
		Budget:  minMax(150, 200),
		Deposit: minMax(2000, 3000),
		Size:    minMax(10, 15),
		Height:  intPtr(1),
	}
	sc := scoreBudget(cfg, req)

	// 1F unit prices: rent 12/py, deposit 200/py. 10~15py gives rent
	// 120~180 (mid 150) and deposit 2000~3000 (mid 2500). Both budget
	// maxima reach the expected maxima so both deltas are +10.
	if sc.ExpectedPrice == nil {
		t.Fatal("expected price missing")
	}
	if sc.ExpectedPrice.Monthly != 150 {
		t.Errorf("expected monthly = %d, want 150", sc.ExpectedPrice.Monthly)
	}
	if sc.ExpectedPrice.SecurityDeposit != 2500 {
		t.Errorf("expected deposit = %d, want 2500", sc.ExpectedPrice.SecurityDeposit)
	}
	if sc.Score != 100 {
		t.Errorf("score = %d, want 100", sc.Score)
	}
	if len(sc.Bonuses) != 2 {
		t.Errorf("want rent and deposit bonuses, got %v", sc.Bonuses)
	}
}

func TestScoreBudget_MissingHeightAssumesGroundFloor(t *testing.T) {
	cfg := DefaultConfig()

	with := scoreBudget(cfg, &Request{
		Budget: minMax(150, 200), Deposit: minMax(2000, 3000),
		Size: minMax(10, 15), Height: intPtr(1),
	})
	without := scoreBudget(cfg, &Request{
		Budget: minMax(150, 200), Deposit: minMax(2000, 3000),
		Size: minMax(10, 15),
	})

	if with.Score != without.Score {
		t.Errorf("nil height score %d differs from ground floor score %d", without.Score, with.Score)
	}
}

func TestScoreBudget_TightBudgetNeverBelowTen(t *testing.T) {
	cfg := DefaultConfig()

	sc := scoreBudget(cfg, &Request{
		Budget:  minMax(1, 2),
		Deposit: minMax(1, 2),
		Size:    minMax(30, 40),
		Height:  intPtr(1),
	})
	if sc.Score != clamp(sc.Score, 10, 100) {
		t.Errorf("score %d outside [10,100]", sc.Score)
	}
	if sc.Score != 70 {
		// 100 + 0.7*(-30) + 0.3*(-30) = 70 at the delta floor.
		t.Errorf("score = %d, want 70 at the delta floor", sc.Score)
	}
}

func TestFloorTier(t *testing.T) {
	tests := []struct {
		floor int
		want  FloorTier
	}{
		{-2, TierBasement},
		{-1, TierBasement},
		{1, TierFirst},
		{2, TierSecond},
		{3, TierThird},
		{4, TierFourthAbove},
		{7, TierFourthAbove},
		{0, TierFourthAbove},
		{RooftopFloor, TierRooftop},
	}
	for _, tt := range tests {
		if got := floorTier(tt.floor); got != tt.want {
			t.Errorf("floorTier(%d) = %s, want %s", tt.floor, got, tt.want)
		}
	}
}
