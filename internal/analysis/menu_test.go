package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestScoreMenuAgainstAverage_PriceOnly(t *testing.T) {
	cfg := DefaultConfig()

	// 규동 matches none of the categorical keyword sets, so only the
	// price gap moves the score.
	tests := []struct {
		name  string
		price int
		avg   int
		want  int
	}{
		{"at average", 5000, 5000, 100},
		{"twenty percent above", 6000, 5000, 90},
		{"forty percent above", 7000, 5000, 80},
		{"below average clamps at 100", 4000, 5000, 100},
		{"far above clamps at 10", 50000, 5000, 10},
	}
	for _, tt := range tests {
		sc := scoreMenuAgainstAverage(cfg, "규동", tt.price, tt.avg)
		if sc.Score != tt.want {
			t.Errorf("%s: score = %d, want %d", tt.name, sc.Score, tt.want)
		}
	}
}

func TestScoreMenuAgainstAverage_CategoricalAdjustments(t *testing.T) {
	cfg := DefaultConfig()

	// 아메리카노 is a takeout keyword: 20% above average (-10) plus the
	// takeout bonus (+5).
	sc := scoreMenuAgainstAverage(cfg, "아메리카노", 5400, 4500)
	if sc.Score != 95 {
		t.Errorf("아메리카노 score = %d, want 95", sc.Score)
	}
	if !strings.Contains(sc.Reason, "포장·배달 용이") {
		t.Errorf("reason should name the applied adjustment: %q", sc.Reason)
	}

	// 오마카세 is premium: at average (0) minus the premium penalty (-5).
	sc = scoreMenuAgainstAverage(cfg, "오마카세", 80000, 80000)
	if sc.Score != 95 {
		t.Errorf("오마카세 score = %d, want 95", sc.Score)
	}
	if len(sc.Penalties) != 1 || sc.Penalties[0].Name != "프리미엄 메뉴" {
		t.Errorf("want premium penalty, got %v", sc.Penalties)
	}
}

func TestScoreMenu_MissingInputs(t *testing.T) {
	s := NewService(&mockReader{}, &mockAI{err: errors.New("down")}, DefaultConfig(), zap.NewNop().Sugar())

	price := 5000
	tests := []struct {
		name string
		req  *Request
	}{
		{"blank name", &Request{RepresentativeMenuName: "  ", RepresentativeMenuPrice: &price}},
		{"nil price", &Request{RepresentativeMenuName: "김밥"}},
		{"zero price", &Request{RepresentativeMenuName: "김밥", RepresentativeMenuPrice: intPtr(0)}},
	}
	for _, tt := range tests {
		sc := s.scoreMenu(context.Background(), tt.req)
		if sc.Score != conservativeScore {
			t.Errorf("%s: score = %d, want %d", tt.name, sc.Score, conservativeScore)
		}
	}
}

func TestScoreMenu_AIFailureUsesFallbackTable(t *testing.T) {
	s := NewService(&mockReader{}, &mockAI{err: errors.New("down")}, DefaultConfig(), zap.NewNop().Sugar())

	sc := s.scoreMenu(context.Background(), &Request{
		RepresentativeMenuName:  "아메리카노",
		RepresentativeMenuPrice: intPtr(4500),
	})
	// Fallback table puts 아메리카노 at 4500, so price is at average and
	// the takeout bonus clamps at 100.
	if sc.Score != 100 {
		t.Errorf("score = %d, want 100", sc.Score)
	}
}

func TestScoreMenu_UnresolvableAverage(t *testing.T) {
	s := NewService(&mockReader{}, &mockAI{err: errors.New("down")}, DefaultConfig(), zap.NewNop().Sugar())

	sc := s.scoreMenu(context.Background(), &Request{
		RepresentativeMenuName:  "정체불명메뉴",
		RepresentativeMenuPrice: intPtr(8000),
	})
	if sc.Score != conservativeScore {
		t.Errorf("score = %d, want %d", sc.Score, conservativeScore)
	}
}

func TestScoreMenu_AIEstimateWins(t *testing.T) {
	s := NewService(&mockReader{}, &mockAI{response: "5000"}, DefaultConfig(), zap.NewNop().Sugar())

	sc := s.scoreMenu(context.Background(), &Request{
		RepresentativeMenuName:  "규동",
		RepresentativeMenuPrice: intPtr(6000),
	})
	// Model says the average is 5000: 20% above costs 10 points.
	if sc.Score != 90 {
		t.Errorf("score = %d, want 90", sc.Score)
	}
}
