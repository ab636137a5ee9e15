package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/erica-likelion/team3-be/internal/ai"
)

// scoreMenu resolves the category-average price (AI estimate, then static
// fallback table), then applies the pure point model. Missing menu input
// or an unresolvable average short-circuits to the conservative score.
func (s *Service) scoreMenu(ctx context.Context, req *Request) ScoreInfo {
	name := strings.TrimSpace(req.RepresentativeMenuName)
	if name == "" || req.RepresentativeMenuPrice == nil || *req.RepresentativeMenuPrice <= 0 {
		return ScoreInfo{
			Name:   CriterionMenu,
			Score:  conservativeScore,
			Reason: "대표 메뉴명 또는 가격 정보가 없어 보수적인 기본 점수를 적용했어요.",
		}
	}

	avg, ok := s.averageMenuPrice(ctx, name)
	if !ok {
		return ScoreInfo{
			Name:   CriterionMenu,
			Score:  conservativeScore,
			Reason: fmt.Sprintf("'%s'의 상권 평균 가격을 추정하지 못해 보수적인 기본 점수를 적용했어요.", name),
		}
	}

	return scoreMenuAgainstAverage(s.cfg, name, *req.RepresentativeMenuPrice, avg)
}

// averageMenuPrice asks the text-generation service for a single-integer
// local price estimate; any call or parse failure falls back to the
// static keyword table.
func (s *Service) averageMenuPrice(ctx context.Context, menuName string) (int, bool) {
	raw, err := s.aiClient.Complete(ctx, buildMenuPricePrompt(menuName))
	if err == nil {
		if price, perr := ai.ParseInt(raw); perr == nil && price > 0 {
			return price, true
		}
		s.log.Warnw("menu price estimate unparseable, using fallback table", "menu", menuName)
	} else {
		s.log.Warnw("menu price estimate failed, using fallback table", "menu", menuName, "error", err)
	}

	lower := strings.ToLower(menuName)
	for _, rule := range s.cfg.FallbackMenuPrices {
		if strings.Contains(lower, strings.ToLower(rule.Keyword)) {
			return rule.Price, true
		}
	}
	return 0, false
}

func buildMenuPricePrompt(menuName string) string {
	return fmt.Sprintf(
		"대학가(한양대 에리카 인근) 상권 기준으로 '%s' 1인분의 평균 판매 가격을 추정하세요. "+
			"반드시 원 단위 정수 하나만 답하세요. 단위 표기, 쉼표, 설명, 다른 텍스트를 모두 금지합니다.",
		menuName,
	)
}

// scoreMenuAgainstAverage is the pure point model: base 100, ±5 per 10%
// price gap against the category average, fixed ±5 categorical
// adjustments, clamped to [10,100].
func scoreMenuAgainstAverage(cfg Config, menuName string, price, avg int) ScoreInfo {
	ratio := float64(price-avg) / float64(avg)
	priceAdj := -5 * int(math.Round(ratio*10))

	var penalties, bonuses []Adjustment
	appendAdjustment := func(name string, amount int) {
		switch {
		case amount < 0:
			penalties = append(penalties, Adjustment{Name: name, Amount: amount})
		case amount > 0:
			bonuses = append(bonuses, Adjustment{Name: name, Amount: amount})
		}
	}
	appendAdjustment("가격 경쟁력", priceAdj)

	total := 100 + priceAdj
	var applied []string

	lower := strings.ToLower(menuName)
	categorical := []struct {
		label    string
		keywords []string
		amount   int
	}{
		{"간편 섭취 메뉴", cfg.QuickMenuKeywords, 5},
		{"수요조사 선호 메뉴", cfg.PreferredMenuKeywords, 5},
		{"포장·배달 용이", cfg.TakeoutMenuKeywords, 5},
		{"트렌드 메뉴", cfg.TrendingMenuKeywords, 5},
		{"프리미엄 메뉴", cfg.PremiumMenuKeywords, -5},
	}
	for _, cat := range categorical {
		if !matchesAny(lower, cat.keywords) {
			continue
		}
		appendAdjustment(cat.label, cat.amount)
		total += cat.amount
		applied = append(applied, fmt.Sprintf("%s(%+d점)", cat.label, cat.amount))
	}

	score := clamp(total, 10, 100)

	var sb strings.Builder
	gapPct := int(math.Round(math.Abs(ratio) * 100))
	switch {
	case price > avg:
		sb.WriteString(fmt.Sprintf(
			"'%s' 가격 %d원은 상권 평균 추정가 %d원보다 약 %d%% 높아요.",
			menuName, price, avg, gapPct))
	case price < avg:
		sb.WriteString(fmt.Sprintf(
			"'%s' 가격 %d원은 상권 평균 추정가 %d원보다 약 %d%% 낮아 가격 경쟁력이 있어요.",
			menuName, price, avg, gapPct))
	default:
		sb.WriteString(fmt.Sprintf(
			"'%s' 가격 %d원은 상권 평균 추정가와 같은 수준이에요.",
			menuName, price))
	}
	if len(applied) > 0 {
		sb.WriteString(" 메뉴 특성 반영: ")
		sb.WriteString(strings.Join(applied, ", "))
		sb.WriteString(".")
	}

	return ScoreInfo{
		Name:      CriterionMenu,
		Score:     score,
		Reason:    sb.String(),
		Penalties: penalties,
		Bonuses:   bonuses,
	}
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
