package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/erica-likelion/team3-be/internal/geo"
)

// Competitor is a same-category business inside the analysis radius.
type Competitor struct {
	Name           string
	DistanceMeters int
}

const maxListedCompetitors = 5

// scoreAccessibility is the deterministic accessibility point model:
// base 100, additive adjustments for landmark distance, floor and
// competitor density, final clamp to [0,100].
func scoreAccessibility(cfg Config, site geo.Point, floor *int, competitors []Competitor) ScoreInfo {
	landmarkDist := geo.DistanceBetween(site, cfg.Landmark)

	distAdj := distanceAdjustment(landmarkDist)
	floorAdj := floorAdjustment(floor)
	compAdj := competitorAdjustment(len(competitors))

	score := clamp(100+distAdj+floorAdj+compAdj, 0, 100)

	var penalties, bonuses []Adjustment
	appendAdjustment := func(name string, amount int) {
		switch {
		case amount < 0:
			penalties = append(penalties, Adjustment{Name: name, Amount: amount})
		case amount > 0:
			bonuses = append(bonuses, Adjustment{Name: name, Amount: amount})
		}
	}
	appendAdjustment("정문 거리", distAdj)
	appendAdjustment("층수", floorAdj)
	appendAdjustment("경쟁 강도", compAdj)

	return ScoreInfo{
		Name:      CriterionAccess,
		Score:     score,
		Reason:    accessReason(cfg, landmarkDist, floor, competitors),
		Penalties: penalties,
		Bonuses:   bonuses,
	}
}

func distanceAdjustment(d float64) int {
	switch {
	case d <= 30:
		return 3
	case d <= 50:
		return 0
	default:
		increments := int(math.Ceil((d - 50) / 10))
		return -3 * increments
	}
}

func floorAdjustment(floor *int) int {
	if floor == nil {
		return 0
	}
	f := *floor
	switch {
	case f == 1:
		return 5
	case f >= 2:
		return -7 * (f - 1)
	case f < 0:
		return -10 * (-f)
	default:
		return 0
	}
}

func competitorAdjustment(count int) int {
	switch {
	case count == 0:
		return 5
	case count == 1:
		return 0
	default:
		return -3 * count
	}
}

func accessReason(cfg Config, landmarkDist float64, floor *int, competitors []Competitor) string {
	var sb strings.Builder

	dist := int(math.Round(landmarkDist))
	switch {
	case landmarkDist <= 30:
		sb.WriteString(fmt.Sprintf("%s에서 약 %dm로 도보 접근이 매우 좋아요.", cfg.LandmarkName, dist))
	case landmarkDist <= 50:
		sb.WriteString(fmt.Sprintf("%s에서 약 %dm로 접근성이 무난해요.", cfg.LandmarkName, dist))
	default:
		sb.WriteString(fmt.Sprintf("%s에서 약 %dm 떨어져 있어 도보 접근성이 아쉬운 편이에요.", cfg.LandmarkName, dist))
	}

	sb.WriteString(" ")
	switch {
	case floor == nil:
		sb.WriteString("층수 정보가 없어 층 조건은 반영하지 않았어요.")
	case *floor == 1:
		sb.WriteString("1층 매장이라 가시성이 좋아요.")
	case *floor < 0:
		sb.WriteString(fmt.Sprintf("지하 %d층이라 간판 노출과 진입 동선이 불리해요.", -*floor))
	case *floor >= 2:
		sb.WriteString(fmt.Sprintf("%d층이라 계단·엘리베이터 진입 부담이 있어요.", *floor))
	default:
		sb.WriteString("층 조건의 영향은 크지 않아요.")
	}

	sb.WriteString(" ")
	switch n := len(competitors); {
	case n == 0:
		sb.WriteString(fmt.Sprintf("반경 %dm 안에 동일 업종 경쟁점이 없어요.", cfg.CompetitorRadiusMeters))
	case n == 1:
		sb.WriteString(fmt.Sprintf("반경 %dm 안에 동일 업종 경쟁점이 1곳 있어요.", cfg.CompetitorRadiusMeters))
	default:
		sb.WriteString(fmt.Sprintf("반경 %dm 안에 동일 업종 경쟁점이 %d곳 있어요.", cfg.CompetitorRadiusMeters, n))
	}

	if listing := competitorListing(competitors); listing != "" {
		sb.WriteString(" ")
		sb.WriteString(listing)
	}

	return sb.String()
}

// competitorListing names up to 5 nearest competitors with rounded
// distances, with an "+N more" suffix when more exist.
func competitorListing(competitors []Competitor) string {
	if len(competitors) == 0 {
		return ""
	}

	sorted := make([]Competitor, len(competitors))
	copy(sorted, competitors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DistanceMeters < sorted[j].DistanceMeters
	})

	listed := sorted
	if len(listed) > maxListedCompetitors {
		listed = listed[:maxListedCompetitors]
	}

	parts := make([]string, 0, len(listed))
	for _, c := range listed {
		parts = append(parts, fmt.Sprintf("%s(%dm)", c.Name, c.DistanceMeters))
	}

	out := "주변 경쟁점: " + strings.Join(parts, ", ")
	if rest := len(sorted) - len(listed); rest > 0 {
		out += fmt.Sprintf(" 외 %d곳", rest)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
