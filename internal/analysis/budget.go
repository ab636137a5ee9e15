package analysis

import (
	"fmt"
	"math"
)

// conservativeScore is returned when required inputs are missing and no
// meaningful estimate can be made.
const conservativeScore = 70

// scoreBudget compares the user's rent/deposit budget against the
// floor-tier unit-price table scaled by the requested area. Rent is
// weighted 0.7, deposit 0.3; the result is clamped to [10,100].
func scoreBudget(cfg Config, req *Request) ScoreInfo {
	if !req.Size.valid() || !req.Budget.valid() || !req.Deposit.valid() {
		return ScoreInfo{
			Name:   CriterionBudget,
			Score:  conservativeScore,
			Reason: "평수 또는 예산 정보가 없어 보수적인 기본 점수를 적용했어요. 희망 평수와 월세·보증금 범위를 입력하면 더 정확한 분석을 받을 수 있어요.",
		}
	}

	floor := 1
	if req.Height != nil {
		floor = *req.Height
	}
	tier := floorTier(floor)
	unit := cfg.FloorPrices[tier]

	areaMin := *req.Size.Min
	areaMax := *req.Size.Max

	rentMin := unit.RentPerPyeong * areaMin
	rentMax := unit.RentPerPyeong * areaMax
	rentMid := (rentMin + rentMax) / 2

	depositMin := unit.DepositPerPyeong * areaMin
	depositMax := unit.DepositPerPyeong * areaMax
	depositMid := (depositMin + depositMax) / 2

	rentDelta := rangeDelta(*req.Budget.Max, rentMin, rentMid, rentMax)
	depositDelta := rangeDelta(*req.Deposit.Max, depositMin, depositMid, depositMax)

	score := clamp(
		int(math.Round(100+0.7*float64(rentDelta)+0.3*float64(depositDelta))),
		10, 100,
	)

	var penalties, bonuses []Adjustment
	appendAdjustment := func(name string, amount int) {
		switch {
		case amount < 0:
			penalties = append(penalties, Adjustment{Name: name, Amount: amount})
		case amount > 0:
			bonuses = append(bonuses, Adjustment{Name: name, Amount: amount})
		}
	}
	appendAdjustment("월세 적합도", rentDelta)
	appendAdjustment("보증금 적합도", depositDelta)

	reason := fmt.Sprintf(
		"%s 기준 %d~%d평의 예상 월세는 %d~%d만원(중간값 %d만원), 예상 보증금은 %d~%d만원(중간값 %d만원)이에요. %s %s",
		tier, areaMin, areaMax,
		rentMin, rentMax, rentMid,
		depositMin, depositMax, depositMid,
		budgetComment("월세", *req.Budget.Max, rentMin, rentMid, rentMax),
		budgetComment("보증금", *req.Deposit.Max, depositMin, depositMid, depositMax),
	)

	return ScoreInfo{
		Name:  CriterionBudget,
		Score: score,
		ExpectedPrice: &ExpectedPrice{
			Monthly:         rentMid,
			SecurityDeposit: depositMid,
		},
		Reason:    reason,
		Penalties: penalties,
		Bonuses:   bonuses,
	}
}

// rangeDelta is the four-tier step function shared by rent and deposit:
// +10 above the expected max, +5 above the midpoint, 0 above the minimum,
// then −5 per 10%-of-minimum shortfall increment, floored at −30.
func rangeDelta(userMax, expMin, expMid, expMax int) int {
	switch {
	case userMax >= expMax:
		return 10
	case userMax >= expMid:
		return 5
	case userMax >= expMin:
		return 0
	}

	if expMin <= 0 {
		return 0
	}
	shortfall := float64(expMin - userMax)
	increments := int(math.Ceil(shortfall / (0.1 * float64(expMin))))
	delta := -5 * increments
	if delta < -30 {
		delta = -30
	}
	return delta
}

func budgetComment(label string, userMax, expMin, expMid, expMax int) string {
	switch {
	case userMax >= expMax:
		return fmt.Sprintf("%s 예산이 예상 범위 상단을 넘어 여유가 있어요.", label)
	case userMax >= expMid:
		return fmt.Sprintf("%s 예산이 예상 중간값 이상이라 무난해요.", label)
	case userMax >= expMin:
		return fmt.Sprintf("%s 예산이 예상 하단 수준이라 매물 선택폭이 좁을 수 있어요.", label)
	default:
		return fmt.Sprintf("%s 예산이 예상 하단(%d만원)보다 낮아 조건 조정이 필요해요.", label, expMin)
	}
}
