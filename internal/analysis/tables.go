package analysis

import "github.com/erica-likelion/team3-be/internal/geo"

// RooftopFloor is the reserved height value meaning "rooftop unit".
const RooftopFloor = 99

// FloorTier keys the unit-price table.
type FloorTier string

const (
	TierBasement    FloorTier = "지하"
	TierFirst       FloorTier = "1층"
	TierSecond      FloorTier = "2층"
	TierThird       FloorTier = "3층"
	TierFourthAbove FloorTier = "4층 이상"
	TierRooftop     FloorTier = "옥탑"
)

// UnitPrice is manwon per pyeong for a floor tier.
type UnitPrice struct {
	DepositPerPyeong int
	RentPerPyeong    int
}

// Config is the immutable seed data of the scorers, built once at startup
// and injected so tests can substitute it.
type Config struct {
	// Landmark is the fixed reference point distance scoring works
	// against (ERICA main gate).
	Landmark     geo.Point
	LandmarkName string

	// CompetitorRadiusMeters bounds the "nearby competitor" search.
	CompetitorRadiusMeters int

	FloorPrices map[FloorTier]UnitPrice

	// FallbackMenuPrices maps a menu keyword to an estimated per-person
	// price in won, consulted when the AI price estimate fails.
	FallbackMenuPrices []MenuPriceRule

	// Menu classification keyword sets, each worth a fixed ±5.
	QuickMenuKeywords     []string
	PreferredMenuKeywords []string
	TakeoutMenuKeywords   []string
	TrendingMenuKeywords  []string
	PremiumMenuKeywords   []string
}

type MenuPriceRule struct {
	Keyword string
	Price   int
}

// DefaultConfig carries the operational seed tables for the ERICA
// university district.
func DefaultConfig() Config {
	return Config{
		Landmark:               geo.Point{Lat: 37.29644, Lng: 126.83516},
		LandmarkName:           "한양대 에리카 정문",
		CompetitorRadiusMeters: 50,

		FloorPrices: map[FloorTier]UnitPrice{
			TierBasement:    {DepositPerPyeong: 120, RentPerPyeong: 7},
			TierFirst:       {DepositPerPyeong: 200, RentPerPyeong: 12},
			TierSecond:      {DepositPerPyeong: 140, RentPerPyeong: 8},
			TierThird:       {DepositPerPyeong: 100, RentPerPyeong: 6},
			TierFourthAbove: {DepositPerPyeong: 80, RentPerPyeong: 5},
			TierRooftop:     {DepositPerPyeong: 60, RentPerPyeong: 4},
		},

		FallbackMenuPrices: []MenuPriceRule{
			{Keyword: "아메리카노", Price: 4500},
			{Keyword: "라떼", Price: 5000},
			{Keyword: "커피", Price: 4500},
			{Keyword: "버블티", Price: 5500},
			{Keyword: "김밥", Price: 4500},
			{Keyword: "떡볶이", Price: 6000},
			{Keyword: "햄버거", Price: 8000},
			{Keyword: "버거", Price: 8000},
			{Keyword: "국밥", Price: 9000},
			{Keyword: "덮밥", Price: 9000},
			{Keyword: "돈가스", Price: 10000},
			{Keyword: "라멘", Price: 10000},
			{Keyword: "마라탕", Price: 12000},
			{Keyword: "파스타", Price: 13000},
			{Keyword: "피자", Price: 15000},
			{Keyword: "초밥", Price: 15000},
			{Keyword: "스시", Price: 15000},
			{Keyword: "치킨", Price: 20000},
			{Keyword: "케이크", Price: 7000},
			{Keyword: "빙수", Price: 9000},
		},

		QuickMenuKeywords: []string{
			"김밥", "샌드위치", "토스트", "컵밥", "주먹밥", "떡볶이", "핫도그", "버거",
		},
		PreferredMenuKeywords: []string{
			"마라탕", "돈가스", "파스타", "치킨", "국밥", "초밥",
		},
		TakeoutMenuKeywords: []string{
			"커피", "아메리카노", "라떼", "버블티", "샌드위치", "도시락", "버거", "피자",
		},
		TrendingMenuKeywords: []string{
			"마라탕", "탕후루", "버블티", "베이글", "크로플", "두바이",
		},
		PremiumMenuKeywords: []string{
			"오마카세", "스테이크", "한우", "랍스터", "코스", "파인다이닝",
		},
	}
}

// floorTier derives the price-table key from a floor number.
func floorTier(floor int) FloorTier {
	switch {
	case floor < 0:
		return TierBasement
	case floor == RooftopFloor:
		return TierRooftop
	case floor == 1:
		return TierFirst
	case floor == 2:
		return TierSecond
	case floor == 3:
		return TierThird
	default:
		return TierFourthAbove
	}
}
