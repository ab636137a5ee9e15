package category

import "strings"

// Cross-sell super-types for partnership matching. An eatery partners with
// a cafe and vice versa.
const (
	TypeCafe   = "카페"
	TypeEatery = "음식점"
)

var cafeTypeKeywords = []string{
	"카페", "커피", "디저트", "베이커리", "제과", "아이스크림", "빙수", "도넛", "브런치",
}

var eateryTypeKeywords = []string{
	"한식", "중식", "일식", "양식", "아시안", "분식", "피자", "치킨", "탕", "국", "면",
	"우동", "라멘", "스시", "초밥", "돈가스", "덮밥", "파스타", "스테이크", "마라",
}

// SimpleType collapses a raw category string onto the two cross-sell axes.
// Unknown categories count as eateries.
func SimpleType(rawCategory string) string {
	c := strings.ToLower(rawCategory)
	for _, kw := range cafeTypeKeywords {
		if strings.Contains(c, kw) {
			return TypeCafe
		}
	}
	for _, kw := range eateryTypeKeywords {
		if strings.Contains(c, kw) {
			return TypeEatery
		}
	}
	return TypeEatery
}

// OppositeType returns the complementary cross-sell type.
func OppositeType(simpleType string) string {
	if simpleType == TypeCafe {
		return TypeEatery
	}
	return TypeCafe
}
