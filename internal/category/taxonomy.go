package category

import "strings"

// Coarse store categories shown to the user. Kakao's raw category strings
// are much finer grained ("음식점 > 카페 > 커피전문점"), so each coarse
// label expands to the keyword set it should match.
var keywordTable = map[string][]string{
	"카페/디저트": {"카페", "커피", "디저트", "베이커리", "제과", "아이스크림", "빙수", "도넛", "브런치", "케이크", "와플"},
	"피자/치킨":  {"피자", "치킨", "닭강정"},
	"주점/술집":  {"주점", "술집", "호프", "포차", "이자카야", "와인바", "펍"},
	"패스트푸드": {"패스트푸드", "햄버거", "버거", "핫도그", "샌드위치", "토스트"},
	"한식":     {"한식", "국밥", "찌개", "백반", "분식", "김밥", "떡볶이", "고기", "구이", "탕", "전골", "족발", "보쌈"},
	"아시안":    {"아시안", "쌀국수", "베트남", "태국", "마라탕", "마라", "양꼬치", "커리"},
	"양식":     {"양식", "파스타", "스테이크", "이탈리안", "샐러드", "수제버거"},
	"중식":     {"중식", "중국", "짬뽕", "짜장", "딤섬"},
	"일식":     {"일식", "초밥", "스시", "라멘", "우동", "돈가스", "덮밥", "오마카세"},
}

// ExpandKeywords turns a user-facing category into the set of raw-category
// keywords it should match. Expansion, in order: exact label match, then
// substring match in either direction against each label, then the raw
// input itself when nothing matched. Matching stays loose because the
// upstream data is finer grained than the coarse labels.
func ExpandKeywords(category string) []string {
	in := normalize(category)
	if in == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(kws []string) {
		for _, kw := range kws {
			if !seen[kw] {
				seen[kw] = true
				out = append(out, kw)
			}
		}
	}

	for label, kws := range keywordTable {
		if normalize(label) == in {
			add(kws)
		}
	}

	if len(out) == 0 {
		for label, kws := range keywordTable {
			nl := normalize(label)
			if strings.Contains(nl, in) || strings.Contains(in, nl) {
				add(kws)
			}
		}
	}

	if len(out) == 0 {
		out = append(out, strings.TrimSpace(category))
	}

	return out
}

// Matches reports whether a raw data-source category string contains at
// least one of the expanded keywords.
func Matches(rawCategory string, keywords []string) bool {
	raw := normalize(rawCategory)
	if raw == "" {
		return false
	}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(raw, normalize(kw)) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
