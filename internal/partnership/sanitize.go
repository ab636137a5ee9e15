package partnership

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	multiQuestion = regexp.MustCompile(`(\?\s*){2,}`)

	// Particle-parenthesis spellings and label openers the model keeps
	// producing despite the prompt bans.
	bannedFragments = strings.NewReplacer(
		"혜택 제공처:", "",
		"혜택 제공처 :", "",
		"(와)", "", "(과)", "",
		"(을)", "", "(를)", "",
		"(이)", "", "(가)", "",
		"(은)", "", "(는)", "",
	)

	// Completed/ongoing phrasing gets softened back into suggestions.
	toneFixes = []struct {
		pattern *regexp.Regexp
		replace string
	}{
		{regexp.MustCompile(`제공(됩니다|해요|합니다)`), "제공을 제안드려요"},
		{regexp.MustCompile(`진행 중입니다`), "도입을 검토해보세요"},
		{regexp.MustCompile(`진행됩니다`), "진행을 제안드려요"},
		{regexp.MustCompile(`적용됩니다`), "적용을 권장드려요"},
		{regexp.MustCompile(`받을 수 있습니다`), "받도록 제안드려요"},
		{regexp.MustCompile(`이용 가능(합니다|해요)`), "이용하도록 제안드려요"},
		{regexp.MustCompile(`운영됩니다`), "운영해보세요"},
	}
)

// sanitize normalizes model output into the suggestion tone the product
// requires: no label openers, no particle parentheses, no completed-tense
// promises, at most single question marks, collapsed whitespace.
func sanitize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}

	s = bannedFragments.Replace(s)
	for _, fix := range toneFixes {
		s = fix.pattern.ReplaceAllString(s, fix.replace)
	}
	s = multiQuestion.ReplaceAllString(s, "? ")
	return strings.Join(strings.Fields(s), " ")
}

func sanitizeReason(reason string, p PartnerInfo) string {
	r := sanitize(reason)
	if r == "" {
		return fmt.Sprintf("%s(%dm)이 가까워서 동선이 자연스러워요.", p.Name, p.DistanceMeters)
	}
	return r
}
