package category

import "testing"

func TestExpandKeywords_ExactLabel(t *testing.T) {
	kws := ExpandKeywords("카페/디저트")
	if len(kws) == 0 {
		t.Fatal("expected keywords for exact label")
	}
	if !contains(kws, "커피") {
		t.Errorf("expected 커피 in %v", kws)
	}
}

func TestExpandKeywords_SubstringLabel(t *testing.T) {
	// "카페" alone should hit the 카페/디저트 bucket via substring match.
	kws := ExpandKeywords("카페")
	if !contains(kws, "디저트") {
		t.Errorf("expected 디저트 in %v", kws)
	}
}

func TestExpandKeywords_FallbackToRawInput(t *testing.T) {
	kws := ExpandKeywords("샤브샤브")
	if len(kws) != 1 || kws[0] != "샤브샤브" {
		t.Errorf("expected raw input fallback, got %v", kws)
	}
}

func TestExpandKeywords_Blank(t *testing.T) {
	if kws := ExpandKeywords("  "); kws != nil {
		t.Errorf("expected nil for blank input, got %v", kws)
	}
}

func TestMatches_SubstringContainment(t *testing.T) {
	kws := ExpandKeywords("카페/디저트")

	cases := []struct {
		raw  string
		want bool
	}{
		{"음식점 > 카페 > 커피전문점", true},
		{"음식점 > 간식 > 아이스크림", true},
		{"음식점 > 한식 > 국밥", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Matches(c.raw, kws); got != c.want {
			t.Errorf("Matches(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

// Expanding an expanded keyword and re-matching yields the same membership.
func TestMatches_Idempotent(t *testing.T) {
	kws := ExpandKeywords("중식")
	raw := "음식점 > 중식 > 짬뽕전문"
	if !Matches(raw, kws) {
		t.Fatal("expected match")
	}
	for _, kw := range kws {
		again := ExpandKeywords(kw)
		if Matches(raw, kws) != Matches(raw, append(kws, again...)) {
			t.Errorf("re-expansion changed membership for %q", kw)
		}
	}
}

func TestSimpleType(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"음식점 > 카페 > 커피전문점", TypeCafe},
		{"음식점 > 간식 > 베이커리", TypeCafe},
		{"음식점 > 한식 > 국밥", TypeEatery},
		{"음식점 > 일식 > 초밥", TypeEatery},
		{"알 수 없음", TypeEatery},
	}
	for _, c := range cases {
		if got := SimpleType(c.raw); got != c.want {
			t.Errorf("SimpleType(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestOppositeType(t *testing.T) {
	if OppositeType(TypeCafe) != TypeEatery {
		t.Error("cafe should partner with eatery")
	}
	if OppositeType(TypeEatery) != TypeCafe {
		t.Error("eatery should partner with cafe")
	}
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
