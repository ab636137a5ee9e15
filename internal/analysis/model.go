package analysis

// MinMax is an inclusive integer range used for budget, deposit and
// floor-area inputs.
type MinMax struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

func (m *MinMax) valid() bool {
	return m != nil && m.Min != nil && m.Max != nil
}

// Request carries the prospective owner's site conditions.
// Addr is a "latitude,longitude" string in decimal degrees.
type Request struct {
	Addr                    string  `json:"addr" binding:"required"`
	Category                string  `json:"category" binding:"required"`
	MarketingArea           string  `json:"marketingArea"`
	Budget                  *MinMax `json:"budget" binding:"required"`                  // 월세 예산(만원)
	Deposit                 *MinMax `json:"deposit" binding:"required"`                 // 보증금 예산(만원)
	ManagementMethod        string  `json:"managementMethod" binding:"required"`        // "홀 영업 위주" 등
	RepresentativeMenuName  string  `json:"representativeMenuName" binding:"required"`  // 대표 메뉴명
	RepresentativeMenuPrice *int    `json:"representativeMenuPrice" binding:"required"` // 대표 메뉴 가격(원)
	Size                    *MinMax `json:"size"`                                       // 평
	Height                  *int    `json:"height"`                                     // 층 (음수 = 지하, 99 = 옥탑)
}

// Adjustment is one labeled signed line item of a score breakdown.
type Adjustment struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// ExpectedPrice is populated only by the budget criterion.
type ExpectedPrice struct {
	Monthly         int `json:"monthly"`
	SecurityDeposit int `json:"securityDeposit"`
}

// ScoreInfo is one criterion's result. Score is clamped into the
// criterion's own sub-range of [0,100].
type ScoreInfo struct {
	Name          string         `json:"name"`
	Score         int            `json:"score"`
	ExpectedPrice *ExpectedPrice `json:"expectedPrice,omitempty"`
	Reason        string         `json:"reason"`
	Penalties     []Adjustment   `json:"penalties"`
	Bonuses       []Adjustment   `json:"bonuses"`
}

type ReviewSample struct {
	StoreName   string   `json:"storeName"`
	ReviewScore float64  `json:"reviewScore"`
	Highlights  []string `json:"highlights"`
}

// ReviewAnalysis summarizes same-category reviews. AverageRating is nil
// when no review data exists; that is a valid outcome, not an error.
type ReviewAnalysis struct {
	AverageRating *float64       `json:"averageRating"`
	ReviewSamples []ReviewSample `json:"reviewSamples"`
	Feedback      string         `json:"feedback"`
}

type DetailSection struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type DetailAnalysis struct {
	Sections []DetailSection `json:"sections"`
}

// Response is the full analysis report.
type Response struct {
	Scores         []ScoreInfo    `json:"scores"`
	ReviewAnalysis ReviewAnalysis `json:"reviewAnalysis"`
	DetailAnalysis DetailAnalysis `json:"detailAnalysis"`
}

// Criterion display names, fixed by the frontend contract.
const (
	CriterionAccess = "접근성"
	CriterionBudget = "예산 적합성"
	CriterionMenu   = "메뉴 적합성"
)
