package partnership

// Request carries only the target store name; everything else is
// resolved from the dataset.
type Request struct {
	StoreName string `json:"storeName" binding:"required"`
}

// PartnerInfo is one recommended cross-sell partner.
type PartnerInfo struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	DistanceMeters int    `json:"distanceMeters"`
	KakaomapURL    string `json:"kakaomapUrl"`
	Address        string `json:"address"`
}

// EventSuggestion is one promotional idea for a partner pairing.
type EventSuggestion struct {
	EventTitle  string `json:"eventTitle"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

type Response struct {
	TargetStoreName string            `json:"targetStoreName"`
	TargetCategory  string            `json:"targetCategory"`
	Partners        []PartnerInfo     `json:"partners"`
	Events          []EventSuggestion `json:"events"`
}
