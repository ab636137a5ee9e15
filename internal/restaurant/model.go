package restaurant

import (
	"strconv"
	"strings"
)

// Restaurant is a crawled Kakao place. Immutable after ingestion; the
// analysis pipeline only ever reads these.
type Restaurant struct {
	KakaoPlaceID  int64    `json:"kakaoPlaceId"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Rating        *float64 `json:"rating"`
	RatingCount   *int     `json:"ratingCount"`
	ReviewCount   *int     `json:"reviewCount"`
	RoadAddress   string   `json:"roadAddress"`
	NumberAddress string   `json:"numberAddress"`
	BusinessTime  string   `json:"businessTime"`
	KakaoURL      string   `json:"kakaoUrl"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// Review is one crawled review row. SourceReviewID is a content hash used
// for idempotent ingestion.
type Review struct {
	ID             int64    `json:"id"`
	KakaoPlaceID   int64    `json:"kakaoPlaceId"`
	SourceReviewID string   `json:"sourceReviewId"`
	Rating         *float64 `json:"rating"`
	Content        string   `json:"content"`
}

// HasCoordinate reports whether the record can take part in geospatial
// operations. (0,0) is a geocoding failure marker in the crawl data.
func (r *Restaurant) HasCoordinate() bool {
	if r.Latitude == nil || r.Longitude == nil {
		return false
	}
	return *r.Latitude != 0 || *r.Longitude != 0
}

// Key is the stable identity used when intersecting restaurant sets:
// the Kakao place ID when present, else the normalized name.
func (r *Restaurant) Key() string {
	if r.KakaoPlaceID != 0 {
		return "p:" + strconv.FormatInt(r.KakaoPlaceID, 10)
	}
	return "n:" + NormalizeName(r.Name)
}

// BestAddress prefers the road-form address, falling back to lot-form.
func (r *Restaurant) BestAddress() string {
	if strings.TrimSpace(r.RoadAddress) != "" {
		return r.RoadAddress
	}
	if strings.TrimSpace(r.NumberAddress) != "" {
		return r.NumberAddress
	}
	return ""
}

// SafeName never returns an empty display name.
func (r *Restaurant) SafeName() string {
	if strings.TrimSpace(r.Name) == "" {
		return "(이름없음)"
	}
	return r.Name
}

// SafeRating treats a missing rating as zero for sorting purposes.
func (r *Restaurant) SafeRating() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

// NormalizeName lowercases and strips all whitespace for name equality.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
