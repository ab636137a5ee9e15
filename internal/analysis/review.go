package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/erica-likelion/team3-be/internal/ai"
	"github.com/erica-likelion/team3-be/internal/category"
	"github.com/erica-likelion/team3-be/internal/restaurant"
)

const (
	maxReviewSamples   = 4
	promptReviewRunes  = 220
	fallbackHighlight  = 80
	emptyReviewMessage = "유사 업종의 리뷰 데이터가 아직 없어요. 주변 상권에 같은 업종이 적다는 의미일 수도 있으니, 차별화 전략을 세우기 좋은 조건이에요."
	staticFeedback     = "유사 업종 리뷰를 보면 맛과 가격 만족도가 재방문을 좌우하는 경향이 있어요. 대표 메뉴의 품질을 일정하게 유지하고, 학생 고객의 가격 민감도를 고려한 구성을 권장드려요."
)

// analyzeReviews collects reviews of same-category businesses across the
// whole dataset (not radius-restricted) and asks the model to pick
// representative samples. Every failure path degrades to local data; this
// subcomponent never fails the request.
func (s *Service) analyzeReviews(
	ctx context.Context,
	categoryInput string,
	all []*restaurant.Restaurant,
) ReviewAnalysis {

	keywords := category.ExpandKeywords(categoryInput)

	names := make(map[int64]string)
	var placeIDs []int64
	for _, r := range all {
		if r.KakaoPlaceID == 0 || !category.Matches(r.Category, keywords) {
			continue
		}
		names[r.KakaoPlaceID] = r.SafeName()
		placeIDs = append(placeIDs, r.KakaoPlaceID)
	}

	if len(placeIDs) == 0 {
		return emptyReviewAnalysis()
	}

	reviews, err := s.repo.ReviewsForPlaces(ctx, placeIDs)
	if err != nil {
		s.log.Warnw("review lookup failed, returning empty review analysis", "error", err)
		return emptyReviewAnalysis()
	}
	if len(reviews) == 0 {
		return emptyReviewAnalysis()
	}

	avg := averageRating(reviews)

	analysis, err := s.reviewsViaAI(ctx, categoryInput, names, reviews)
	if err != nil {
		s.log.Warnw("review AI analysis failed, using newest reviews", "error", err)
		analysis = fallbackReviewAnalysis(names, reviews)
	}
	analysis.AverageRating = avg
	return analysis
}

func emptyReviewAnalysis() ReviewAnalysis {
	return ReviewAnalysis{
		AverageRating: nil,
		ReviewSamples: []ReviewSample{},
		Feedback:      emptyReviewMessage,
	}
}

// averageRating is the mean of non-null ratings rounded to one decimal,
// or nil when nothing is rated.
func averageRating(reviews []*restaurant.Review) *float64 {
	var sum float64
	var n int
	for _, rv := range reviews {
		if rv.Rating != nil {
			sum += *rv.Rating
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(sum/float64(n)*10) / 10
	return &avg
}

type aiReviewResult struct {
	ReviewSamples []ReviewSample `json:"reviewSamples"`
	Feedback      string         `json:"feedback"`
}

func (s *Service) reviewsViaAI(
	ctx context.Context,
	categoryInput string,
	names map[int64]string,
	reviews []*restaurant.Review,
) (ReviewAnalysis, error) {

	raw, err := s.aiClient.Complete(ctx, buildReviewPrompt(categoryInput, names, reviews))
	if err != nil {
		return ReviewAnalysis{}, err
	}

	var out aiReviewResult
	if err := ai.DecodeJSON(raw, &out); err != nil {
		return ReviewAnalysis{}, err
	}
	if len(out.ReviewSamples) == 0 || strings.TrimSpace(out.Feedback) == "" {
		return ReviewAnalysis{}, fmt.Errorf("incomplete review analysis from model")
	}

	if len(out.ReviewSamples) > maxReviewSamples {
		out.ReviewSamples = out.ReviewSamples[:maxReviewSamples]
	}
	return ReviewAnalysis{
		ReviewSamples: out.ReviewSamples,
		Feedback:      out.Feedback,
	}, nil
}

func buildReviewPrompt(
	categoryInput string,
	names map[int64]string,
	reviews []*restaurant.Review,
) string {

	var sb strings.Builder
	sb.WriteString("# Role: 대학가 상권 리뷰 분석가\n")
	sb.WriteString(fmt.Sprintf("아래는 '%s' 업종 주변 가게들의 실제 리뷰입니다.\n", categoryInput))
	sb.WriteString("대표성이 높은 리뷰를 최대 4개 골라 요약하고, 예비 창업자를 위한 피드백을 작성하세요.\n\n")

	for _, rv := range reviews {
		rating := "-"
		if rv.Rating != nil {
			rating = fmt.Sprintf("%.1f", *rv.Rating)
		}
		content := collapseWhitespace(truncateRunes(rv.Content, promptReviewRunes))
		sb.WriteString(fmt.Sprintf("[%s] (%s) %s\n", names[rv.KakaoPlaceID], rating, content))
	}

	sb.WriteString(`
# Output (JSON only, 마크다운 금지)
{
  "reviewSamples": [
    {"storeName": "가게명", "reviewScore": 4.5, "highlights": ["리뷰 핵심 한 줄"]}
  ],
  "feedback": "리뷰 전반에서 드러나는 경향과 창업자가 참고할 조언 2~3문장, ~요체"
}
`)
	return sb.String()
}

// fallbackReviewAnalysis serves the 4 newest reviews verbatim when the
// model path fails.
func fallbackReviewAnalysis(
	names map[int64]string,
	reviews []*restaurant.Review,
) ReviewAnalysis {

	limit := len(reviews)
	if limit > maxReviewSamples {
		limit = maxReviewSamples
	}

	samples := make([]ReviewSample, 0, limit)
	for _, rv := range reviews[:limit] {
		score := 0.0
		if rv.Rating != nil {
			score = *rv.Rating
		}
		samples = append(samples, ReviewSample{
			StoreName:   names[rv.KakaoPlaceID],
			ReviewScore: score,
			Highlights:  []string{collapseWhitespace(truncateRunes(rv.Content, fallbackHighlight))},
		})
	}

	return ReviewAnalysis{
		ReviewSamples: samples,
		Feedback:      staticFeedback,
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
