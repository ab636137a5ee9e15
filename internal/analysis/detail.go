package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/erica-likelion/team3-be/internal/ai"
)

// detailAnalysis asks the model for one narrative paragraph per criterion.
// The model output is coerced into the typed section list; any missing or
// unparseable section falls back to a static template that embeds the
// criterion's rationale verbatim.
func (s *Service) detailAnalysis(ctx context.Context, req *Request, scores []ScoreInfo) DetailAnalysis {
	fromModel := map[string]string{}

	raw, err := s.aiClient.Complete(ctx, buildDetailPrompt(req, scores))
	if err != nil {
		s.log.Warnw("detail narrative call failed, using templates", "error", err)
	} else {
		var out DetailAnalysis
		if derr := ai.DecodeJSON(raw, &out); derr != nil {
			s.log.Warnw("detail narrative unparseable, using templates", "error", derr)
		} else {
			for _, sec := range out.Sections {
				if strings.TrimSpace(sec.Content) != "" {
					fromModel[sec.Name] = sec.Content
				}
			}
		}
	}

	sections := make([]DetailSection, 0, len(scores))
	for _, sc := range scores {
		content, ok := fromModel[sc.Name]
		if !ok {
			content = fallbackDetailContent(sc)
		}
		sections = append(sections, DetailSection{Name: sc.Name, Content: content})
	}
	return DetailAnalysis{Sections: sections}
}

func buildDetailPrompt(req *Request, scores []ScoreInfo) string {
	var sb strings.Builder
	sb.WriteString("# Role: 대학가 상권 분석 컨설턴트\n")
	sb.WriteString("아래 점수와 근거를 바탕으로 예비 창업자에게 각 항목의 상세 분석을 작성하세요.\n")
	sb.WriteString("항목별로 점수가 나온 이유와 다음에 취할 행동을 3~4문장, 한국어 ~요체로 설명하세요.\n\n")

	sb.WriteString(fmt.Sprintf(
		"[조건] 업종: %s | 상권: %s | 영업방식: %s | 대표메뉴: %s",
		req.Category, req.MarketingArea, req.ManagementMethod, req.RepresentativeMenuName,
	))
	if req.RepresentativeMenuPrice != nil {
		sb.WriteString(fmt.Sprintf("(%d원)", *req.RepresentativeMenuPrice))
	}
	sb.WriteString("\n\n")

	for _, sc := range scores {
		sb.WriteString(fmt.Sprintf("[%s] %d점 | %s\n", sc.Name, sc.Score, sc.Reason))
	}

	sb.WriteString(`
# Output (JSON only, 마크다운 금지)
{
  "sections": [
    {"name": "접근성", "content": "..."},
    {"name": "예산 적합성", "content": "..."},
    {"name": "메뉴 적합성", "content": "..."}
  ]
}
`)
	return sb.String()
}

func fallbackDetailContent(sc ScoreInfo) string {
	return fmt.Sprintf(
		"%s 항목은 %d점이에요. %s 세부 조건을 조정해 다시 분석해보면 점수 변화를 확인할 수 있어요.",
		sc.Name, sc.Score, sc.Reason,
	)
}
