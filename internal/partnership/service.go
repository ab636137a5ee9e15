package partnership

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/erica-likelion/team3-be/internal/ai"
	"github.com/erica-likelion/team3-be/internal/category"
	"github.com/erica-likelion/team3-be/internal/geo"
	"github.com/erica-likelion/team3-be/internal/restaurant"
)

var (
	// ErrStoreNotFound means the named store is not in the dataset.
	ErrStoreNotFound = errors.New("store not found")
	// ErrNoCoordinate means the target record cannot anchor a search.
	ErrNoCoordinate = errors.New("target store has no coordinate")
	// ErrNoPartners means the radius ladder was exhausted without
	// enough complementary candidates. User-visible, no fallback.
	ErrNoPartners = errors.New("no partner candidates within search radius")
)

// radiusLadder is the progressive search radius sequence in meters.
var radiusLadder = []float64{50, 100, 150, 200, 250, 300, 350, 400, 450, 500}

const desiredPartners = 2

// eventTitles is the fixed promotional idea-type enum. Duplicate titles
// within one response are swapped for an unused entry, in this order.
var eventTitles = []string{
	"쿠폰", "연계할인", "세트혜택", "스탬프", "타임세일", "영수증교차혜택", "사이드서비스", "첫방문혜택",
}

type Service struct {
	repo     restaurant.Reader
	aiClient ai.Client
	log      *zap.SugaredLogger
}

func NewService(repo restaurant.Reader, aiClient ai.Client, log *zap.SugaredLogger) *Service {
	return &Service{repo: repo, aiClient: aiClient, log: log}
}

// Recommend resolves the target store, finds up to 2 complementary-type
// partners via the radius ladder and produces one promotional idea per
// partner.
func (s *Service) Recommend(ctx context.Context, storeName string) (*Response, error) {
	name := strings.TrimSpace(storeName)
	if name == "" {
		return nil, ErrStoreNotFound
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	target := findByName(all, name)
	if target == nil {
		return nil, ErrStoreNotFound
	}
	if !target.HasCoordinate() {
		return nil, ErrNoCoordinate
	}

	targetType := category.SimpleType(target.Category)
	partnerType := category.OppositeType(targetType)

	partners := pickPartners(all, target, partnerType, desiredPartners)
	if len(partners) < desiredPartners {
		return nil, ErrNoPartners
	}

	s.log.Infow("partner candidates selected",
		"target", target.SafeName(),
		"targetType", targetType,
		"partners", len(partners),
	)

	events := s.generateEvents(ctx, target, partners, partnerType)

	return &Response{
		TargetStoreName: target.SafeName(),
		TargetCategory:  targetType,
		Partners:        partners,
		Events:          events,
	}, nil
}

func findByName(all []*restaurant.Restaurant, name string) *restaurant.Restaurant {
	want := restaurant.NormalizeName(name)
	for _, r := range all {
		if restaurant.NormalizeName(r.Name) == want {
			return r
		}
	}
	return nil
}

// pickPartners walks the radius ladder until enough complementary-type
// candidates are found, then orders by distance with rating as the
// tie-break and caps to limit.
func pickPartners(
	all []*restaurant.Restaurant,
	target *restaurant.Restaurant,
	partnerType string,
	limit int,
) []PartnerInfo {

	type candidate struct {
		r        *restaurant.Restaurant
		distance int
	}

	tLat, tLng := *target.Latitude, *target.Longitude

	var found []candidate
	for _, radius := range radiusLadder {
		found = found[:0]
		for _, r := range all {
			if !r.HasCoordinate() || sameRestaurant(r, target) {
				continue
			}
			if category.SimpleType(r.Category) != partnerType {
				continue
			}
			d := geo.Distance(tLat, tLng, *r.Latitude, *r.Longitude)
			if d <= radius {
				found = append(found, candidate{r: r, distance: int(math.Round(d))})
			}
		}
		if len(found) >= limit {
			break
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].r.SafeRating() > found[j].r.SafeRating()
	})

	if len(found) > limit {
		found = found[:limit]
	}

	out := make([]PartnerInfo, 0, len(found))
	for _, c := range found {
		out = append(out, PartnerInfo{
			Name:           c.r.SafeName(),
			Category:       category.SimpleType(c.r.Category),
			DistanceMeters: c.distance,
			KakaomapURL:    c.r.KakaoURL,
			Address:        c.r.BestAddress(),
		})
	}
	return out
}

func sameRestaurant(a, b *restaurant.Restaurant) bool {
	if a.KakaoPlaceID != 0 && b.KakaoPlaceID != 0 {
		return a.KakaoPlaceID == b.KakaoPlaceID
	}
	return restaurant.NormalizeName(a.Name) == restaurant.NormalizeName(b.Name)
}

type eventOutput struct {
	EventTitle  string `json:"eventTitle"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// generateEvents issues one AI call per partner concurrently, then
// resolves duplicate idea-type titles sequentially so the substitution
// order stays deterministic. A failed call degrades to the partner's
// templated fallback.
func (s *Service) generateEvents(
	ctx context.Context,
	target *restaurant.Restaurant,
	partners []PartnerInfo,
	partnerType string,
) []EventSuggestion {

	results := make([]EventSuggestion, len(partners))
	succeeded := make([]bool, len(partners))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range partners {
		i, p := i, p
		g.Go(func() error {
			seed := eventSeed(target.SafeName(), p, i)
			raw, err := s.aiClient.Complete(gctx, buildEventPrompt(target.SafeName(), category.SimpleType(target.Category), p, seed))
			if err != nil {
				s.log.Warnw("event suggestion call failed", "partner", p.Name, "error", err)
				return nil
			}

			var out eventOutput
			if err := ai.DecodeJSON(raw, &out); err != nil {
				s.log.Warnw("event suggestion unparseable", "partner", p.Name, "error", err)
				return nil
			}

			desc := sanitize(out.Description)
			if desc == "" {
				return nil
			}
			results[i] = EventSuggestion{
				EventTitle:  strings.TrimSpace(out.EventTitle),
				Description: desc,
				Reason:      sanitizeReason(out.Reason, p),
			}
			succeeded[i] = true
			return nil
		})
	}
	_ = g.Wait()

	used := make(map[string]bool)
	final := make([]EventSuggestion, 0, len(partners))
	for i, p := range partners {
		if !succeeded[i] {
			final = append(final, fallbackEvent(p, partnerType, used))
			continue
		}
		ev := results[i]
		ev.EventTitle = resolveTitle(ev.EventTitle, used)
		used[ev.EventTitle] = true
		final = append(final, ev)
	}
	return final
}

// eventSeed varies the prompt deterministically per pairing to reduce
// incidental duplication across partners in one response.
func eventSeed(targetName string, p PartnerInfo, index int) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%d|%d", targetName, p.Name, p.DistanceMeters, index)
	return fmt.Sprintf("%08x", h.Sum32())
}

// resolveTitle maps an unknown title to the default and swaps duplicates
// for an unused enum entry.
func resolveTitle(title string, used map[string]bool) string {
	allowed := false
	for _, t := range eventTitles {
		if t == title {
			allowed = true
			break
		}
	}
	if !allowed {
		title = "연계할인"
	}
	if used[title] {
		for _, t := range eventTitles {
			if !used[t] {
				return t
			}
		}
	}
	return title
}

func buildEventPrompt(targetName, targetType string, p PartnerInfo, seed string) string {
	return fmt.Sprintf(`# Role: 대학가 상권 제휴 아이디어 컨설턴트
# Goal
- 아래 타깃 매장과 파트너 후보를 보고 정확히 1개의 제휴 이벤트 아이디어를 만드세요.
- 당신은 이벤트를 홍보하는 것이 아니라 제안하는 역할입니다.
- 모든 문장은 제안형(~해보세요/~제안드려요)으로 작성하고, 이미 운영 중인 것처럼 쓰지 마세요.

[Seed]: %s
[Target] name: %s | type: %s
[Partner] name: %s | type: %s | dist: %dm | addr: %s

# Style
- 한국어 ~요체, 제안/권유 어투. 느낌표 금지, 물음표 최대 1회.
- 광고성 멘트와 라벨 서두("혜택 제공처: ...") 금지.
- 조사 괄호 표기("와(과)" 등) 금지.

# Output (JSON only)
{
  "eventTitle": "쿠폰|연계할인|세트혜택|스탬프|타임세일|영수증교차혜택|사이드서비스|첫방문혜택 중 1개",
  "description": "170~230자. 제안형 문구로 시작. 대상/혜택 수준/시간대/증빙/제한/운영 팁을 담고, 마지막에 '선택 이유: ...' 1문장.",
  "reason": "한 문장. 파트너 이름과 거리(m)를 포함해 왜 이 조합인지 제안형으로 설명."
}`,
		seed,
		targetName, targetType,
		p.Name, p.Category, p.DistanceMeters, p.Address,
	)
}

// fallbackEvent is the templated per-partner substitute when the model
// path fails; it still references the partner's name and distance.
func fallbackEvent(p PartnerInfo, partnerType string, used map[string]bool) EventSuggestion {
	title := "연계할인"
	if !used["세트혜택"] {
		title = "세트혜택"
	}
	used[title] = true

	var desc string
	if partnerType == category.TypeCafe {
		desc = fmt.Sprintf(
			"%s(%dm)와 교차 방문을 유도해보는 건 어떠세요? 점심 이후(14~16시) '대표메뉴+아메리카노' 라이트 세트나 음료 10%% 내외 연계할인을 제안드려요. 상호 영수증 확인, 1인 1회, 혼잡 시간 제외로 운영해보세요. 선택 이유: 식사 뒤 음료 동선이 자연스러워 부담 없이 시도하기 좋아요.",
			p.Name, p.DistanceMeters,
		)
	} else {
		desc = fmt.Sprintf(
			"%s(%dm)와 가벼운 세트를 도입해보는 건 어떠세요? 공강 시간(15~17시)에 '라이트 식사+음료' 구성을 10%% 내외 혜택으로 제안드려요. 학생증이나 스탬프 증빙, 1인 1세트 권장으로 운영해보세요. 선택 이유: 짧은 시간에 간단히 해결하려는 수요와 잘 맞아요.",
			p.Name, p.DistanceMeters,
		)
	}

	return EventSuggestion{
		EventTitle:  title,
		Description: sanitize(desc),
		Reason:      fmt.Sprintf("%s(%dm)와 가까워서 동선이 자연스러워요.", p.Name, p.DistanceMeters),
	}
}
