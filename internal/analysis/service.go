package analysis

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/erica-likelion/team3-be/internal/ai"
	"github.com/erica-likelion/team3-be/internal/category"
	"github.com/erica-likelion/team3-be/internal/geo"
	"github.com/erica-likelion/team3-be/internal/restaurant"
)

// ErrBadCoordinate means the request's addr field is not a parseable
// "latitude,longitude" pair.
var ErrBadCoordinate = errors.New("invalid coordinate string")

type Service struct {
	repo     restaurant.Reader
	aiClient ai.Client
	cfg      Config
	log      *zap.SugaredLogger
}

func NewService(
	repo restaurant.Reader,
	aiClient ai.Client,
	cfg Config,
	log *zap.SugaredLogger,
) *Service {
	return &Service{
		repo:     repo,
		aiClient: aiClient,
		cfg:      cfg,
		log:      log,
	}
}

// Analyze runs the full site analysis: competitor filtering, the three
// scorers, review aggregation and the detail narrative. The three scorers
// and the review call are independent and run concurrently; the detail
// narrative needs the scorers' rationales and runs after them.
func (s *Service) Analyze(ctx context.Context, req *Request) (*Response, error) {
	site, err := ParseCoordinate(req.Addr)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	nearby, err := s.repo.WithinRadius(ctx, site.Lat, site.Lng, s.cfg.CompetitorRadiusMeters)
	if err != nil {
		return nil, err
	}

	competitors := filterCompetitors(site, req.Category, nearby, all)
	s.log.Infow("competitor filter",
		"category", req.Category,
		"nearby", len(nearby),
		"competitors", len(competitors),
	)

	var (
		accessScore ScoreInfo
		budgetScore ScoreInfo
		menuScore   ScoreInfo
		reviews     ReviewAnalysis
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accessScore = scoreAccessibility(s.cfg, site, req.Height, competitors)
		return nil
	})
	g.Go(func() error {
		budgetScore = scoreBudget(s.cfg, req)
		return nil
	})
	g.Go(func() error {
		menuScore = s.scoreMenu(gctx, req)
		return nil
	})
	g.Go(func() error {
		reviews = s.analyzeReviews(gctx, req.Category, all)
		return nil
	})
	// Scorers absorb their own failures; nothing here returns an error.
	_ = g.Wait()

	scores := []ScoreInfo{accessScore, budgetScore, menuScore}
	detail := s.detailAnalysis(ctx, req, scores)

	return &Response{
		Scores:         scores,
		ReviewAnalysis: reviews,
		DetailAnalysis: detail,
	}, nil
}

// ParseCoordinate parses a "latitude,longitude" decimal-degree string.
func ParseCoordinate(addr string) (geo.Point, error) {
	parts := strings.Split(addr, ",")
	if len(parts) != 2 {
		return geo.Point{}, ErrBadCoordinate
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Point{}, ErrBadCoordinate
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Point{}, ErrBadCoordinate
	}
	return geo.Point{Lat: lat, Lng: lng}, nil
}

// filterCompetitors intersects the "within radius" subset with the
// dataset-wide "same category" subset, keyed by place ID falling back to
// normalized name. Category matching runs over the full dataset because
// the review aggregator reuses the same dataset-scoped semantics.
func filterCompetitors(
	site geo.Point,
	categoryInput string,
	nearby []*restaurant.Restaurant,
	all []*restaurant.Restaurant,
) []Competitor {

	keywords := category.ExpandKeywords(categoryInput)

	sameCategory := make(map[string]bool)
	for _, r := range all {
		if category.Matches(r.Category, keywords) {
			sameCategory[r.Key()] = true
		}
	}

	var out []Competitor
	seen := make(map[string]bool)
	for _, r := range nearby {
		if !r.HasCoordinate() {
			continue
		}
		key := r.Key()
		if !sameCategory[key] || seen[key] {
			continue
		}
		seen[key] = true

		d := geo.Distance(site.Lat, site.Lng, *r.Latitude, *r.Longitude)
		out = append(out, Competitor{
			Name:           r.SafeName(),
			DistanceMeters: int(math.Round(d)),
		})
	}
	return out
}
