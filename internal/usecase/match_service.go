package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/iqscore/scorefeed/internal/domain/match"
	"github.com/iqscore/scorefeed/internal/viewmodel"
)

type MatchService struct {
	source   match.Source
	carousel viewmodel.CarouselOptions
}

func NewMatchService(source match.Source, carousel viewmodel.CarouselOptions) *MatchService {
	return &MatchService{source: source, carousel: carousel}
}

// TopCarousel picks the preferred league from the top-matches listing and
// returns its first matches.
func (s *MatchService) TopCarousel(ctx context.Context) (viewmodel.TopMatchesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.TopCarousel")
	defer span.End()

	leagues, err := s.source.ListTopMatches(ctx)
	if err != nil {
		return viewmodel.TopMatchesView{}, fmt.Errorf("list top matches: %w", err)
	}
	if len(leagues) == 0 {
		return viewmodel.TopMatchesView{}, &EmptyResultError{Family: familyTopMatches, What: "ligas"}
	}

	view := viewmodel.TopMatchesCarousel(leagues, s.carousel)
	if len(view.Matches) == 0 {
		return viewmodel.TopMatchesView{}, &EmptyResultError{Family: familyTopMatches, What: "partidos"}
	}
	return view, nil
}

// Detail fetches the detail for summary's link and layers it over summary.
func (s *MatchService) Detail(ctx context.Context, summary match.Match) (viewmodel.DetailView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Detail")
	defer span.End()

	link := strings.TrimSpace(summary.DetailLink)
	if link == "" {
		return viewmodel.DetailView{}, fmt.Errorf("%w: detail link is required", ErrInvalidInput)
	}

	detail, err := s.source.GetDetail(ctx, link)
	if err != nil {
		return viewmodel.DetailView{}, fmt.Errorf("get match detail: %w", err)
	}
	return viewmodel.MatchDetailView(summary, detail), nil
}
