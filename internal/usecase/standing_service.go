package usecase

import (
	"context"
	"fmt"

	"github.com/iqscore/scorefeed/internal/domain/standing"
	"github.com/iqscore/scorefeed/internal/viewmodel"
)

type StandingService struct {
	source standing.Source
}

func NewStandingService(source standing.Source) *StandingService {
	return &StandingService{source: source}
}

// Tables returns every league table with zones applied. A league without
// rows is still returned; only an empty league list is an error.
func (s *StandingService) Tables(ctx context.Context, expansion viewmodel.Expansion) (viewmodel.StandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Tables")
	defer span.End()

	snap, err := s.source.ListStandings(ctx)
	if err != nil {
		return viewmodel.StandingsView{}, fmt.Errorf("list standings: %w", err)
	}
	if len(snap.Leagues) == 0 {
		return viewmodel.StandingsView{}, &EmptyResultError{Family: familyStandings, What: "ligas"}
	}
	return viewmodel.StandingsTables(snap, expansion), nil
}
