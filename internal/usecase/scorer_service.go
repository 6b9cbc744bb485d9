package usecase

import (
	"context"
	"fmt"

	"github.com/iqscore/scorefeed/internal/domain/scorer"
	"github.com/iqscore/scorefeed/internal/viewmodel"
)

type ScorerService struct {
	source scorer.Source
}

func NewScorerService(source scorer.Source) *ScorerService {
	return &ScorerService{source: source}
}

func (s *ScorerService) Board(ctx context.Context) (viewmodel.ScorersView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.Board")
	defer span.End()

	board, err := s.source.ListScorers(ctx)
	if err != nil {
		return viewmodel.ScorersView{}, fmt.Errorf("list scorers: %w", err)
	}
	if board.Total() == 0 {
		return viewmodel.ScorersView{}, &EmptyResultError{Family: familyScorers, What: "goleadores"}
	}
	return viewmodel.ScorersTable(board), nil
}
