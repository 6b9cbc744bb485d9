package usecase

import (
	"context"
	"fmt"

	"github.com/iqscore/scorefeed/internal/domain/odds"
	"github.com/iqscore/scorefeed/internal/viewmodel"
)

type OddsService struct {
	source odds.Source
}

func NewOddsService(source odds.Source) *OddsService {
	return &OddsService{source: source}
}

// Board returns the odds-by-league listing grouped by match group label.
func (s *OddsService) Board(ctx context.Context) (viewmodel.OddsBoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OddsService.Board")
	defer span.End()

	board, err := s.source.ListLeagueOdds(ctx)
	if err != nil {
		return viewmodel.OddsBoardView{}, fmt.Errorf("list league odds: %w", err)
	}

	view := viewmodel.OddsBoard(board)
	if view.Total == 0 {
		return viewmodel.OddsBoardView{}, &EmptyResultError{Family: familyLeagueOdds, What: "cuotas"}
	}
	return view, nil
}

type PromotionService struct {
	source odds.Source
}

func NewPromotionService(source odds.Source) *PromotionService {
	return &PromotionService{source: source}
}

func (s *PromotionService) List(ctx context.Context) (viewmodel.PromotionsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PromotionService.List")
	defer span.End()

	list, err := s.source.ListPromotions(ctx)
	if err != nil {
		return viewmodel.PromotionsView{}, fmt.Errorf("list promotions: %w", err)
	}
	if len(list.Promotions) == 0 {
		return viewmodel.PromotionsView{}, &EmptyResultError{Family: familyPromotions, What: "promociones"}
	}
	return viewmodel.PromotionsList(list), nil
}

type LeagueCardService struct {
	source odds.Source
}

func NewLeagueCardService(source odds.Source) *LeagueCardService {
	return &LeagueCardService{source: source}
}

// Get returns the league odds card. A card with any one of its sections is
// a valid render.
func (s *LeagueCardService) Get(ctx context.Context) (viewmodel.LeagueCardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueCardService.Get")
	defer span.End()

	card, err := s.source.GetLeagueCard(ctx)
	if err != nil {
		return viewmodel.LeagueCardView{}, fmt.Errorf("get league card: %w", err)
	}
	if len(card.Fixtures) == 0 && len(card.TitleOdds) == 0 && len(card.Combined.Legs) == 0 {
		return viewmodel.LeagueCardView{}, &EmptyResultError{Family: familyLeagueCard, What: "cuotas de la liga"}
	}
	return viewmodel.LeagueCard(card), nil
}
