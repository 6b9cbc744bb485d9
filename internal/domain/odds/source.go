package odds

import "context"

type Source interface {
	ListLeagueOdds(ctx context.Context) (Board, error)
	ListPromotions(ctx context.Context) (PromotionList, error)
	GetLeagueCard(ctx context.Context) (LeagueCard, error)
}
