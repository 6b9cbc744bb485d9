package match

import "context"

// Source is the upstream port for fixtures.
type Source interface {
	ListTopMatches(ctx context.Context) ([]LeagueMatches, error)
	GetDetail(ctx context.Context, link string) (Detail, error)
}
