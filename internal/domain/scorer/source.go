package scorer

import "context"

type Source interface {
	ListScorers(ctx context.Context) (Board, error)
}
