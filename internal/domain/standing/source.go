package standing

import "context"

type Source interface {
	ListStandings(ctx context.Context) (Snapshot, error)
}
