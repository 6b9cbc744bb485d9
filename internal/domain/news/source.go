package news

import "context"

type Source interface {
	ListArticles(ctx context.Context) (Feed, error)
}
