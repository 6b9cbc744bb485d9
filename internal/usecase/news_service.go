package usecase

import (
	"context"
	"fmt"

	"github.com/iqscore/scorefeed/internal/domain/news"
	"github.com/iqscore/scorefeed/internal/viewmodel"
)

type NewsService struct {
	source       news.Source
	carouselSize int
}

func NewNewsService(source news.Source, carouselSize int) *NewsService {
	return &NewsService{source: source, carouselSize: carouselSize}
}

func (s *NewsService) Feed(ctx context.Context) (viewmodel.NewsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Feed")
	defer span.End()

	feed, err := s.source.ListArticles(ctx)
	if err != nil {
		return viewmodel.NewsView{}, fmt.Errorf("list articles: %w", err)
	}
	if len(feed.Articles) == 0 {
		return viewmodel.NewsView{}, &EmptyResultError{Family: familyNews, What: "noticias"}
	}
	return viewmodel.NewsFeed(feed, s.carouselSize), nil
}
