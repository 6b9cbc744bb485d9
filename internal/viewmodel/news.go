package viewmodel

import (
	"time"

	"github.com/iqscore/scorefeed/internal/domain/news"
)

// DefaultCarouselSize is how many articles lead the feed as slides.
const DefaultCarouselSize = 3

type AuthorView struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url,omitempty"`
}

type ArticleCard struct {
	Title        string       `json:"title"`
	Link         string       `json:"link"`
	ImageURL     string       `json:"image_url"`
	Author       AuthorView   `json:"author"`
	Authors      []AuthorView `json:"authors"`
	PublishedAt  *time.Time   `json:"published_at,omitempty"`
	PublishedDay string       `json:"published_day"`
}

type NewsView struct {
	UpdatedAt  *time.Time    `json:"updated_at,omitempty"`
	UpdatedDay string        `json:"updated_day"`
	Carousel   []ArticleCard `json:"carousel"`
	List       []ArticleCard `json:"list"`
}

// NewsFeed puts the first carouselSize articles in the carousel and the rest
// in the list. Compact slides use Author, the full card lists Authors.
func NewsFeed(feed news.Feed, carouselSize int) NewsView {
	if carouselSize <= 0 {
		carouselSize = DefaultCarouselSize
	}

	cards := make([]ArticleCard, 0, len(feed.Articles))
	for _, a := range feed.Articles {
		card := ArticleCard{
			Title:        a.Title,
			Link:         a.Link,
			ImageURL:     a.ImageURL,
			Authors:      make([]AuthorView, 0, len(a.Authors)),
			PublishedAt:  a.PublishedAt,
			PublishedDay: FormatDay(a.PublishedAt, a.PublishedRaw),
		}
		if card.ImageURL == "" {
			card.ImageURL = news.PlaceholderImage
		}
		if primary, ok := a.PrimaryAuthor(); ok {
			card.Author = AuthorView{Name: primary.Name, ProfileURL: primary.ProfileURL}
		}
		for _, author := range a.Authors {
			card.Authors = append(card.Authors, AuthorView{Name: author.Name, ProfileURL: author.ProfileURL})
		}
		cards = append(cards, card)
	}

	split := min(carouselSize, len(cards))
	return NewsView{
		UpdatedAt:  feed.ScrapedAt,
		UpdatedDay: FormatDay(feed.ScrapedAt, feed.ScrapedAtRaw),
		Carousel:   cards[:split],
		List:       cards[split:],
	}
}
