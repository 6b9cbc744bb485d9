package news

import "time"

const PlaceholderImage = "/placeholder-news.jpg"

type Author struct {
	Name       string
	ProfileURL string
}

type Article struct {
	Title        string
	Link         string
	Authors      []Author
	PublishedAt  *time.Time
	PublishedRaw string
	ImageURL     string
}

// PrimaryAuthor is the first listed author, used on compact slides.
func (a Article) PrimaryAuthor() (Author, bool) {
	if len(a.Authors) == 0 {
		return Author{}, false
	}
	return a.Authors[0], true
}

type Feed struct {
	ScrapedAt    *time.Time
	ScrapedAtRaw string
	Articles     []Article
}
