package scraper

import (
	"github.com/iqscore/scorefeed/internal/domain/news"
	"github.com/iqscore/scorefeed/internal/platform/textfix"
)

// normalizeNews maps {scraped_at, articles: [{title, link, authors:
// [{name, profile_url}], publication_date_iso, image_url}]}.
func normalizeNews(raw []byte) (news.Feed, error) {
	root, err := decodePayload(FamilyNews, raw)
	if err != nil {
		return news.Feed{}, err
	}

	var feed news.Feed
	var items []any
	switch typed := root.(type) {
	case []any:
		items = typed
	case map[string]any:
		found, ok := getSliceAny(typed, "articles", "noticias", "news", "data")
		if !ok {
			return news.Feed{}, shapeError(FamilyNews, "articles is not an array")
		}
		items = found
		feed.ScrapedAtRaw = getStringAny(typed, "scraped_at", "date_scraped")
		feed.ScrapedAt = parseTimestamp(feed.ScrapedAtRaw)
	default:
		return news.Feed{}, shapeError(FamilyNews, "payload is neither an object nor an array")
	}

	feed.Articles = make([]news.Article, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		a := news.Article{
			Title:        getStringAny(obj, "title", "titulo"),
			Link:         getStringAny(obj, "link", "url"),
			PublishedRaw: getStringAny(obj, "publication_date_iso", "published_at", "date"),
			ImageURL:     getStringAny(obj, "image_url", "image", "imagen"),
			Authors:      normalizeAuthors(lookupValue(obj, "authors", "author", "autores")),
		}
		if a.Title == "" || isHeaderEcho(a.Title, "title", "titulo") {
			continue
		}
		if a.ImageURL == "" {
			a.ImageURL = news.PlaceholderImage
		}
		a.PublishedAt = parseTimestamp(a.PublishedRaw)
		feed.Articles = append(feed.Articles, a)
	}
	return feed, nil
}

// normalizeAuthors accepts a list of {name, profile_url}, a list of names or a
// single name.
func normalizeAuthors(raw any) []news.Author {
	switch typed := raw.(type) {
	case string:
		if name := textfix.Clean(typed); name != "" {
			return []news.Author{{Name: name}}
		}
		return nil
	case map[string]any:
		return normalizeAuthors([]any{typed})
	case []any:
		out := make([]news.Author, 0, len(typed))
		for _, item := range typed {
			switch a := item.(type) {
			case string:
				if name := textfix.Clean(a); name != "" {
					out = append(out, news.Author{Name: name})
				}
			case map[string]any:
				author := news.Author{
					Name:       getStringAny(a, "name", "nombre"),
					ProfileURL: getStringAny(a, "profile_url", "profileUrl", "url"),
				}
				if author.Name != "" {
					out = append(out, author)
				}
			}
		}
		return out
	default:
		return nil
	}
}
