package scraper

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/iqscore/scorefeed/internal/domain/match"
	"github.com/iqscore/scorefeed/internal/domain/news"
	"github.com/iqscore/scorefeed/internal/domain/odds"
	"github.com/iqscore/scorefeed/internal/domain/scorer"
	"github.com/iqscore/scorefeed/internal/domain/standing"
	"github.com/iqscore/scorefeed/internal/usecase"
)

var (
	_ match.Source    = (*Client)(nil)
	_ standing.Source = (*Client)(nil)
	_ odds.Source     = (*Client)(nil)
	_ news.Source     = (*Client)(nil)
	_ scorer.Source   = (*Client)(nil)
)

func (c *Client) ListLeagueOdds(ctx context.Context) (odds.Board, error) {
	board, err := fetchNormalized(ctx, c, getSpec(FamilyLeagueOdds, c.endpoints.LeagueOdds), nil, normalizeLeagueOdds)
	if err != nil {
		return odds.Board{}, err
	}
	n := 0
	for _, l := range board.Leagues {
		n += len(l.Matches)
	}
	c.metrics.RecordNormalized(FamilyLeagueOdds, n)
	return board, nil
}

func (c *Client) ListPromotions(ctx context.Context) (odds.PromotionList, error) {
	list, err := fetchNormalized(ctx, c, getSpec(FamilyPromotions, c.endpoints.Promotions), nil, normalizePromotions)
	if err != nil {
		return odds.PromotionList{}, err
	}
	c.metrics.RecordNormalized(FamilyPromotions, len(list.Promotions))
	return list, nil
}

func (c *Client) GetLeagueCard(ctx context.Context) (odds.LeagueCard, error) {
	card, err := fetchNormalized(ctx, c, getSpec(FamilyLeagueCard, c.endpoints.LeagueCard), nil, normalizeLeagueCard)
	if err != nil {
		return odds.LeagueCard{}, err
	}
	c.metrics.RecordNormalized(FamilyLeagueCard, len(card.Fixtures)+len(card.TitleOdds)+len(card.Combined.Legs))
	return card, nil
}

func (c *Client) ListStandings(ctx context.Context) (standing.Snapshot, error) {
	snap, err := fetchNormalized(ctx, c, getSpec(FamilyStandings, c.endpoints.Standings), nil, normalizeStandings)
	if err != nil {
		return standing.Snapshot{}, err
	}
	n := 0
	for _, l := range snap.Leagues {
		n += len(l.Rows)
	}
	c.metrics.RecordNormalized(FamilyStandings, n)
	return snap, nil
}

func (c *Client) ListScorers(ctx context.Context) (scorer.Board, error) {
	board, err := fetchNormalized(ctx, c, getSpec(FamilyScorers, c.endpoints.Scorers), nil, normalizeScorers)
	if err != nil {
		return scorer.Board{}, err
	}
	c.metrics.RecordNormalized(FamilyScorers, board.Total())
	return board, nil
}

func (c *Client) ListArticles(ctx context.Context) (news.Feed, error) {
	feed, err := fetchNormalized(ctx, c, getSpec(FamilyNews, c.endpoints.News), nil, normalizeNews)
	if err != nil {
		return news.Feed{}, err
	}
	c.metrics.RecordNormalized(FamilyNews, len(feed.Articles))
	return feed, nil
}

func (c *Client) ListTopMatches(ctx context.Context) ([]match.LeagueMatches, error) {
	leagues, err := fetchNormalized(ctx, c, getSpec(FamilyTopMatches, c.endpoints.TopMatches), nil, normalizeTopMatches)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, l := range leagues {
		n += len(l.Matches)
	}
	c.metrics.RecordNormalized(FamilyTopMatches, n)
	return leagues, nil
}

// GetDetail looks a match up by the last path segment of link and falls back
// to posting the full link.
func (c *Client) GetDetail(ctx context.Context, link string) (match.Detail, error) {
	if strings.TrimSpace(link) == "" {
		return match.Detail{}, crerr.Wrap(usecase.ErrInvalidInput, "detail link is required")
	}
	primary, fallback, err := c.detailRequests(link)
	if err != nil {
		return match.Detail{}, err
	}
	detail, err := fetchNormalized(ctx, c, primary, fallback, normalizeMatchDetail)
	if err != nil {
		return match.Detail{}, err
	}
	c.metrics.RecordNormalized(FamilyMatchDetail, 1)
	return detail, nil
}
