package scraper

import (
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Endpoint families. Each maps to one normalizer.
const (
	FamilyLeagueOdds  = "league_odds"
	FamilyScorers     = "scorers"
	FamilyStandings   = "standings"
	FamilyPromotions  = "promotions"
	FamilyLeagueCard  = "league_card"
	FamilyNews        = "news"
	FamilyTopMatches  = "top_matches"
	FamilyMatchDetail = "match_detail"
)

// Endpoints holds one URL per family. MatchDetail is the base the detail
// lookup appends a path segment to, and the POST fallback target.
type Endpoints struct {
	LeagueOdds  string
	Scorers     string
	Standings   string
	Promotions  string
	LeagueCard  string
	News        string
	TopMatches  string
	MatchDetail string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		LeagueOdds:  "http://54.234.36.48:8000/scrape",
		Scorers:     "https://scrapgoals-production.up.railway.app/scrape",
		Standings:   "https://scrapnew-production.up.railway.app/raspar-tablas-liga",
		Promotions:  "https://scrapnew-production.up.railway.app/raspar-cuotas-generales-transfermarkt",
		LeagueCard:  "https://scrapnew-production.up.railway.app/raspar-cuotas-liga",
		News:        "https://scrapnew-production.up.railway.app/raspar-noticias-relevo",
		TopMatches:  "https://scrrap-production.up.railway.app/scrape",
		MatchDetail: "https://scrrap-production.up.railway.app/scrape_match",
	}
}

func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	e.LeagueOdds = firstNonEmpty(e.LeagueOdds, d.LeagueOdds)
	e.Scorers = firstNonEmpty(e.Scorers, d.Scorers)
	e.Standings = firstNonEmpty(e.Standings, d.Standings)
	e.Promotions = firstNonEmpty(e.Promotions, d.Promotions)
	e.LeagueCard = firstNonEmpty(e.LeagueCard, d.LeagueCard)
	e.News = firstNonEmpty(e.News, d.News)
	e.TopMatches = firstNonEmpty(e.TopMatches, d.TopMatches)
	e.MatchDetail = firstNonEmpty(e.MatchDetail, d.MatchDetail)
	return e
}

func (e Endpoints) validate() (Endpoints, error) {
	fields := []struct {
		family string
		value  *string
	}{
		{FamilyLeagueOdds, &e.LeagueOdds},
		{FamilyScorers, &e.Scorers},
		{FamilyStandings, &e.Standings},
		{FamilyPromotions, &e.Promotions},
		{FamilyLeagueCard, &e.LeagueCard},
		{FamilyNews, &e.News},
		{FamilyTopMatches, &e.TopMatches},
		{FamilyMatchDetail, &e.MatchDetail},
	}
	for _, f := range fields {
		normalized, err := normalizeEndpointURL(*f.value)
		if err != nil {
			return Endpoints{}, crerr.Wrapf(err, "endpoint %s", f.family)
		}
		*f.value = normalized
	}
	return e, nil
}

func normalizeEndpointURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}
