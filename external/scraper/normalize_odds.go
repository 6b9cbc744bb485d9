package scraper

import (
	"github.com/iqscore/scorefeed/internal/domain/odds"
)

// normalizeLeagueOdds maps the odds-by-league listing:
// {date_scraped, leagues: [{name, matches: [{time, home_team, away_team, odds, match_group_title}]}]}.
func normalizeLeagueOdds(raw []byte) (odds.Board, error) {
	root, err := decodePayload(FamilyLeagueOdds, raw)
	if err != nil {
		return odds.Board{}, err
	}

	var board odds.Board
	var leagues []any
	switch typed := root.(type) {
	case []any:
		leagues = typed
	case map[string]any:
		items, ok := getSliceAny(typed, "leagues", "ligas", "data")
		if !ok {
			return odds.Board{}, shapeError(FamilyLeagueOdds, "leagues is not an array")
		}
		leagues = items
		board.ScrapedAtRaw = getStringAny(typed, "date_scraped", "scraped_at")
		board.ScrapedAt = parseTimestamp(board.ScrapedAtRaw)
	default:
		return odds.Board{}, shapeError(FamilyLeagueOdds, "payload is neither an object nor an array")
	}

	board.Leagues = make([]odds.League, 0, len(leagues))
	for _, item := range leagues {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		league := odds.League{Name: getStringAny(obj, "name", "league", "liga")}
		matches, _ := getSliceAny(obj, "matches", "partidos", "events")
		league.Matches = make([]odds.LeagueMatch, 0, len(matches))
		for _, m := range matches {
			row, ok := m.(map[string]any)
			if !ok {
				continue
			}
			lm := odds.LeagueMatch{
				League:     league.Name,
				Time:       getStringAny(row, "time", "hora"),
				Home:       getStringAny(row, "home_team", "homeTeam", "local"),
				Away:       getStringAny(row, "away_team", "awayTeam", "visitante"),
				Odds:       parseTriple(row),
				GroupLabel: getStringAny(row, "match_group_title", "group", "date", "fecha"),
			}
			if lm.Home == "" && lm.Away == "" {
				continue
			}
			if isHeaderEcho(lm.Home, "home_team", "local", "home") {
				continue
			}
			league.Matches = append(league.Matches, lm)
		}
		board.Leagues = append(board.Leagues, league)
	}

	return board, nil
}

// parseTriple reads {home, draw, away}, {"1","X","2"} or a positional array.
func parseTriple(row map[string]any) odds.Triple {
	raw, ok := lookup(row, "odds", "cuotas")
	if !ok {
		return odds.Triple{
			Home: getStringAny(row, "odds_home", "home_odds"),
			Draw: getStringAny(row, "odds_draw", "draw_odds"),
			Away: getStringAny(row, "odds_away", "away_odds"),
		}
	}
	switch typed := raw.(type) {
	case map[string]any:
		return odds.Triple{
			Home: getStringAny(typed, "home", "1", "local"),
			Draw: getStringAny(typed, "draw", "X", "empate"),
			Away: getStringAny(typed, "away", "2", "visitante"),
		}
	case []any:
		var t odds.Triple
		if len(typed) > 0 {
			t.Home = asString(typed[0])
		}
		if len(typed) > 1 {
			t.Draw = asString(typed[1])
		}
		if len(typed) > 2 {
			t.Away = asString(typed[2])
		}
		return t
	default:
		return odds.Triple{}
	}
}
