package scraper

import (
	"sort"

	"github.com/iqscore/scorefeed/internal/domain/standing"
)

var standingHeaders = []string{"team", "equipo", "club"}

// normalizeStandings maps {scraped_at, leagues: [{name, teams: [row]}]}. Rows
// are ordered by position; a missing position falls back to the row order.
func normalizeStandings(raw []byte) (standing.Snapshot, error) {
	root, err := decodePayload(FamilyStandings, raw)
	if err != nil {
		return standing.Snapshot{}, err
	}

	var snap standing.Snapshot
	var leagues []any
	switch typed := root.(type) {
	case []any:
		leagues = typed
	case map[string]any:
		items, ok := getSliceAny(typed, "leagues", "tablas", "data")
		if !ok {
			return standing.Snapshot{}, shapeError(FamilyStandings, "leagues is not an array")
		}
		leagues = items
		snap.ScrapedAtRaw = getStringAny(typed, "scraped_at", "date_scraped")
		snap.ScrapedAt = parseTimestamp(snap.ScrapedAtRaw)
	default:
		return standing.Snapshot{}, shapeError(FamilyStandings, "payload is neither an object nor an array")
	}

	snap.Leagues = make([]standing.League, 0, len(leagues))
	for _, item := range leagues {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		teams, _ := getSliceAny(obj, "teams", "rows", "table", "standings", "equipos")
		snap.Leagues = append(snap.Leagues, standing.League{
			Name: getStringAny(obj, "name", "league", "liga"),
			Rows: normalizeStandingRows(teams),
		})
	}
	return snap, nil
}

func normalizeStandingRows(items []any) []standing.Row {
	rows := make([]standing.Row, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		team := getStringAny(obj, "Team", "team", "Equipo", "name")
		if team == "" || isHeaderEcho(team, standingHeaders...) {
			continue
		}

		row := standing.Row{
			Position:     getIntAny(obj, "Position", "position", "Pos", "#", "rank"),
			Team:         team,
			Played:       getIntAny(obj, "Played", "PJ", "MP", "played"),
			Won:          getIntAny(obj, "Won", "PG", "W", "won"),
			Drawn:        getIntAny(obj, "Drawn", "PE", "D", "draw", "drawn"),
			Lost:         getIntAny(obj, "Lost", "PP", "L", "lost"),
			GoalsFor:     getIntAny(obj, "GoalsFor", "GF", "goals_for"),
			GoalsAgainst: getIntAny(obj, "GoalsAgainst", "GC", "GA", "goals_against"),
			Points:       getIntAny(obj, "Points", "Pts", "PTS", "puntos", "points"),
		}
		if hasAny(obj, "GoalDifference", "DG", "GD", "Dif", "goal_difference") {
			row.GoalDifference = getIntAny(obj, "GoalDifference", "DG", "GD", "Dif", "goal_difference")
		} else {
			row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		}
		if row.Position <= 0 {
			row.Position = len(rows) + 1
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	// Positions must be unique; a scrape with repeated ranks is renumbered in
	// table order.
	for i := 1; i < len(rows); i++ {
		if rows[i].Position == rows[i-1].Position {
			for k := range rows {
				rows[k].Position = k + 1
			}
			break
		}
	}
	return rows
}
