package scraper

import (
	"strings"

	"github.com/iqscore/scorefeed/internal/domain/match"
	"github.com/iqscore/scorefeed/internal/platform/textfix"
)

// normalizeTopMatches maps {leagues: [{name, matches: [{homeTeam: {name, logo},
// awayTeam, date, time, score, status, currentTime, href}]}]}. Optional fields
// get the match placeholders.
func normalizeTopMatches(raw []byte) ([]match.LeagueMatches, error) {
	root, err := decodePayload(FamilyTopMatches, raw)
	if err != nil {
		return nil, err
	}

	var leagues []any
	switch typed := root.(type) {
	case []any:
		leagues = typed
	case map[string]any:
		found, ok := getSliceAny(typed, "leagues", "ligas", "data")
		if !ok {
			return nil, shapeError(FamilyTopMatches, "leagues is not an array")
		}
		leagues = found
	default:
		return nil, shapeError(FamilyTopMatches, "payload is neither an object nor an array")
	}

	out := make([]match.LeagueMatches, 0, len(leagues))
	for _, item := range leagues {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		matches, _ := getSliceAny(obj, "matches", "partidos")
		lm := match.LeagueMatches{
			Name:    getStringAny(obj, "name", "league", "liga"),
			Matches: make([]match.Match, 0, len(matches)),
		}
		for _, m := range matches {
			row, ok := m.(map[string]any)
			if !ok {
				continue
			}
			if parsed, ok := normalizeMatch(row); ok {
				lm.Matches = append(lm.Matches, parsed)
			}
		}
		out = append(out, lm)
	}
	return out, nil
}

func normalizeMatch(row map[string]any) (match.Match, bool) {
	home := normalizeTeam(lookupValue(row, "homeTeam", "home_team", "home", "local"))
	away := normalizeTeam(lookupValue(row, "awayTeam", "away_team", "away", "visitante"))
	if home.Name == "" && away.Name == "" {
		return match.Match{}, false
	}
	if isHeaderEcho(home.Name, "homeTeam", "home_team", "local") {
		return match.Match{}, false
	}

	m := match.Match{
		Home:        withTeamPlaceholders(home),
		Away:        withTeamPlaceholders(away),
		Date:        getStringAny(row, "date", "fecha"),
		Time:        firstNonEmpty(getStringAny(row, "time", "hora"), match.PlaceholderTime),
		Status:      match.ParseStatus(getStringAny(row, "status", "estado")),
		Score:       getStringAny(row, "score", "marcador", "result"),
		CurrentTime: getStringAny(row, "currentTime", "current_time", "minute", "minuto"),
		DetailLink:  getStringAny(row, "href", "link", "url", "detail_url"),
	}
	if m.Date != "" {
		m.KickoffAt = parseTimestamp(strings.TrimSpace(m.Date + " " + m.Time))
		if m.KickoffAt == nil {
			m.KickoffAt = parseTimestamp(m.Date)
		}
	}
	return m, true
}

// normalizeTeam accepts {name, logo, yellowCards, possession} or a bare name.
func normalizeTeam(raw any) match.Team {
	switch typed := raw.(type) {
	case string:
		return match.Team{Name: textfix.Clean(typed)}
	case map[string]any:
		return match.Team{
			Name:        getStringAny(typed, "name", "nombre"),
			Logo:        getStringAny(typed, "logo", "image", "logo_url"),
			YellowCards: getStringAny(typed, "yellowCards", "yellow_cards", "amarillas"),
			Possession:  getStringAny(typed, "possession", "posesion"),
		}
	default:
		return match.Team{}
	}
}

func withTeamPlaceholders(t match.Team) match.Team {
	if t.Logo == "" {
		t.Logo = match.PlaceholderLogo
	}
	return t
}
