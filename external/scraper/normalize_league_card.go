package scraper

import (
	"github.com/iqscore/scorefeed/internal/domain/odds"
)

// normalizeLeagueCard maps the league odds card:
// {scraped_at, matches: [{teams, date, stadium, prediction, odd}],
// title_odds: [{team, "Fecha y hora", Estadio, "1X2"}],
// combined_bet: {description, bets: [{match, bet, odd}]}}.
func normalizeLeagueCard(raw []byte) (odds.LeagueCard, error) {
	obj, err := decodeObject(FamilyLeagueCard, raw)
	if err != nil {
		return odds.LeagueCard{}, err
	}

	matches, hasMatches := getSliceAny(obj, "matches", "partidos")
	titleOdds, hasTitle := getSliceAny(obj, "title_odds", "titleOdds")
	combined := getMapAny(obj, "combined_bet", "combinedBet", "combinada")
	if !hasMatches && !hasTitle && combined == nil {
		return odds.LeagueCard{}, shapeError(FamilyLeagueCard, "none of matches, title_odds or combined_bet present")
	}

	card := odds.LeagueCard{
		ScrapedAtRaw: getStringAny(obj, "scraped_at", "date_scraped"),
		Fixtures:     make([]odds.Fixture, 0, len(matches)),
		TitleOdds:    make([]odds.TitleOdd, 0, len(titleOdds)),
	}
	card.ScrapedAt = parseTimestamp(card.ScrapedAtRaw)

	for _, item := range matches {
		row, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := odds.Fixture{
			Teams:      getStringAny(row, "teams", "match", "partido"),
			Date:       getStringAny(row, "date", "fecha"),
			Stadium:    getStringAny(row, "stadium", "estadio"),
			Prediction: getStringAny(row, "prediction", "pronostico"),
			Odd:        getStringAny(row, "odd", "cuota"),
		}
		if f.Teams == "" || isHeaderEcho(f.Teams, "teams", "partido", "equipos") {
			continue
		}
		card.Fixtures = append(card.Fixtures, f)
	}

	for _, item := range titleOdds {
		row, ok := item.(map[string]any)
		if !ok {
			continue
		}
		t := odds.TitleOdd{
			Team:     getStringAny(row, "team", "equipo"),
			DateTime: getStringAny(row, "Fecha y hora", "date_time", "datetime"),
			Stadium:  getStringAny(row, "Estadio", "stadium"),
			OneXTwo:  getStringAny(row, "1X2", "odds", "cuota"),
		}
		if t.Team == "" || isHeaderEcho(t.Team, "team", "equipo") {
			continue
		}
		card.TitleOdds = append(card.TitleOdds, t)
	}

	if combined != nil {
		card.Combined.Description = getStringAny(combined, "description", "descripcion")
		bets, _ := getSliceAny(combined, "bets", "apuestas")
		card.Combined.Legs = make([]odds.BetLeg, 0, len(bets))
		for _, item := range bets {
			row, ok := item.(map[string]any)
			if !ok {
				continue
			}
			leg := odds.BetLeg{
				Match: getStringAny(row, "match", "partido"),
				Bet:   getStringAny(row, "bet", "apuesta"),
				Odd:   getStringAny(row, "odd", "cuota"),
			}
			if leg.Match == "" && leg.Bet == "" {
				continue
			}
			card.Combined.Legs = append(card.Combined.Legs, leg)
		}
	}

	return card, nil
}
