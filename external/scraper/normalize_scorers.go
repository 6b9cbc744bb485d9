package scraper

import (
	"sort"

	"github.com/iqscore/scorefeed/internal/domain/scorer"
	"github.com/iqscore/scorefeed/internal/platform/textfix"
	"github.com/shopspring/decimal"
)

var scorerHeaders = []string{"jugador", "player", "nombre"}

var scorerMetaKeys = []string{"errors", "debug_info", "warnings", "source_url", "scraped_at"}

// normalizeScorers accepts either a single list of scorers or period-keyed
// lists, e.g. {data: {overall_2025: [...], monthly: {enero: [...], febrero: [...]}}}.
// Annual periods come first, then months in calendar order.
func normalizeScorers(raw []byte) (scorer.Board, error) {
	root, err := decodePayload(FamilyScorers, raw)
	if err != nil {
		return scorer.Board{}, err
	}

	var board scorer.Board
	data := root
	if obj, ok := root.(map[string]any); ok {
		board.ScrapedAtRaw = getStringAny(obj, "scraped_at", "date_scraped")
		board.ScrapedAt = parseTimestamp(board.ScrapedAtRaw)
		board.SourceURL = getStringAny(obj, "source_url", "url")
		if inner, ok := lookup(obj, "data", "goleadores", "scorers"); ok {
			data = inner
		}
	}

	switch typed := data.(type) {
	case []any:
		board.Periods = []scorer.Period{{Key: "overall", Kind: scorer.PeriodAnnual, Scorers: normalizeScorerRows(typed)}}
	case map[string]any:
		board.Periods = scorerPeriods(typed)
	}
	if board.Periods == nil {
		return scorer.Board{}, shapeError(FamilyScorers, "no scorer list found")
	}
	return board, nil
}

func scorerPeriods(obj map[string]any) []scorer.Period {
	var annual, monthly []scorer.Period

	for key, value := range obj {
		if isHeaderEcho(key, scorerMetaKeys...) {
			continue
		}
		switch typed := value.(type) {
		case []any:
			if month, ok := scorer.ParseMonth(key); ok {
				monthly = append(monthly, scorer.Period{Key: key, Kind: scorer.PeriodMonthly, Month: month, Scorers: normalizeScorerRows(typed)})
				continue
			}
			annual = append(annual, scorer.Period{Key: key, Kind: scorer.PeriodAnnual, Scorers: normalizeScorerRows(typed)})
		case map[string]any:
			if !isHeaderEcho(key, "monthly", "mensual", "months", "meses") {
				continue
			}
			for month, list := range typed {
				items, ok := list.([]any)
				m, known := scorer.ParseMonth(month)
				if !ok || !known {
					continue
				}
				monthly = append(monthly, scorer.Period{Key: month, Kind: scorer.PeriodMonthly, Month: m, Scorers: normalizeScorerRows(items)})
			}
		}
	}

	if annual == nil && monthly == nil {
		return nil
	}
	sort.SliceStable(annual, func(i, j int) bool { return annual[i].Key < annual[j].Key })
	sort.SliceStable(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })
	return append(annual, monthly...)
}

func normalizeScorerRows(items []any) []scorer.Scorer {
	out := make([]scorer.Scorer, 0, len(items))
	for _, item := range items {
		var s scorer.Scorer
		var ok bool
		switch typed := item.(type) {
		case map[string]any:
			s, ok = scorerFromObject(typed)
		case []any:
			s, ok = scorerFromCells(typed)
		}
		if !ok {
			continue
		}
		if s.Rank <= 0 {
			s.Rank = len(out) + 1
		}
		out = append(out, s)
	}
	return out
}

func scorerFromObject(obj map[string]any) (scorer.Scorer, bool) {
	s := scorer.Scorer{
		Rank:    getIntAny(obj, "#", "POS", "position", "rank", "rango"),
		Player:  getStringAny(obj, "JUGADOR", "player", "name", "nombre"),
		Country: getStringAny(obj, "PAÍS", "PAIS", "country", "nationality", "nacionalidad"),
		Team:    getStringAny(obj, "EQUIPO", "team", "club"),
		Goals:   getIntAny(obj, "GOLES", "goals", "G"),
		Played:  getIntAny(obj, "PJ", "played", "matches", "partidos"),
	}
	if s.Player == "" || isHeaderEcho(s.Player, scorerHeaders...) {
		return scorer.Scorer{}, false
	}
	if avg, ok := getDecimalAny(obj, "PROMEDIO", "average", "avg", "ratio"); ok {
		s.Average = avg
	} else {
		s.Average = goalsPerMatch(s.Goals, s.Played)
	}
	return s, true
}

// scorerFromCells reads positional rows [#, player, country, team, goals, pj, avg];
// some scrapes drop the leading rank column.
func scorerFromCells(cells []any) (scorer.Scorer, bool) {
	values := make([]string, len(cells))
	for i, c := range cells {
		values[i] = textfix.Clean(asString(c))
	}

	rank := 0
	switch {
	case len(values) >= 7:
		rank = asInt(values[0])
		values = values[1:]
	case len(values) < 4:
		return scorer.Scorer{}, false
	}

	at := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
	s := scorer.Scorer{
		Rank:    rank,
		Player:  at(0),
		Country: at(1),
		Team:    at(2),
		Goals:   asInt(at(3)),
		Played:  asInt(at(4)),
	}
	if s.Player == "" || isHeaderEcho(s.Player, scorerHeaders...) {
		return scorer.Scorer{}, false
	}
	if avg, ok := asDecimal(at(5)); ok {
		s.Average = avg
	} else {
		s.Average = goalsPerMatch(s.Goals, s.Played)
	}
	return s, true
}

func goalsPerMatch(goals, played int) decimal.Decimal {
	if played <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(goals)).DivRound(decimal.NewFromInt(int64(played)), 2)
}
