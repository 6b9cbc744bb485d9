package viewmodel

import (
	"regexp"
	"time"

	"github.com/iqscore/scorefeed/internal/domain/scorer"
)

type ScorerRow struct {
	Rank    int    `json:"rank"`
	Player  string `json:"player"`
	Country string `json:"country"`
	Team    string `json:"team"`
	Goals   int    `json:"goals"`
	Played  int    `json:"played"`
	Average string `json:"average"`
}

type ScorerPeriodView struct {
	Key   string            `json:"key"`
	Title string            `json:"title"`
	Kind  scorer.PeriodKind `json:"kind"`
	Rows  []ScorerRow       `json:"rows"`
}

type ScorersView struct {
	UpdatedAt  *time.Time         `json:"updated_at,omitempty"`
	UpdatedDay string             `json:"updated_day"`
	SourceURL  string             `json:"source_url,omitempty"`
	Periods    []ScorerPeriodView `json:"periods"`
}

var monthTitles = [...]string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var yearPattern = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})(?:\D|$)`)

// ScorersTable keeps the board's period order: annual lists first, then
// months in calendar order.
func ScorersTable(board scorer.Board) ScorersView {
	view := ScorersView{
		UpdatedAt:  board.ScrapedAt,
		UpdatedDay: FormatDay(board.ScrapedAt, board.ScrapedAtRaw),
		SourceURL:  board.SourceURL,
		Periods:    make([]ScorerPeriodView, 0, len(board.Periods)),
	}
	for _, p := range board.Periods {
		period := ScorerPeriodView{
			Key:   p.Key,
			Title: periodTitle(p),
			Kind:  p.Kind,
			Rows:  make([]ScorerRow, 0, len(p.Scorers)),
		}
		for _, s := range p.Scorers {
			period.Rows = append(period.Rows, ScorerRow{
				Rank:    s.Rank,
				Player:  s.Player,
				Country: s.Country,
				Team:    s.Team,
				Goals:   s.Goals,
				Played:  s.Played,
				Average: s.Average.StringFixed(2),
			})
		}
		view.Periods = append(view.Periods, period)
	}
	return view
}

func periodTitle(p scorer.Period) string {
	if p.Kind == scorer.PeriodMonthly && p.Month >= time.January && p.Month <= time.December {
		return monthTitles[p.Month]
	}
	if m := yearPattern.FindStringSubmatch(p.Key); m != nil {
		return "Temporada " + m[1]
	}
	return "General"
}
