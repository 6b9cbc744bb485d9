package viewmodel

import (
	"time"

	"github.com/iqscore/scorefeed/internal/domain/odds"
	"github.com/iqscore/scorefeed/internal/platform/grouping"
)

type OddValue struct {
	Value string    `json:"value"`
	Sign  odds.Sign `json:"sign"`
}

func newOddValue(v string) OddValue {
	return OddValue{Value: v, Sign: odds.ClassifySign(v)}
}

type OddsRow struct {
	League  string   `json:"league"`
	Time    string   `json:"time"`
	Home    string   `json:"home"`
	Away    string   `json:"away"`
	OddHome OddValue `json:"odd_home"`
	OddDraw OddValue `json:"odd_draw"`
	OddAway OddValue `json:"odd_away"`
}

type OddsBoardView struct {
	UpdatedAt  *time.Time                `json:"updated_at,omitempty"`
	UpdatedDay string                    `json:"updated_day"`
	Groups     []grouping.Group[OddsRow] `json:"groups"`
	Total      int                       `json:"total"`
}

// OddsBoard flattens every league's matches and groups them by their group
// label. Matches without a label are left out.
func OddsBoard(board odds.Board) OddsBoardView {
	var flat []odds.LeagueMatch
	for _, league := range board.Leagues {
		flat = append(flat, league.Matches...)
	}

	grouped := grouping.By(flat, func(m odds.LeagueMatch) string { return m.GroupLabel })
	rows := grouping.Map(grouped, func(m odds.LeagueMatch) OddsRow {
		return OddsRow{
			League:  m.League,
			Time:    m.Time,
			Home:    m.Home,
			Away:    m.Away,
			OddHome: newOddValue(m.Odds.Home),
			OddDraw: newOddValue(m.Odds.Draw),
			OddAway: newOddValue(m.Odds.Away),
		}
	})

	return OddsBoardView{
		UpdatedAt:  board.ScrapedAt,
		UpdatedDay: FormatDay(board.ScrapedAt, board.ScrapedAtRaw),
		Groups:     rows.Groups(),
		Total:      rows.Total(),
	}
}
