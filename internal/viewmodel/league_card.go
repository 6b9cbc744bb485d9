package viewmodel

import (
	"time"

	"github.com/iqscore/scorefeed/internal/domain/odds"
)

type FixtureRow struct {
	Pairing    string `json:"pairing"`
	Home       string `json:"home"`
	Away       string `json:"away"`
	Date       string `json:"date"`
	Stadium    string `json:"stadium"`
	Prediction string `json:"prediction"`
	Odd        string `json:"odd"`
}

type TitleOddRow struct {
	Team     string `json:"team"`
	DateTime string `json:"date_time"`
	Stadium  string `json:"stadium"`
	OneXTwo  string `json:"one_x_two"`
}

type BetLegRow struct {
	Match string `json:"match"`
	Bet   string `json:"bet"`
	Odd   string `json:"odd"`
}

type CombinedBetView struct {
	Description string      `json:"description"`
	Legs        []BetLegRow `json:"legs"`
	TotalOdd    string      `json:"total_odd,omitempty"`
}

type LeagueCardView struct {
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
	UpdatedDay string          `json:"updated_day"`
	Fixtures   []FixtureRow    `json:"fixtures"`
	TitleOdds  []TitleOddRow   `json:"title_odds"`
	Combined   CombinedBetView `json:"combined"`
}

// LeagueCard splits run-together pairings and totals the combined bet.
func LeagueCard(card odds.LeagueCard) LeagueCardView {
	view := LeagueCardView{
		UpdatedAt:  card.ScrapedAt,
		UpdatedDay: FormatDay(card.ScrapedAt, card.ScrapedAtRaw),
		Fixtures:   make([]FixtureRow, 0, len(card.Fixtures)),
		TitleOdds:  make([]TitleOddRow, 0, len(card.TitleOdds)),
		Combined: CombinedBetView{
			Description: card.Combined.Description,
			Legs:        make([]BetLegRow, 0, len(card.Combined.Legs)),
		},
	}

	for _, f := range card.Fixtures {
		home, away, _ := SplitTeams(f.Teams)
		view.Fixtures = append(view.Fixtures, FixtureRow{
			Pairing:    PairLabel(f.Teams),
			Home:       home,
			Away:       away,
			Date:       f.Date,
			Stadium:    f.Stadium,
			Prediction: f.Prediction,
			Odd:        f.Odd,
		})
	}
	for _, t := range card.TitleOdds {
		view.TitleOdds = append(view.TitleOdds, TitleOddRow{
			Team:     PairLabel(t.Team),
			DateTime: t.DateTime,
			Stadium:  t.Stadium,
			OneXTwo:  t.OneXTwo,
		})
	}
	for _, leg := range card.Combined.Legs {
		view.Combined.Legs = append(view.Combined.Legs, BetLegRow{Match: leg.Match, Bet: leg.Bet, Odd: leg.Odd})
	}
	if total, ok := card.Combined.TotalOdd(); ok {
		view.Combined.TotalOdd = total.StringFixed(2)
	}
	return view
}
