package viewmodel

import (
	"testing"

	"github.com/iqscore/scorefeed/internal/domain/odds"
)

func TestOddsBoard_GroupsByLabelInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	board := odds.Board{Leagues: []odds.League{
		{Name: "Premier", Matches: []odds.LeagueMatch{
			{League: "Premier", Home: "Arsenal", Away: "Chelsea", GroupLabel: "Domingo", Odds: odds.Triple{Home: "+120", Draw: "+250", Away: "-150"}},
			{League: "Premier", Home: "Spurs", Away: "Everton", GroupLabel: "Sábado"},
		}},
		{Name: "LaLiga", Matches: []odds.LeagueMatch{
			{League: "LaLiga", Home: "Betis", Away: "Sevilla", GroupLabel: "Domingo"},
			{League: "LaLiga", Home: "Girona", Away: "Getafe"},
		}},
	}}

	view := OddsBoard(board)
	if view.Total != 3 {
		t.Fatalf("expected unlabeled match to be excluded, total=%d", view.Total)
	}
	if len(view.Groups) != 2 || view.Groups[0].Label != "Domingo" || view.Groups[1].Label != "Sábado" {
		t.Fatalf("unexpected groups %+v", view.Groups)
	}
	domingo := view.Groups[0].Items
	if len(domingo) != 2 || domingo[0].Home != "Arsenal" || domingo[1].League != "LaLiga" {
		t.Fatalf("unexpected intra-group order %+v", domingo)
	}
	if domingo[0].OddHome.Sign != odds.SignFavorable || domingo[0].OddAway.Sign != odds.SignUnfavorable || domingo[0].OddDraw.Value != "+250" {
		t.Fatalf("unexpected odds classification %+v", domingo[0])
	}
	if domingo[1].OddHome.Sign != odds.SignNeutral {
		t.Fatalf("expected empty odd to be neutral")
	}
}
