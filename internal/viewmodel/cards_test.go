package viewmodel

import (
	"testing"
	"time"

	"github.com/iqscore/scorefeed/internal/domain/news"
	"github.com/iqscore/scorefeed/internal/domain/odds"
	"github.com/iqscore/scorefeed/internal/domain/scorer"
	"github.com/shopspring/decimal"
)

func TestScorersTable_TitlesAndAverages(t *testing.T) {
	t.Parallel()

	board := scorer.Board{Periods: []scorer.Period{
		{Key: "overall_2025", Kind: scorer.PeriodAnnual, Scorers: []scorer.Scorer{{Rank: 1, Player: "Bacca", Goals: 10, Played: 14, Average: decimal.RequireFromString("0.71")}}},
		{Key: "overall", Kind: scorer.PeriodAnnual},
		{Key: "febrero", Kind: scorer.PeriodMonthly, Month: time.February, Scorers: []scorer.Scorer{{Rank: 1, Player: "Castro", Goals: 4, Played: 4, Average: decimal.NewFromInt(1)}}},
	}}

	view := ScorersTable(board)
	titles := []string{"Temporada 2025", "General", "Febrero"}
	for i, want := range titles {
		if view.Periods[i].Title != want {
			t.Fatalf("period %d: expected title %q, got %q", i, want, view.Periods[i].Title)
		}
	}
	if view.Periods[2].Rows[0].Average != "1.00" {
		t.Fatalf("expected fixed two-decimal average, got %q", view.Periods[2].Rows[0].Average)
	}
}

func TestPromotionsList_SplitsExpiry(t *testing.T) {
	t.Parallel()

	expires := time.Date(2025, 3, 15, 20, 45, 0, 0, time.UTC)
	view := PromotionsList(odds.PromotionList{Promotions: []odds.Promotion{
		{Home: "Inter", Away: "Milan", ExpiresAt: &expires, ExpiresRaw: "2025-03-15T20:45:00Z"},
		{Home: "Roma", Away: "Lazio", ExpiresRaw: "pronto"},
	}})

	if view.Rows[0].ExpiresDay != "15/03/2025" || view.Rows[0].ExpiresClock != "20:45" {
		t.Fatalf("unexpected split expiry %+v", view.Rows[0])
	}
	if view.Rows[1].ExpiresDay != "pronto" || view.Rows[1].ExpiresClock != "" {
		t.Fatalf("expected raw expiry without clock, got %+v", view.Rows[1])
	}
}

func TestLeagueCard_SplitsPairingsAndTotals(t *testing.T) {
	t.Parallel()

	view := LeagueCard(odds.LeagueCard{
		Fixtures:  []odds.Fixture{{Teams: "MillonariosSanta Fe", Odd: "1.90"}},
		TitleOdds: []odds.TitleOdd{{Team: "NacionalJunior", OneXTwo: "2.10"}},
		Combined: odds.CombinedBet{Legs: []odds.BetLeg{
			{Match: "A vs B", Odd: "1.50"},
			{Match: "C vs D", Odd: "2"},
			{Match: "E vs F", Odd: "n/a"},
		}},
	})

	if f := view.Fixtures[0]; f.Home != "Millonarios" || f.Away != "Santa Fe" || f.Pairing != "Millonarios vs Santa Fe" {
		t.Fatalf("unexpected fixture %+v", f)
	}
	if view.TitleOdds[0].Team != "Nacional vs Junior" {
		t.Fatalf("unexpected title odd team %q", view.TitleOdds[0].Team)
	}
	if view.Combined.TotalOdd != "3.00" || len(view.Combined.Legs) != 3 {
		t.Fatalf("unexpected combined bet %+v", view.Combined)
	}
}

func TestNewsFeed_CarouselAndList(t *testing.T) {
	t.Parallel()

	articles := make([]news.Article, 0, 5)
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		articles = append(articles, news.Article{Title: title, Authors: []news.Author{{Name: "Ana", ProfileURL: "https://p/ana"}, {Name: "Luis"}}})
	}
	articles[4].Authors = nil

	view := NewsFeed(news.Feed{Articles: articles}, 0)
	if len(view.Carousel) != DefaultCarouselSize || len(view.List) != 2 {
		t.Fatalf("expected 3 slides and 2 list items, got %d/%d", len(view.Carousel), len(view.List))
	}
	if view.Carousel[0].Author.Name != "Ana" || len(view.Carousel[0].Authors) != 2 {
		t.Fatalf("unexpected authors %+v", view.Carousel[0])
	}
	if view.List[1].Author.Name != "" || view.List[1].ImageURL != news.PlaceholderImage {
		t.Fatalf("unexpected last card %+v", view.List[1])
	}

	short := NewsFeed(news.Feed{Articles: articles[:2]}, 3)
	if len(short.Carousel) != 2 || len(short.List) != 0 {
		t.Fatalf("expected short feed entirely in carousel, got %d/%d", len(short.Carousel), len(short.List))
	}
}
