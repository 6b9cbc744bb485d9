package odds

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sign is the display class of an odds string. It drives colouring only and
// is never used for arithmetic.
type Sign string

const (
	SignFavorable   Sign = "favorable"
	SignUnfavorable Sign = "unfavorable"
	SignNeutral     Sign = "neutral"
)

func ClassifySign(value string) Sign {
	switch {
	case strings.HasPrefix(value, "+"):
		return SignFavorable
	case strings.HasPrefix(value, "-"):
		return SignUnfavorable
	default:
		return SignNeutral
	}
}

type Triple struct {
	Home string
	Draw string
	Away string
}

// LeagueMatch is one row of the odds-by-league listing.
type LeagueMatch struct {
	League     string
	Time       string
	Home       string
	Away       string
	Odds       Triple
	GroupLabel string
}

type League struct {
	Name    string
	Matches []LeagueMatch
}

type Board struct {
	ScrapedAt    *time.Time
	ScrapedAtRaw string
	Leagues      []League
}

type Bookmaker struct {
	Name string
	Logo string
}

// Promotion is a boosted price published by a bookmaker.
type Promotion struct {
	League     string
	Home       string
	Away       string
	BetType    string
	Odd        string
	Bookmaker  Bookmaker
	ExpiresAt  *time.Time
	ExpiresRaw string
	OfferLink  string
}

type PromotionList struct {
	ScrapedAt    *time.Time
	ScrapedAtRaw string
	Promotions   []Promotion
}

// Fixture is a league-card match with a tipster prediction. Teams is the
// pairing as scraped, sometimes with both names run together.
type Fixture struct {
	Teams      string
	Date       string
	Stadium    string
	Prediction string
	Odd        string
}

// TitleOdd is a 1X2 price row from the league card.
type TitleOdd struct {
	Team     string
	DateTime string
	Stadium  string
	OneXTwo  string
}

type BetLeg struct {
	Match string
	Bet   string
	Odd   string
}

type CombinedBet struct {
	Description string
	Legs        []BetLeg
}

// TotalOdd multiplies the decimal odds of every leg. Legs whose odd does not
// parse are skipped; ok is false when no leg parsed.
func (c CombinedBet) TotalOdd() (decimal.Decimal, bool) {
	total := decimal.NewFromInt(1)
	parsed := 0
	for _, leg := range c.Legs {
		v, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(leg.Odd), ",", "."))
		if err != nil || !v.IsPositive() {
			continue
		}
		total = total.Mul(v)
		parsed++
	}
	if parsed == 0 {
		return decimal.Zero, false
	}
	return total.Round(2), true
}

type LeagueCard struct {
	ScrapedAt    *time.Time
	ScrapedAtRaw string
	Fixtures     []Fixture
	TitleOdds    []TitleOdd
	Combined     CombinedBet
}
