package match

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Placeholders used when upstream omits an optional field.
const (
	PlaceholderLogo        = "/placeholder-team.png"
	PlaceholderTime        = "00:00"
	PlaceholderScore       = ""
	PlaceholderCurrentTime = ""
	DefaultDetailScore     = "0-0"
	DateTimeUnavailable    = "Fecha no disponible"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
)

// ParseStatus maps the free-form status strings scrapers emit. Anything not
// recognised is scheduled.
func ParseStatus(raw string) Status {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case v == "":
		return StatusScheduled
	case strings.Contains(v, "full-time"), strings.Contains(v, "finished"),
		strings.Contains(v, "finalizado"), strings.Contains(v, "final"), v == "ft":
		return StatusFinished
	case strings.Contains(v, "live"), strings.Contains(v, "en vivo"),
		v == "1t", v == "2t", v == "ht", strings.HasSuffix(v, "'"):
		return StatusLive
	default:
		return StatusScheduled
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFinished:
		return true
	default:
		return false
	}
}

type Team struct {
	Name        string
	Logo        string
	YellowCards string
	Possession  string
}

// Match is one fixture as listed by the top-matches scraper.
type Match struct {
	Home        Team
	Away        Team
	Date        string
	Time        string
	KickoffAt   *time.Time
	Status      Status
	Score       string
	CurrentTime string
	DetailLink  string
}

// LeagueMatches groups the top-matches listing per competition.
type LeagueMatches struct {
	Name    string
	Matches []Match
}

type Probabilities struct {
	Home decimal.Decimal
	Draw decimal.Decimal
	Away decimal.Decimal
}

func DefaultProbabilities() Probabilities {
	return Probabilities{
		Home: decimal.NewFromInt(33),
		Draw: decimal.NewFromInt(34),
		Away: decimal.NewFromInt(33),
	}
}

// Total is informational; upstream triples are not required to add up to 100.
func (p Probabilities) Total() decimal.Decimal {
	return p.Home.Add(p.Draw).Add(p.Away)
}

// PartialProbabilities carries whatever the detail scraper returned. Nil
// means the field was absent.
type PartialProbabilities struct {
	Home *decimal.Decimal
	Draw *decimal.Decimal
	Away *decimal.Decimal
}

// Resolve fills each missing or zero side from def.
func (p PartialProbabilities) Resolve(def Probabilities) Probabilities {
	out := def
	if p.Home != nil && !p.Home.IsZero() {
		out.Home = *p.Home
	}
	if p.Draw != nil && !p.Draw.IsZero() {
		out.Draw = *p.Draw
	}
	if p.Away != nil && !p.Away.IsZero() {
		out.Away = *p.Away
	}
	return out
}

// Detail is the payload of the match detail scraper. Every field is optional
// and layered over the summary Match by the view-model assembler.
type Detail struct {
	Home          *Team
	Away          *Team
	Score         string
	Status        string
	DateTime      string
	Probabilities PartialProbabilities
}
