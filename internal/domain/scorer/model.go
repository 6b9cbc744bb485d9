package scorer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Scorer struct {
	Rank    int
	Player  string
	Country string
	Team    string
	Goals   int
	Played  int
	Average decimal.Decimal
}

type PeriodKind string

const (
	PeriodAnnual  PeriodKind = "annual"
	PeriodMonthly PeriodKind = "monthly"
)

// Period is one ranking bucket: the season-to-date list or a single month.
type Period struct {
	Key     string
	Kind    PeriodKind
	Month   time.Month
	Scorers []Scorer
}

type Board struct {
	ScrapedAt    *time.Time
	ScrapedAtRaw string
	SourceURL    string
	Periods      []Period
}

// Annual returns the first annual period.
func (b Board) Annual() (Period, bool) {
	for _, p := range b.Periods {
		if p.Kind == PeriodAnnual {
			return p, true
		}
	}
	return Period{}, false
}

// Total counts scorers across every period.
func (b Board) Total() int {
	total := 0
	for _, p := range b.Periods {
		total += len(p.Scorers)
	}
	return total
}

var months = map[string]time.Month{
	"enero": time.January, "january": time.January, "jan": time.January,
	"febrero": time.February, "february": time.February, "feb": time.February,
	"marzo": time.March, "march": time.March, "mar": time.March,
	"abril": time.April, "april": time.April, "apr": time.April,
	"mayo": time.May, "may": time.May,
	"junio": time.June, "june": time.June, "jun": time.June,
	"julio": time.July, "july": time.July, "jul": time.July,
	"agosto": time.August, "august": time.August, "aug": time.August,
	"septiembre": time.September, "setiembre": time.September, "september": time.September, "sep": time.September,
	"octubre": time.October, "october": time.October, "oct": time.October,
	"noviembre": time.November, "november": time.November, "nov": time.November,
	"diciembre": time.December, "december": time.December, "dec": time.December,
}

// ParseMonth accepts Spanish or English month names, full or abbreviated.
func ParseMonth(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
