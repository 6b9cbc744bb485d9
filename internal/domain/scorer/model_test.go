package scorer

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]time.Month{
		"enero":      time.January,
		"Febrero":    time.February,
		" Setiembre": time.September,
		"december":   time.December,
	} {
		got, ok := ParseMonth(name)
		if !ok || got != want {
			t.Fatalf("ParseMonth(%q)=%v,%v want %v", name, got, ok, want)
		}
	}
	if _, ok := ParseMonth("overall_2025"); ok {
		t.Fatalf("period key must not parse as month")
	}
}

func TestBoard_Annual(t *testing.T) {
	t.Parallel()

	b := Board{Periods: []Period{
		{Key: "enero", Kind: PeriodMonthly, Scorers: []Scorer{{Player: "A"}}},
		{Key: "overall_2025", Kind: PeriodAnnual, Scorers: []Scorer{{Player: "B"}, {Player: "C"}}},
	}}
	p, ok := b.Annual()
	if !ok || p.Key != "overall_2025" {
		t.Fatalf("unexpected annual period %+v", p)
	}
	if b.Total() != 3 {
		t.Fatalf("expected 3 scorers, got %d", b.Total())
	}
}
