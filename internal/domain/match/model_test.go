package match

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]Status{
		"":           StatusScheduled,
		"Live":       StatusLive,
		"EN VIVO":    StatusLive,
		"67'":        StatusLive,
		"Full-Time":  StatusFinished,
		"FT":         StatusFinished,
		"Finalizado": StatusFinished,
		"postponed":  StatusScheduled,
		"19:30":      StatusScheduled,
		"scheduled":  StatusScheduled,
	}
	for raw, want := range cases {
		got := ParseStatus(raw)
		if got != want {
			t.Fatalf("ParseStatus(%q)=%s want %s", raw, got, want)
		}
		if !got.Valid() {
			t.Fatalf("ParseStatus(%q) returned invalid status %q", raw, got)
		}
	}
}

func TestPartialProbabilities_Resolve(t *testing.T) {
	t.Parallel()

	home := decimal.NewFromInt(51)
	zero := decimal.Zero
	got := PartialProbabilities{Home: &home, Draw: &zero}.Resolve(DefaultProbabilities())

	if !got.Home.Equal(decimal.NewFromInt(51)) {
		t.Fatalf("expected home override, got %s", got.Home)
	}
	if !got.Draw.Equal(decimal.NewFromInt(34)) || !got.Away.Equal(decimal.NewFromInt(33)) {
		t.Fatalf("expected defaults for missing sides, got %s/%s", got.Draw, got.Away)
	}
	if !DefaultProbabilities().Total().Equal(decimal.NewFromInt(100)) {
		t.Fatalf("default split should total 100")
	}
}
