package odds

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifySign(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Sign
	}{
		{"+150", SignFavorable},
		{"-110", SignUnfavorable},
		{"150", SignNeutral},
		{"", SignNeutral},
		{"2.35", SignNeutral},
	}
	for _, tc := range cases {
		if got := ClassifySign(tc.in); got != tc.want {
			t.Fatalf("ClassifySign(%q)=%s want %s", tc.in, got, tc.want)
		}
	}
}

func TestCombinedBet_TotalOdd(t *testing.T) {
	t.Parallel()

	bet := CombinedBet{Legs: []BetLeg{{Odd: "1.50"}, {Odd: "2,00"}, {Odd: "n/a"}}}
	total, ok := bet.TotalOdd()
	if !ok || !total.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("expected 3.00, got %s ok=%v", total, ok)
	}

	if _, ok := (CombinedBet{}).TotalOdd(); ok {
		t.Fatalf("empty combined bet should not report a total")
	}
}
