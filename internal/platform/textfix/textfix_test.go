package textfix

import "testing"

func TestRepair(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean text untouched", in: "América de Cali", want: "América de Cali"},
		{name: "windows-1252 mojibake", in: "AtlÃ©tico Nacional", want: "Atlético Nacional"},
		{name: "enye and acute", in: "EspaÃ±a - CÃºcuta", want: "España - Cúcuta"},
		{name: "uppercase", in: "ÃšLTIMA HORA MEDELLÃ\u008dN", want: "ÚLTIMA HORA MEDELLÍN"},
		{name: "raw latin1 bytes", in: "Bogot\xe1 y Nari\xf1o", want: "Bogotá y Nariño"},
		{name: "replacement glyph", in: "Bogot\uFFFD", want: "Bogotá"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Repair(tc.in); got != tc.want {
				t.Fatalf("Repair(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	if got := Fold("  Apertura   COLOMBIA "); got != "apertura colombia" {
		t.Fatalf("unexpected fold %q", got)
	}
	if !EqualFold("Atlético Nacional", "atletico nacional") {
		t.Fatalf("expected accent-insensitive equality")
	}
	if !ContainsFold("Liga BetPlay - Apertura Colombia", "colombia") {
		t.Fatalf("expected substring match")
	}
	if ContainsFold("Premier League", "") {
		t.Fatalf("empty needle must not match")
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	if got := Clean("  Junior \n  FC "); got != "Junior FC" {
		t.Fatalf("unexpected clean %q", got)
	}
}
