package grouping

import (
	"math/rand"
	"testing"
)

type row struct {
	label string
	id    int
}

func labelOf(r row) string { return r.label }

func TestBy_PreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	items := []row{
		{"Sabado 12", 1},
		{"Viernes 11", 2},
		{"Sabado 12", 3},
		{"", 4},
		{"Viernes 11", 5},
		{"  ", 6},
		{"Domingo 13", 7},
	}

	got := By(items, labelOf)

	labels := got.Labels()
	want := []string{"Sabado 12", "Viernes 11", "Domingo 13"}
	if len(labels) != len(want) {
		t.Fatalf("unexpected labels: %v", labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("label %d: got %q want %q", i, labels[i], want[i])
		}
	}

	sat := got.Items("Sabado 12")
	if len(sat) != 2 || sat[0].id != 1 || sat[1].id != 3 {
		t.Fatalf("unexpected intra-group order: %+v", sat)
	}
	if got.Total() != 5 {
		t.Fatalf("expected 5 grouped records, got %d", got.Total())
	}
}

func TestBy_RetainsDuplicates(t *testing.T) {
	t.Parallel()

	items := []row{{"A", 1}, {"A", 1}}
	got := By(items, labelOf)
	if len(got.Items("A")) != 2 {
		t.Fatalf("expected duplicate records to be kept")
	}
}

func TestBy_TotalMatchesLabelledInputs(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	labels := []string{"", "a", "b", "c", " "}
	for round := 0; round < 50; round++ {
		n := rng.Intn(40)
		items := make([]row, n)
		labelled := 0
		for i := range items {
			items[i] = row{label: labels[rng.Intn(len(labels))], id: i}
			if items[i].label != "" && items[i].label != " " {
				labelled++
			}
		}
		if got := By(items, labelOf).Total(); got != labelled {
			t.Fatalf("round %d: total %d want %d", round, got, labelled)
		}
	}
}

func TestGroupsAndMap(t *testing.T) {
	t.Parallel()

	c := By([]row{{"x", 1}, {"y", 2}, {"x", 3}}, labelOf)
	ids := Map(c, func(r row) int { return r.id * 10 })

	groups := ids.Groups()
	if len(groups) != 2 || groups[0].Label != "x" || groups[1].Label != "y" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if groups[0].Items[1] != 30 {
		t.Fatalf("expected mapped values, got %+v", groups[0].Items)
	}
}

func TestBy_Empty(t *testing.T) {
	t.Parallel()

	var c Collection[row]
	if c.Len() != 0 || c.Total() != 0 || len(c.Groups()) != 0 || c.Items("a") != nil {
		t.Fatalf("zero collection should be empty")
	}
}
