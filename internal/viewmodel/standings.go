package viewmodel

import (
	"time"

	"github.com/iqscore/scorefeed/internal/domain/standing"
)

type StandingRow struct {
	Position       int           `json:"position"`
	Team           string        `json:"team"`
	Played         int           `json:"played"`
	Won            int           `json:"won"`
	Drawn          int           `json:"drawn"`
	Lost           int           `json:"lost"`
	GoalsFor       int           `json:"goals_for"`
	GoalsAgainst   int           `json:"goals_against"`
	GoalDifference int           `json:"goal_difference"`
	Points         int           `json:"points"`
	Zone           standing.Zone `json:"zone"`
}

type StandingTable struct {
	Name     string        `json:"name"`
	Expanded bool          `json:"expanded"`
	Rows     []StandingRow `json:"rows"`
}

type StandingsView struct {
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
	UpdatedDay string          `json:"updated_day"`
	Expanded   string          `json:"expanded"`
	Tables     []StandingTable `json:"tables"`
}

// Expansion selects which league table is open. The zero value opens the
// first league; an explicit empty name collapses all of them.
type Expansion struct {
	Name     string
	Explicit bool
}

func Expand(name string) Expansion {
	return Expansion{Name: name, Explicit: true}
}

// ToggleLeague opens name, or collapses it when it is already the open one.
func ToggleLeague(view StandingsView, name string) Expansion {
	if view.Expanded == name {
		return Expand("")
	}
	return Expand(name)
}

// StandingsTables classifies every row into its zone. A league with no rows
// is kept as an empty table.
func StandingsTables(snap standing.Snapshot, expansion Expansion) StandingsView {
	view := StandingsView{
		UpdatedAt:  snap.ScrapedAt,
		UpdatedDay: FormatDay(snap.ScrapedAt, snap.ScrapedAtRaw),
		Tables:     make([]StandingTable, 0, len(snap.Leagues)),
	}

	for _, league := range snap.Leagues {
		table := StandingTable{
			Name: league.Name,
			Rows: make([]StandingRow, 0, len(league.Rows)),
		}
		n := len(league.Rows)
		for _, r := range league.Rows {
			table.Rows = append(table.Rows, StandingRow{
				Position:       r.Position,
				Team:           r.Team,
				Played:         r.Played,
				Won:            r.Won,
				Drawn:          r.Drawn,
				Lost:           r.Lost,
				GoalsFor:       r.GoalsFor,
				GoalsAgainst:   r.GoalsAgainst,
				GoalDifference: r.GoalDifference,
				Points:         r.Points,
				Zone:           standing.ClassifyZone(r.Position, n),
			})
		}
		view.Tables = append(view.Tables, table)
	}
	return view.WithExpansion(expansion)
}

// WithExpansion reopens the tables of an assembled view without touching
// the rows.
func (v StandingsView) WithExpansion(expansion Expansion) StandingsView {
	out := v
	out.Expanded = ""
	switch {
	case expansion.Explicit:
		out.Expanded = expansion.Name
	case len(v.Tables) > 0:
		out.Expanded = v.Tables[0].Name
	}

	out.Tables = make([]StandingTable, len(v.Tables))
	for i, table := range v.Tables {
		table.Expanded = out.Expanded != "" && table.Name == out.Expanded
		out.Tables[i] = table
	}
	return out
}
