package standing

import "time"

// Row is one team line of a league table.
type Row struct {
	Position       int
	Team           string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

type League struct {
	Name string
	Rows []Row
}

type Snapshot struct {
	ScrapedAt    *time.Time
	ScrapedAtRaw string
	Leagues      []League
}
