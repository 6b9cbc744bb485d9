// Package viewmodel assembles normalized records into the structures handed to
// presentation. Every function here is pure.
package viewmodel

import (
	"strings"
	"time"
	"unicode"
)

// FormatDay renders t as dd/mm/yyyy. When t is nil the raw upstream text is
// returned untouched.
func FormatDay(t *time.Time, raw string) string {
	if t == nil {
		return strings.TrimSpace(raw)
	}
	return t.Format("02/01/2006")
}

// FormatClock renders t as HH:MM (24h).
func FormatClock(t *time.Time, raw string) string {
	if t == nil {
		return strings.TrimSpace(raw)
	}
	return t.Format("15:04")
}

var teamSeparators = []string{" vs ", " VS ", " Vs ", " v ", " - ", " – "}

// SplitTeams separates a scraped pairing. Explicit separators win; otherwise a
// run-together "MillonariosSanta Fe" is cut at the first lowercase to
// uppercase boundary. ok is false when no split point exists.
func SplitTeams(teams string) (home, away string, ok bool) {
	teams = strings.TrimSpace(teams)
	for _, sep := range teamSeparators {
		if i := strings.Index(teams, sep); i > 0 {
			return strings.TrimSpace(teams[:i]), strings.TrimSpace(teams[i+len(sep):]), true
		}
	}

	runes := []rune(teams)
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			return strings.TrimSpace(string(runes[:i])), strings.TrimSpace(string(runes[i:])), true
		}
	}
	return teams, "", false
}

// PairLabel joins a split pairing as "home vs away".
func PairLabel(teams string) string {
	home, away, ok := SplitTeams(teams)
	if !ok {
		return home
	}
	return home + " vs " + away
}
