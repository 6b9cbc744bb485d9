package viewmodel

import (
	"strings"

	"github.com/iqscore/scorefeed/internal/domain/match"
	"github.com/shopspring/decimal"
)

const (
	StatusLabelLive     = "EN VIVO"
	StatusLabelFinished = "FINALIZADO"
)

type ProbabilitiesView struct {
	Home decimal.Decimal `json:"home"`
	Draw decimal.Decimal `json:"draw"`
	Away decimal.Decimal `json:"away"`
}

type DetailView struct {
	Home          TeamCard          `json:"home"`
	Away          TeamCard          `json:"away"`
	Score         string            `json:"score"`
	HomeGoals     string            `json:"home_goals"`
	AwayGoals     string            `json:"away_goals"`
	Status        match.Status      `json:"status"`
	StatusLabel   string            `json:"status_label"`
	DateTime      string            `json:"date_time"`
	Probabilities ProbabilitiesView `json:"probabilities"`
}

// MatchDetailView layers detail over summary one field at a time: a field
// the detail carries wins, otherwise the summary's value is used, otherwise
// the fixed default (score 0-0, probabilities 33/34/33).
func MatchDetailView(summary match.Match, detail match.Detail) DetailView {
	rawStatus := firstNonBlank(detail.Status, string(summary.Status), string(match.StatusScheduled))
	score := firstNonBlank(detail.Score, summary.Score, match.DefaultDetailScore)
	homeGoals, awayGoals := SplitScore(score)

	probs := detail.Probabilities.Resolve(match.DefaultProbabilities())
	status := match.ParseStatus(rawStatus)

	return DetailView{
		Home:        teamCard(overlayTeam(summary.Home, detail.Home)),
		Away:        teamCard(overlayTeam(summary.Away, detail.Away)),
		Score:       score,
		HomeGoals:   homeGoals,
		AwayGoals:   awayGoals,
		Status:      status,
		StatusLabel: statusLabel(status, rawStatus),
		DateTime:    detailDateTime(summary, detail),
		Probabilities: ProbabilitiesView{
			Home: probs.Home,
			Draw: probs.Draw,
			Away: probs.Away,
		},
	}
}

func overlayTeam(base match.Team, over *match.Team) match.Team {
	if over == nil {
		return base
	}
	return match.Team{
		Name:        firstNonBlank(over.Name, base.Name),
		Logo:        firstNonBlank(over.Logo, base.Logo),
		YellowCards: firstNonBlank(over.YellowCards, base.YellowCards),
		Possession:  firstNonBlank(over.Possession, base.Possession),
	}
}

func detailDateTime(summary match.Match, detail match.Detail) string {
	if dt := strings.TrimSpace(detail.DateTime); dt != "" {
		return dt
	}
	date := strings.TrimSpace(summary.Date)
	clock := strings.TrimSpace(summary.Time)
	if date != "" && clock != "" {
		return date + " " + clock
	}
	return match.DateTimeUnavailable
}

func statusLabel(status match.Status, raw string) string {
	switch status {
	case match.StatusLive:
		return StatusLabelLive
	case match.StatusFinished:
		return StatusLabelFinished
	default:
		return raw
	}
}

// SplitScore returns the two sides of "2 - 1". A missing side is "0".
func SplitScore(score string) (home, away string) {
	parts := strings.SplitN(score, "-", 2)
	home = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		away = strings.TrimSpace(parts[1])
	}
	return firstNonBlank(home, "0"), firstNonBlank(away, "0")
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
