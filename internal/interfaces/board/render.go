package board

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/iqscore/scorefeed/internal/domain/odds"
	"github.com/iqscore/scorefeed/internal/domain/standing"
	"github.com/iqscore/scorefeed/internal/viewmodel"
	"github.com/iqscore/scorefeed/internal/viewstate"
)

const (
	loadingText    = "Cargando..."
	maxScorerRows  = 10
	maxNewsListRow = 5
)

// Render draws every card once. Cards render from their snapshot, so a
// failed card shows its message while the others keep their data.
func (b *Board) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== scorefeed %s ===\n", b.cfg.Now().Format("02/01/2006 15:04:05"))
	b.renderMatches(tw)
	b.renderDetail(tw)
	b.renderNews(tw)
	renderCard(tw, "CUOTAS POR LIGA", b.odds.Snapshot(), renderOdds)
	renderCard(tw, "CUOTAS DE LA LIGA", b.leagueCard.Snapshot(), renderLeagueCard)
	renderCard(tw, "PROMOCIONES", b.promotions.Snapshot(), renderPromotions)
	b.renderStandings(tw)
	renderCard(tw, "GOLEADORES", b.scorers.Snapshot(), renderScorers)

	if status := b.statusLine(); status != "" {
		fmt.Fprintf(tw, "\n> %s\n", status)
	}
	return tw.Flush()
}

// renderCard prints the header and either the loading text, the failure
// message, or the body. The last good value stays visible while reloading.
func renderCard[T any](w io.Writer, title string, snap viewstate.Snapshot[T], body func(io.Writer, T)) {
	fmt.Fprintf(w, "\n[%s]\n", title)
	switch {
	case snap.State == viewstate.StateFailure:
		fmt.Fprintf(w, "  ! %s\n", snap.Message)
	case snap.HasValue:
		body(w, snap.Value)
		if snap.State == viewstate.StateLoading {
			fmt.Fprintf(w, "  %s\n", loadingText)
		}
	case snap.State == viewstate.StateLoading:
		fmt.Fprintf(w, "  %s\n", loadingText)
	default:
		fmt.Fprintln(w, "  -")
	}
}

func (b *Board) renderMatches(w io.Writer) {
	snap := b.matches.Snapshot()
	title := "PARTIDOS"
	if snap.HasValue && snap.Value.Title != "" {
		title = "PARTIDOS: " + snap.Value.Title
	}
	index, _ := b.matchRotator.Current()
	renderCard(w, title, snap, func(w io.Writer, view viewmodel.TopMatchesView) {
		if index >= len(view.Matches) {
			return
		}
		m := view.Matches[index]
		fmt.Fprintf(w, "  %d/%d\t%s\t%s\t%s\n", index+1, len(view.Matches), m.Home.Name, matchCentre(m), m.Away.Name)
		fmt.Fprintf(w, "  \t%s\t%s\t\n", m.Date, string(m.Status))
	})
}

func matchCentre(m viewmodel.MatchCard) string {
	if m.Score == "" {
		return m.Time
	}
	if m.CurrentTime != "" {
		return m.Score + " (" + m.CurrentTime + ")"
	}
	return m.Score
}

func (b *Board) renderDetail(w io.Writer) {
	snap := b.detail.Snapshot()
	if snap.State == viewstate.StateIdle {
		return
	}
	renderCard(w, "DETALLE", snap, func(w io.Writer, d viewmodel.DetailView) {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", d.Home.Name, d.HomeGoals+" - "+d.AwayGoals, d.Away.Name, d.StatusLabel)
		fmt.Fprintf(w, "  %s\n", d.DateTime)
		fmt.Fprintf(w, "  Local %s%%\tEmpate %s%%\tVisitante %s%%\t\n",
			d.Probabilities.Home.String(), d.Probabilities.Draw.String(), d.Probabilities.Away.String())
		if d.Home.Possession != "" || d.Away.Possession != "" {
			fmt.Fprintf(w, "  Posesión\t%s\t%s\t\n", d.Home.Possession, d.Away.Possession)
		}
		if d.Home.YellowCards != "" || d.Away.YellowCards != "" {
			fmt.Fprintf(w, "  Amarillas\t%s\t%s\t\n", d.Home.YellowCards, d.Away.YellowCards)
		}
	})
}

func (b *Board) renderNews(w io.Writer) {
	snap := b.news.Snapshot()
	index, _ := b.newsRotator.Current()
	renderCard(w, "NOTICIAS", snap, func(w io.Writer, view viewmodel.NewsView) {
		if index < len(view.Carousel) {
			slide := view.Carousel[index]
			names := make([]string, 0, len(slide.Authors))
			for _, a := range slide.Authors {
				names = append(names, a.Name)
			}
			fmt.Fprintf(w, "  %d/%d\t%s\n", index+1, len(view.Carousel), slide.Title)
			fmt.Fprintf(w, "  \t%s\t%s\n", strings.Join(names, ", "), slide.PublishedDay)
		}
		for i, item := range view.List {
			if i == maxNewsListRow {
				fmt.Fprintf(w, "  ... %d más\n", len(view.List)-maxNewsListRow)
				break
			}
			fmt.Fprintf(w, "  -\t%s\t%s\n", item.Title, item.Author.Name)
		}
	})
}

func renderOdds(w io.Writer, view viewmodel.OddsBoardView) {
	for _, group := range view.Groups {
		fmt.Fprintf(w, "  %s\n", group.Label)
		for _, row := range group.Items {
			fmt.Fprintf(w, "    %s\t%s\t%s\t%s\t%s\t%s\n", row.Time, pair(row.Home, row.Away),
				oddCell(row.OddHome), oddCell(row.OddDraw), oddCell(row.OddAway), row.League)
		}
	}
}

// oddCell marks the display sign so favourable and unfavourable prices stand
// out without colour.
func oddCell(v viewmodel.OddValue) string {
	switch v.Sign {
	case odds.SignFavorable:
		return v.Value + " ▲"
	case odds.SignUnfavorable:
		return v.Value + " ▼"
	default:
		return v.Value
	}
}

func renderLeagueCard(w io.Writer, view viewmodel.LeagueCardView) {
	for _, f := range view.Fixtures {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", f.Pairing, f.Date, f.Prediction, f.Odd)
	}
	for _, t := range view.TitleOdds {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", t.Team, t.DateTime, t.OneXTwo)
	}
	if len(view.Combined.Legs) > 0 {
		fmt.Fprintf(w, "  %s\n", view.Combined.Description)
		for _, leg := range view.Combined.Legs {
			fmt.Fprintf(w, "    %s\t%s\t%s\n", leg.Match, leg.Bet, leg.Odd)
		}
		if view.Combined.TotalOdd != "" {
			fmt.Fprintf(w, "    Cuota total\t\t%s\n", view.Combined.TotalOdd)
		}
	}
}

func renderPromotions(w io.Writer, view viewmodel.PromotionsView) {
	for _, p := range view.Rows {
		expires := strings.TrimSpace(p.ExpiresDay + " " + p.ExpiresClock)
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", pair(p.Home, p.Away), p.BetType, p.Odd, p.Bookmaker.Name, expires)
	}
}

func (b *Board) renderStandings(w io.Writer) {
	snap := b.standings.Snapshot()
	view := b.Standings()
	renderCard(w, "TABLAS", snap, func(w io.Writer, _ viewmodel.StandingsView) {
		for _, table := range view.Tables {
			if !table.Expanded {
				fmt.Fprintf(w, "  + %s\n", table.Name)
				continue
			}
			fmt.Fprintf(w, "  - %s\n", table.Name)
			fmt.Fprintln(w, "    #\tEquipo\tPJ\tG\tE\tP\tGF\tGC\tDG\tPts\t")
			for _, r := range table.Rows {
				fmt.Fprintf(w, "    %d%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n", r.Position, zoneMark(r.Zone), r.Team,
					r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst, r.GoalDifference, r.Points)
			}
		}
	})
}

func pair(home, away string) string {
	if away == "" {
		return home
	}
	return home + " vs " + away
}

func zoneMark(z standing.Zone) string {
	switch z {
	case standing.ZonePromotion:
		return " ↑"
	case standing.ZoneRelegation:
		return " ↓"
	default:
		return ""
	}
}

func renderScorers(w io.Writer, view viewmodel.ScorersView) {
	if len(view.Periods) == 0 {
		return
	}
	period := view.Periods[0]
	fmt.Fprintf(w, "  %s\n", period.Title)
	for i, r := range period.Rows {
		if i == maxScorerRows {
			break
		}
		fmt.Fprintf(w, "    %d\t%s\t%s\t%d\t%s\t\n", r.Rank, r.Player, r.Team, r.Goals, r.Average)
	}
}
