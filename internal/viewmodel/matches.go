package viewmodel

import (
	"github.com/iqscore/scorefeed/internal/domain/match"
	"github.com/iqscore/scorefeed/internal/platform/textfix"
)

const (
	DefaultCarouselLimit  = 3
	DefaultPreferredTitle = "Liga Betplay"
	FallbackLeagueTitle   = "Partidos Top"
)

// DefaultPreferredLeagues is tried in order: exact name first, then
// containment.
var DefaultPreferredLeagues = []string{"Apertura Colombia", "Colombia"}

type TeamCard struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	YellowCards string `json:"yellow_cards,omitempty"`
	Possession  string `json:"possession,omitempty"`
}

type MatchCard struct {
	Home        TeamCard     `json:"home"`
	Away        TeamCard     `json:"away"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Status      match.Status `json:"status"`
	Score       string       `json:"score"`
	CurrentTime string       `json:"current_time"`
	DetailLink  string       `json:"detail_link,omitempty"`
}

type TopMatchesView struct {
	Title   string      `json:"title"`
	League  string      `json:"league"`
	Matches []MatchCard `json:"matches"`
}

type CarouselOptions struct {
	Preferred      []string
	PreferredTitle string
	Limit          int
}

func (o CarouselOptions) withDefaults() CarouselOptions {
	if len(o.Preferred) == 0 {
		o.Preferred = DefaultPreferredLeagues
	}
	if o.PreferredTitle == "" {
		o.PreferredTitle = DefaultPreferredTitle
	}
	if o.Limit <= 0 {
		o.Limit = DefaultCarouselLimit
	}
	return o
}

// SelectLeague picks the first league whose name equals a preferred name,
// then the first whose name contains one, comparing without case or accents.
// preferred reports whether the choice came from the preference list; with
// no match the first league is returned.
func SelectLeague(leagues []match.LeagueMatches, names []string) (league match.LeagueMatches, preferred, ok bool) {
	if len(leagues) == 0 {
		return match.LeagueMatches{}, false, false
	}
	for _, name := range names {
		for _, l := range leagues {
			if textfix.EqualFold(l.Name, name) {
				return l, true, true
			}
		}
	}
	for _, name := range names {
		for _, l := range leagues {
			if textfix.ContainsFold(l.Name, name) {
				return l, true, true
			}
		}
	}
	return leagues[0], false, true
}

// TopMatchesCarousel selects a league and keeps its first matches. The
// title is the preferred title when the preference matched, otherwise the
// league's own name.
func TopMatchesCarousel(leagues []match.LeagueMatches, opts CarouselOptions) TopMatchesView {
	opts = opts.withDefaults()

	league, preferred, ok := SelectLeague(leagues, opts.Preferred)
	if !ok {
		return TopMatchesView{Title: FallbackLeagueTitle, Matches: []MatchCard{}}
	}

	view := TopMatchesView{League: league.Name}
	switch {
	case preferred:
		view.Title = opts.PreferredTitle
	case league.Name != "":
		view.Title = league.Name
	default:
		view.Title = FallbackLeagueTitle
	}

	n := min(opts.Limit, len(league.Matches))
	view.Matches = make([]MatchCard, 0, n)
	for _, m := range league.Matches[:n] {
		view.Matches = append(view.Matches, NewMatchCard(m))
	}
	return view
}

// NewMatchCard fills any optional field the normalizer left empty with its
// placeholder.
func NewMatchCard(m match.Match) MatchCard {
	status := m.Status
	if !status.Valid() {
		status = match.StatusScheduled
	}
	return MatchCard{
		Home:        teamCard(m.Home),
		Away:        teamCard(m.Away),
		Date:        m.Date,
		Time:        firstNonBlank(m.Time, match.PlaceholderTime),
		Status:      status,
		Score:       m.Score,
		CurrentTime: m.CurrentTime,
		DetailLink:  m.DetailLink,
	}
}

func teamCard(t match.Team) TeamCard {
	return TeamCard{
		Name:        t.Name,
		Logo:        firstNonBlank(t.Logo, match.PlaceholderLogo),
		YellowCards: t.YellowCards,
		Possession:  t.Possession,
	}
}

// Summary turns a card back into the match it was built from, for the detail
// lookup.
func (c MatchCard) Summary() match.Match {
	return match.Match{
		Home:        c.Home.team(),
		Away:        c.Away.team(),
		Date:        c.Date,
		Time:        c.Time,
		Status:      c.Status,
		Score:       c.Score,
		CurrentTime: c.CurrentTime,
		DetailLink:  c.DetailLink,
	}
}

func (t TeamCard) team() match.Team {
	return match.Team{
		Name:        t.Name,
		Logo:        t.Logo,
		YellowCards: t.YellowCards,
		Possession:  t.Possession,
	}
}
