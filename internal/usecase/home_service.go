package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iqscore/scorefeed/internal/viewmodel"
	"github.com/panjf2000/ants/v2"
)

const defaultHomeWorkers = 4

const (
	CardStatusOK    = "ok"
	CardStatusError = "error"
)

// HomeCard is one card of the home page. Each card fails on its own: Status
// is "error" and Message carries the short user text.
type HomeCard struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	Err        error  `json:"-"`
}

type HomePage struct {
	Cards []HomeCard `json:"cards"`
}

// Card looks a card up by name.
func (p HomePage) Card(name string) (HomeCard, bool) {
	for _, c := range p.Cards {
		if c.Name == name {
			return c, true
		}
	}
	return HomeCard{}, false
}

type homeCardLoader struct {
	name string
	load func(ctx context.Context) (any, error)
}

type HomeService struct {
	cards      []homeCardLoader
	maxWorkers int
}

type HomeServices struct {
	Odds       *OddsService
	Promotions *PromotionService
	LeagueCard *LeagueCardService
	Standings  *StandingService
	Scorers    *ScorerService
	News       *NewsService
	Matches    *MatchService
}

func NewHomeService(services HomeServices, maxWorkers int) *HomeService {
	if maxWorkers <= 0 {
		maxWorkers = defaultHomeWorkers
	}

	s := &HomeService{maxWorkers: maxWorkers}
	add := func(name string, load func(ctx context.Context) (any, error)) {
		s.cards = append(s.cards, homeCardLoader{name: name, load: load})
	}
	if services.Matches != nil {
		add("top_matches", func(ctx context.Context) (any, error) { return services.Matches.TopCarousel(ctx) })
	}
	if services.News != nil {
		add("news", func(ctx context.Context) (any, error) { return services.News.Feed(ctx) })
	}
	if services.Odds != nil {
		add("league_odds", func(ctx context.Context) (any, error) { return services.Odds.Board(ctx) })
	}
	if services.LeagueCard != nil {
		add("league_card", func(ctx context.Context) (any, error) { return services.LeagueCard.Get(ctx) })
	}
	if services.Promotions != nil {
		add("promotions", func(ctx context.Context) (any, error) { return services.Promotions.List(ctx) })
	}
	if services.Standings != nil {
		add("standings", func(ctx context.Context) (any, error) {
			return services.Standings.Tables(ctx, viewmodel.Expansion{})
		})
	}
	if services.Scorers != nil {
		add("scorers", func(ctx context.Context) (any, error) { return services.Scorers.Board(ctx) })
	}
	return s
}

// Get loads every card concurrently. It only fails when the worker pool
// cannot run; card failures are reported inside the page.
func (s *HomeService) Get(ctx context.Context) (HomePage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HomeService.Get")
	defer span.End()

	page := HomePage{Cards: make([]HomeCard, len(s.cards))}
	if len(s.cards) == 0 {
		return page, nil
	}

	pool, err := ants.NewPool(min(s.maxWorkers, len(s.cards)))
	if err != nil {
		return HomePage{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, card := range s.cards {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			page.Cards[i] = runHomeCard(ctx, card)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return HomePage{}, fmt.Errorf("submit card %s to worker pool: %w", card.name, err)
		}
	}
	workers.Wait()

	return page, nil
}

func runHomeCard(ctx context.Context, card homeCardLoader) HomeCard {
	start := time.Now()
	data, err := card.load(ctx)
	out := HomeCard{
		Name:       card.name,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		out.Status = CardStatusError
		out.Message = FailureMessage(err)
		out.Err = err
		return out
	}
	out.Status = CardStatusOK
	out.Data = data
	return out
}
