// Package board is the terminal front end: one view state machine per card,
// scheduled polling, and the match and news carousels.
package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/iqscore/scorefeed/internal/platform/logging"
	"github.com/iqscore/scorefeed/internal/platform/metrics"
	"github.com/iqscore/scorefeed/internal/platform/rotation"
	"github.com/iqscore/scorefeed/internal/usecase"
	"github.com/iqscore/scorefeed/internal/viewmodel"
	"github.com/iqscore/scorefeed/internal/viewstate"
	"github.com/robfig/cron/v3"
	"github.com/sourcegraph/conc"
)

const (
	DefaultPollSchedule  = "@every 5m"
	DefaultMatchInterval = 6 * time.Second
)

type Services struct {
	Odds       *usecase.OddsService
	Promotions *usecase.PromotionService
	LeagueCard *usecase.LeagueCardService
	Standings  *usecase.StandingService
	Scorers    *usecase.ScorerService
	News       *usecase.NewsService
	Matches    *usecase.MatchService
}

func (s Services) validate() error {
	missing := make([]string, 0)
	if s.Odds == nil {
		missing = append(missing, "odds")
	}
	if s.Promotions == nil {
		missing = append(missing, "promotions")
	}
	if s.LeagueCard == nil {
		missing = append(missing, "league card")
	}
	if s.Standings == nil {
		missing = append(missing, "standings")
	}
	if s.Scorers == nil {
		missing = append(missing, "scorers")
	}
	if s.News == nil {
		missing = append(missing, "news")
	}
	if s.Matches == nil {
		missing = append(missing, "matches")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: board services missing: %v", usecase.ErrInvalidInput, missing)
	}
	return nil
}

type Config struct {
	// PollSchedule is a cron spec; descriptors such as "@every 5m" work.
	PollSchedule string
	// MatchInterval drives the match carousel. The news carousel is manual.
	MatchInterval time.Duration
	Out           io.Writer
	Logger        *logging.Logger
	Metrics       *metrics.Recorder
	Now           func() time.Time
}

// Board owns the card views and carousels and redraws on every change.
type Board struct {
	cfg    Config
	logger *logging.Logger

	matches    *viewstate.View[viewmodel.TopMatchesView]
	detail     *viewstate.View[viewmodel.DetailView]
	news       *viewstate.View[viewmodel.NewsView]
	odds       *viewstate.View[viewmodel.OddsBoardView]
	leagueCard *viewstate.View[viewmodel.LeagueCardView]
	promotions *viewstate.View[viewmodel.PromotionsView]
	standings  *viewstate.View[viewmodel.StandingsView]
	scorers    *viewstate.View[viewmodel.ScorersView]

	refreshers []refresher
	closers    []func()

	matchRotator *rotation.Rotator
	newsRotator  *rotation.Rotator

	mu        sync.Mutex
	expansion viewmodel.Expansion
	status    string
	redraw    chan struct{}
	tasks     conc.WaitGroup
}

func New(services Services, cfg Config) (*Board, error) {
	if err := services.validate(); err != nil {
		return nil, err
	}
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = DefaultPollSchedule
	}
	if cfg.MatchInterval <= 0 {
		cfg.MatchInterval = DefaultMatchInterval
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	b := &Board{
		cfg:    cfg,
		logger: cfg.Logger.Named("board"),
		redraw: make(chan struct{}, 1),
	}

	b.matchRotator = rotation.NewRotator(cfg.MatchInterval, rotation.OnChange(b.onRotate("matches")))
	b.newsRotator = rotation.NewRotator(0, rotation.OnChange(b.onRotate("news")))

	b.matches = addView(b, "matches", services.Matches.TopCarousel, true)
	b.news = addView(b, "news", services.News.Feed, true)
	b.odds = addView(b, "league_odds", services.Odds.Board, true)
	b.leagueCard = addView(b, "league_card", services.LeagueCard.Get, true)
	b.promotions = addView(b, "promotions", services.Promotions.List, true)
	b.standings = addView(b, "standings", func(ctx context.Context) (viewmodel.StandingsView, error) {
		return services.Standings.Tables(ctx, viewmodel.Expansion{})
	}, true)
	b.scorers = addView(b, "scorers", services.Scorers.Board, true)
	b.detail = addView(b, "match_detail", func(ctx context.Context) (viewmodel.DetailView, error) {
		card, ok := b.CurrentMatch()
		if !ok {
			return viewmodel.DetailView{}, fmt.Errorf("%w: no match selected", usecase.ErrInvalidInput)
		}
		return services.Matches.Detail(ctx, card.Summary())
	}, false)

	b.matches.Subscribe(func(snap viewstate.Snapshot[viewmodel.TopMatchesView]) {
		if snap.State == viewstate.StateSuccess {
			b.matchRotator.SetLen(len(snap.Value.Matches))
		}
	})
	b.news.Subscribe(func(snap viewstate.Snapshot[viewmodel.NewsView]) {
		if snap.State == viewstate.StateSuccess {
			b.newsRotator.SetLen(len(snap.Value.Carousel))
		}
	})

	return b, nil
}

type refresher struct {
	refresh func(ctx context.Context) error
	failed  func() bool
}

// addView registers a card view; polled views join the scheduled refresh.
func addView[T any](b *Board, name string, load func(context.Context) (T, error), polled bool) *viewstate.View[T] {
	view := viewstate.New(name, load,
		viewstate.WithLogger(b.logger),
		viewstate.WithMetrics(b.cfg.Metrics),
		viewstate.WithClock(b.cfg.Now),
	)
	view.Subscribe(func(viewstate.Snapshot[T]) { b.requestRender() })
	if polled {
		b.refreshers = append(b.refreshers, refresher{
			refresh: view.Refresh,
			failed:  func() bool { return view.Snapshot().State == viewstate.StateFailure },
		})
	}
	b.closers = append(b.closers, view.Close)
	return view
}

func (b *Board) onRotate(view string) func(index, length int, trigger rotation.Trigger) {
	return func(index, length int, trigger rotation.Trigger) {
		b.cfg.Metrics.RecordRotation(view, string(trigger))
		b.requestRender()
	}
}

func (b *Board) requestRender() {
	select {
	case b.redraw <- struct{}{}:
	default:
	}
}

// RefreshAll reloads every polled card concurrently and waits for all of
// them. Card failures stay inside their views.
func (b *Board) RefreshAll(ctx context.Context) {
	b.refresh(ctx, false)
}

// Poll is the scheduled refresh. Cards in Failure are left alone until the
// user reloads them.
func (b *Board) Poll(ctx context.Context) {
	b.refresh(ctx, true)
}

func (b *Board) refresh(ctx context.Context, skipFailed bool) {
	var wg conc.WaitGroup
	for _, r := range b.refreshers {
		if skipFailed && r.failed() {
			continue
		}
		wg.Go(func() {
			if err := r.refresh(ctx); err != nil && !errors.Is(err, viewstate.ErrSuperseded) && !errors.Is(err, viewstate.ErrClosed) {
				b.logger.DebugContext(ctx, "card refresh failed", "error", err)
			}
		})
	}
	wg.Wait()
}

// LoadDetail fetches the detail of the match the carousel is showing.
func (b *Board) LoadDetail(ctx context.Context) error {
	return b.detail.Refresh(ctx)
}

// CurrentMatch is the card under the match carousel cursor.
func (b *Board) CurrentMatch() (viewmodel.MatchCard, bool) {
	snap := b.matches.Snapshot()
	index, ok := b.matchRotator.Current()
	if !ok || !snap.HasValue || index >= len(snap.Value.Matches) {
		return viewmodel.MatchCard{}, false
	}
	return snap.Value.Matches[index], true
}

// ToggleStandings opens name, or collapses it when it is already open.
func (b *Board) ToggleStandings(name string) {
	current := b.Standings()

	b.mu.Lock()
	b.expansion = viewmodel.ToggleLeague(current, name)
	b.mu.Unlock()
	b.requestRender()
}

// Standings is the standings view with the board's expansion applied.
func (b *Board) Standings() viewmodel.StandingsView {
	b.mu.Lock()
	expansion := b.expansion
	b.mu.Unlock()
	return b.standings.Snapshot().Value.WithExpansion(expansion)
}

func (b *Board) setStatus(msg string) {
	b.mu.Lock()
	b.status = msg
	b.mu.Unlock()
	b.requestRender()
}

func (b *Board) statusLine() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

func (b *Board) goBackground(ctx context.Context, fn func(ctx context.Context)) {
	b.tasks.Go(func() { fn(ctx) })
}

// Run polls on the configured schedule, rotates the carousels, and executes
// commands read from in until ctx ends, in is exhausted, or "q" arrives.
func (b *Board) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scheduler := cron.New(
		cron.WithLogger(cronLogger{logger: b.logger}),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: b.logger})),
	)
	if _, err := scheduler.AddFunc(b.cfg.PollSchedule, func() { b.Poll(ctx) }); err != nil {
		return fmt.Errorf("schedule board refresh %q: %w", b.cfg.PollSchedule, err)
	}

	b.matchRotator.Start(ctx)
	b.newsRotator.Start(ctx)
	scheduler.Start()
	defer func() {
		cancel()
		<-scheduler.Stop().Done()
		b.matchRotator.Stop()
		b.newsRotator.Stop()
		b.tasks.Wait()
	}()

	b.goBackground(ctx, b.RefreshAll)

	var commands chan string
	if in != nil {
		commands = make(chan string)
		go readCommands(ctx, in, commands)
	}

	b.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-b.redraw:
			b.render()
		case line, ok := <-commands:
			if !ok {
				return nil
			}
			if b.Execute(ctx, line) {
				return nil
			}
		}
	}
}

func (b *Board) render() {
	if err := b.Render(b.cfg.Out); err != nil {
		b.logger.Warn("render board failed", "error", err)
	}
}

// Close stops the carousels and closes every view, discarding late results.
func (b *Board) Close() {
	b.matchRotator.Stop()
	b.newsRotator.Stop()
	for _, closeView := range b.closers {
		closeView()
	}
}

type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
