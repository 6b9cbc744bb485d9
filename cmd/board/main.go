package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iqscore/scorefeed/internal/app"
	"github.com/iqscore/scorefeed/internal/config"
	"github.com/iqscore/scorefeed/internal/interfaces/board"
	"github.com/iqscore/scorefeed/internal/observability"
	"github.com/iqscore/scorefeed/internal/platform/logging"
	"github.com/iqscore/scorefeed/internal/platform/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// stdout belongs to the board, logs go to stderr.
	logger := logging.NewConsole(os.Stderr, cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	recorder := metrics.New()
	services, err := app.NewServices(cfg, logger, recorder)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}

	b, err := board.New(board.Services{
		Odds:       services.Odds,
		Promotions: services.Promotions,
		LeagueCard: services.LeagueCard,
		Standings:  services.Standings,
		Scorers:    services.Scorers,
		News:       services.News,
		Matches:    services.Matches,
	}, board.Config{
		PollSchedule:  cfg.BoardPollSchedule,
		MatchInterval: cfg.BoardMatchCarouselInterval,
		Out:           os.Stdout,
		Logger:        logger,
		Metrics:       recorder,
	})
	if err != nil {
		logger.Error("build board", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx, os.Stdin); err != nil {
		logger.Error("board stopped with error", "error", err)
	}
	b.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := stopProfiler(); err != nil {
		logger.Error("pyroscope stop failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("uptrace shutdown failed", "error", err)
	}
}
