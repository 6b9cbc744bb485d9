package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/iqscore/scorefeed/external/scraper"
	"github.com/iqscore/scorefeed/internal/config"
	"github.com/iqscore/scorefeed/internal/interfaces/httpapi"
	"github.com/iqscore/scorefeed/internal/platform/logging"
	"github.com/iqscore/scorefeed/internal/platform/metrics"
	"github.com/iqscore/scorefeed/internal/platform/resilience"
	"github.com/iqscore/scorefeed/internal/usecase"
	"github.com/iqscore/scorefeed/internal/viewmodel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Services is every card use case over one shared scraper client.
type Services struct {
	Client     *scraper.Client
	Odds       *usecase.OddsService
	Promotions *usecase.PromotionService
	LeagueCard *usecase.LeagueCardService
	Standings  *usecase.StandingService
	Scorers    *usecase.ScorerService
	News       *usecase.NewsService
	Matches    *usecase.MatchService
	Home       *usecase.HomeService
}

func NewScraperClient(cfg config.Config, logger *logging.Logger, recorder *metrics.Recorder) (*scraper.Client, error) {
	httpClient := &http.Client{
		Timeout:   cfg.UpstreamTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	client, err := scraper.NewClient(scraper.ClientConfig{
		HTTPClient: httpClient,
		Endpoints:  scraper.Endpoints(cfg.Endpoints),
		Timeout:    cfg.UpstreamTimeout,
		UserAgent:  cfg.ServiceName + "/" + cfg.ServiceVersion,
		Logger:     logger,
		Metrics:    recorder,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.UpstreamCircuitEnabled,
			FailureThreshold: cfg.UpstreamCircuitFailureCount,
			OpenTimeout:      cfg.UpstreamCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.UpstreamCircuitHalfOpenMax,
		},
		RateLimit: resilience.RateConfig{
			PerSecond: cfg.UpstreamRateLimitRPS,
			Burst:     cfg.UpstreamRateLimitBurst,
		},
		Coalesce: cfg.UpstreamCoalesceEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("build scraper client: %w", err)
	}
	return client, nil
}

func NewServices(cfg config.Config, logger *logging.Logger, recorder *metrics.Recorder) (Services, error) {
	client, err := NewScraperClient(cfg, logger, recorder)
	if err != nil {
		return Services{}, err
	}

	svc := Services{
		Client:     client,
		Odds:       usecase.NewOddsService(client),
		Promotions: usecase.NewPromotionService(client),
		LeagueCard: usecase.NewLeagueCardService(client),
		Standings:  usecase.NewStandingService(client),
		Scorers:    usecase.NewScorerService(client),
		News:       usecase.NewNewsService(client, cfg.NewsCarouselSize),
		Matches: usecase.NewMatchService(client, viewmodel.CarouselOptions{
			Preferred: cfg.TopMatchesPreferredLeagues,
			Limit:     cfg.TopMatchesLimit,
		}),
	}
	svc.Home = usecase.NewHomeService(usecase.HomeServices{
		Odds:       svc.Odds,
		Promotions: svc.Promotions,
		LeagueCard: svc.LeagueCard,
		Standings:  svc.Standings,
		Scorers:    svc.Scorers,
		News:       svc.News,
		Matches:    svc.Matches,
	}, cfg.HomeMaxWorkers)

	logger.Info("scraper endpoints configured", "endpoints", client.Endpoints())
	return svc, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	recorder := metrics.New()
	services, err := NewServices(cfg, logger, recorder)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Odds:       services.Odds,
		Promotions: services.Promotions,
		LeagueCard: services.LeagueCard,
		Standings:  services.Standings,
		Scorers:    services.Scorers,
		News:       services.News,
		Matches:    services.Matches,
		Home:       services.Home,
	}, logger)
	router := httpapi.NewRouter(handler, recorder.Handler(), logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}
