package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
	if cfg.UpstreamTimeout != 20*time.Second {
		t.Fatalf("unexpected upstream timeout: %s", cfg.UpstreamTimeout)
	}
	if cfg.UpstreamCoalesceEnabled {
		t.Fatalf("expected coalescing to be off by default")
	}
	if !cfg.UpstreamCircuitEnabled || cfg.UpstreamCircuitFailureCount != 5 {
		t.Fatalf("unexpected circuit defaults: enabled=%v failures=%d", cfg.UpstreamCircuitEnabled, cfg.UpstreamCircuitFailureCount)
	}
	if cfg.TopMatchesLimit != 3 || cfg.NewsCarouselSize != 3 {
		t.Fatalf("unexpected carousel defaults: matches=%d news=%d", cfg.TopMatchesLimit, cfg.NewsCarouselSize)
	}
	if len(cfg.TopMatchesPreferredLeagues) != 2 || cfg.TopMatchesPreferredLeagues[0] != "Apertura Colombia" {
		t.Fatalf("unexpected preferred leagues: %+v", cfg.TopMatchesPreferredLeagues)
	}
	if cfg.BoardMatchCarouselInterval != 6*time.Second {
		t.Fatalf("unexpected match carousel interval: %s", cfg.BoardMatchCarouselInterval)
	}
	if cfg.BoardPollSchedule != "@every 5m" {
		t.Fatalf("unexpected poll schedule: %q", cfg.BoardPollSchedule)
	}
	if cfg.Endpoints != (Endpoints{}) {
		t.Fatalf("expected no endpoint overrides, got %+v", cfg.Endpoints)
	}
}

func TestLoad_RejectsNonPositiveNumbers(t *testing.T) {
	keys := []string{
		"UPSTREAM_RATE_LIMIT_RPS",
		"UPSTREAM_RATE_LIMIT_BURST",
		"UPSTREAM_CIRCUIT_FAILURE_COUNT",
		"TOP_MATCHES_LIMIT",
		"NEWS_CAROUSEL_SIZE",
		"HOME_MAX_WORKERS",
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(key, "0")
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=0", key)
			}
		})
	}
}

func TestLoad_RejectsBadDurationsAndSchedule(t *testing.T) {
	cases := map[string]string{
		"UPSTREAM_TIMEOUT":              "soon",
		"UPSTREAM_CIRCUIT_OPEN_TIMEOUT": "-1s",
		"BOARD_MATCH_CAROUSEL_INTERVAL": "0s",
		"BOARD_POLL_SCHEDULE":           "every now and then",
		"UPSTREAM_COALESCE_ENABLED":     "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "scorefeed-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "scorefeed-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})

	t.Run("only separators", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for empty CORS origin list")
		}
	})
}

func TestLoad_EndpointsFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upstream.yaml")
	content := "endpoints:\n  news: https://news.example.com/feed\n  standings: https://tables.example.com/\npreferred_leagues:\n  - Liga Argentina\n  - Argentina\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write upstream file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("UPSTREAM_ENDPOINTS_FILE", path)
	t.Setenv("UPSTREAM_STANDINGS_URL", "https://override.example.com/tables")
	t.Setenv("TOP_MATCHES_PREFERRED_LEAGUES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Endpoints.News != "https://news.example.com/feed" {
		t.Fatalf("unexpected news endpoint: %q", cfg.Endpoints.News)
	}
	if cfg.Endpoints.Standings != "https://override.example.com/tables" {
		t.Fatalf("expected env override for standings, got %q", cfg.Endpoints.Standings)
	}
	if cfg.Endpoints.Scorers != "" {
		t.Fatalf("expected scorers to stay on defaults, got %q", cfg.Endpoints.Scorers)
	}
	if len(cfg.TopMatchesPreferredLeagues) != 2 || cfg.TopMatchesPreferredLeagues[0] != "Liga Argentina" {
		t.Fatalf("expected preferred leagues from file, got %+v", cfg.TopMatchesPreferredLeagues)
	}

	t.Setenv("TOP_MATCHES_PREFERRED_LEAGUES", "Premier League")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.TopMatchesPreferredLeagues) != 1 || cfg.TopMatchesPreferredLeagues[0] != "Premier League" {
		t.Fatalf("expected env to win over file, got %+v", cfg.TopMatchesPreferredLeagues)
	}
}

func TestParseUpstreamFile_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := parseUpstreamFile([]byte("endpoints: [not, a, mapping]")); err == nil {
		t.Fatalf("expected error for malformed upstream file")
	}
}

func TestLoad_EndpointsFileMissing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("UPSTREAM_ENDPOINTS_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing endpoints file")
	}
}
