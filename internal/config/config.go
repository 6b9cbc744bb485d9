package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iqscore/scorefeed/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

// Config stores runtime configuration for the service and the board.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	LogLevel                    logging.Level
	Endpoints                   Endpoints
	UpstreamTimeout             time.Duration
	UpstreamRateLimitRPS        float64
	UpstreamRateLimitBurst      int
	UpstreamCoalesceEnabled     bool
	UpstreamCircuitEnabled      bool
	UpstreamCircuitFailureCount int
	UpstreamCircuitOpenTimeout  time.Duration
	UpstreamCircuitHalfOpenMax  int
	TopMatchesPreferredLeagues  []string
	TopMatchesLimit             int
	NewsCarouselSize            int
	HomeMaxWorkers              int
	BoardPollSchedule           string
	BoardMatchCarouselInterval  time.Duration
	PprofEnabled                bool
	PprofAddr                   string
	UptraceEnabled              bool
	UptraceDSN                  string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "scorefeed"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		BoardPollSchedule:          strings.TrimSpace(getEnv("BOARD_POLL_SCHEDULE", "@every 5m")),
		PprofAddr:                  strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.ReadTimeout, err = getEnvAsDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsDuration("APP_WRITE_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}

	upstream, err := readUpstreamFile()
	if err != nil {
		return Config{}, err
	}
	cfg.Endpoints = applyEndpointEnv(upstream.Endpoints)

	preferredDefault := "Apertura Colombia,Colombia"
	if len(upstream.PreferredLeagues) > 0 {
		preferredDefault = strings.Join(upstream.PreferredLeagues, ",")
	}
	cfg.TopMatchesPreferredLeagues = splitCSV(getEnv("TOP_MATCHES_PREFERRED_LEAGUES", preferredDefault))
	if len(cfg.TopMatchesPreferredLeagues) == 0 {
		return Config{}, fmt.Errorf("TOP_MATCHES_PREFERRED_LEAGUES cannot be empty")
	}

	if cfg.UpstreamTimeout, err = getEnvAsDuration("UPSTREAM_TIMEOUT", "20s"); err != nil {
		return Config{}, err
	}
	cfg.UpstreamRateLimitRPS, err = strconv.ParseFloat(getEnv("UPSTREAM_RATE_LIMIT_RPS", "4"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.UpstreamRateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("UPSTREAM_RATE_LIMIT_RPS must be > 0")
	}
	if cfg.UpstreamRateLimitBurst, err = getEnvAsPositiveInt("UPSTREAM_RATE_LIMIT_BURST", 2); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamCoalesceEnabled, err = getEnvAsBool("UPSTREAM_COALESCE_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamCircuitEnabled, err = getEnvAsBool("UPSTREAM_CIRCUIT_ENABLED", "true"); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamCircuitFailureCount, err = getEnvAsPositiveInt("UPSTREAM_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamCircuitOpenTimeout, err = getEnvAsDuration("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamCircuitHalfOpenMax, err = getEnvAsPositiveInt("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", 1); err != nil {
		return Config{}, err
	}

	if cfg.TopMatchesLimit, err = getEnvAsPositiveInt("TOP_MATCHES_LIMIT", 3); err != nil {
		return Config{}, err
	}
	if cfg.NewsCarouselSize, err = getEnvAsPositiveInt("NEWS_CAROUSEL_SIZE", 3); err != nil {
		return Config{}, err
	}
	if cfg.HomeMaxWorkers, err = getEnvAsPositiveInt("HOME_MAX_WORKERS", 7); err != nil {
		return Config{}, err
	}

	if _, err := cron.ParseStandard(cfg.BoardPollSchedule); err != nil {
		return Config{}, fmt.Errorf("parse BOARD_POLL_SCHEDULE: %w", err)
	}
	if cfg.BoardMatchCarouselInterval, err = getEnvAsDuration("BOARD_MATCH_CAROUSEL_INTERVAL", "6s"); err != nil {
		return Config{}, err
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveInt(key string, fallback int) (int, error) {
	out, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func getEnvAsBool(key, fallback string) (bool, error) {
	out, err := strconv.ParseBool(getEnv(key, fallback))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
