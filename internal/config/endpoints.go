package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Endpoints are the upstream URLs per endpoint family. Empty fields fall back
// to the scraper defaults.
type Endpoints struct {
	LeagueOdds  string `yaml:"league_odds"`
	Scorers     string `yaml:"scorers"`
	Standings   string `yaml:"standings"`
	Promotions  string `yaml:"promotions"`
	LeagueCard  string `yaml:"league_card"`
	News        string `yaml:"news"`
	TopMatches  string `yaml:"top_matches"`
	MatchDetail string `yaml:"match_detail"`
}

// upstreamFile is the UPSTREAM_ENDPOINTS_FILE document.
type upstreamFile struct {
	Endpoints        Endpoints `yaml:"endpoints"`
	PreferredLeagues []string  `yaml:"preferred_leagues"`
}

func readUpstreamFile() (upstreamFile, error) {
	path := strings.TrimSpace(os.Getenv("UPSTREAM_ENDPOINTS_FILE"))
	if path == "" {
		return upstreamFile{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return upstreamFile{}, fmt.Errorf("read UPSTREAM_ENDPOINTS_FILE: %w", err)
	}
	return parseUpstreamFile(raw)
}

func parseUpstreamFile(raw []byte) (upstreamFile, error) {
	var doc upstreamFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return upstreamFile{}, fmt.Errorf("parse UPSTREAM_ENDPOINTS_FILE: %w", err)
	}
	return doc, nil
}

// applyEndpointEnv lets the UPSTREAM_*_URL variables override individual
// families read from the file.
func applyEndpointEnv(out Endpoints) Endpoints {
	overrides := []struct {
		key   string
		value *string
	}{
		{"UPSTREAM_LEAGUE_ODDS_URL", &out.LeagueOdds},
		{"UPSTREAM_SCORERS_URL", &out.Scorers},
		{"UPSTREAM_STANDINGS_URL", &out.Standings},
		{"UPSTREAM_PROMOTIONS_URL", &out.Promotions},
		{"UPSTREAM_LEAGUE_CARD_URL", &out.LeagueCard},
		{"UPSTREAM_NEWS_URL", &out.News},
		{"UPSTREAM_TOP_MATCHES_URL", &out.TopMatches},
		{"UPSTREAM_MATCH_DETAIL_URL", &out.MatchDetail},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.key)); v != "" {
			*o.value = v
		}
	}
	return out
}
