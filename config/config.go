// Package config loads runtime configuration from the environment.
// A .env file in the working directory is honored when present; every
// setting has a default except the API credential, whose absence simply
// disables official land-price lookups.
package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings.
type Config struct {
	// ReinfolibAPIKey gates lookups against the official land-price API.
	// Empty means the API source is skipped, never an error.
	ReinfolibAPIKey string `env:"REINFOLIB_API_KEY"`

	// LandPriceYear is the survey year queried from the API.
	LandPriceYear string `env:"LANDPRICE_YEAR" envDefault:"2023"`

	// OutputDir is the root of the prefecture/city/date output tree.
	OutputDir string `env:"OUTPUT_DIR" envDefault:"data"`

	// RosenkaCSV points at the static reference price table.
	RosenkaCSV string `env:"ROSENKA_CSV" envDefault:"data/rosenka/rosenka_data.csv"`

	// SelectorProfile optionally overrides the compiled-in selectors.
	SelectorProfile string `env:"SELECTOR_PROFILE"`

	// FetchTimeoutSeconds bounds each page fetch.
	FetchTimeoutSeconds int `env:"FETCH_TIMEOUT" envDefault:"30"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// IssueBody carries the GitHub issue text URLs are extracted from
	// when none are passed on the command line.
	IssueBody string `env:"ISSUE_BODY"`

	// GithubOutput is the GitHub Actions output file, when running in CI.
	GithubOutput string `env:"GITHUB_OUTPUT"`
}

// Load reads .env (if any) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
