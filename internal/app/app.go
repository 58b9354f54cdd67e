// Package app wires configuration into the pieces shared by both entry points.
package app

import (
	"net/http"
	"os"

	"github.com/ivanglie/coinboard/internal/catalog"
	"github.com/ivanglie/coinboard/internal/coinmarketcap"
	"github.com/ivanglie/coinboard/internal/config"
	"github.com/ivanglie/coinboard/internal/prices"
	"github.com/ivanglie/coinboard/pkg/log"
)

// Deps are the dependencies of both transports
type Deps struct {
	Catalog *catalog.Catalog
	Prices  *prices.Fetcher
}

// SetupLogging applies the configured log level and format
func SetupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr, cfg.LogFormat)
	log.SetLevel(cfg.LogLevel)

	if cfg.APIKey == "" {
		log.Warn(config.KeyAPIKey + " is not set, price requests will fail")
	}
}

// Build creates the catalog and the price fetcher
func Build(cfg *config.Config) *Deps {
	client := coinmarketcap.New(cfg.APIKey,
		coinmarketcap.WithBaseURL(cfg.BaseURL),
		coinmarketcap.WithLimit(cfg.Limit),
		coinmarketcap.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)

	c := catalog.Default()
	return &Deps{
		Catalog: c,
		Prices:  prices.NewFetcher(c, client),
	}
}
