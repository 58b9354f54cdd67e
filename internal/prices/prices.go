// Package prices turns upstream listings into quotes for catalog symbols.
package prices

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivanglie/coinboard/internal/catalog"
	"github.com/ivanglie/coinboard/internal/coinmarketcap"
	"github.com/ivanglie/coinboard/pkg/log"
)

// FailureMessage is the only error text clients ever see for a failed fetch.
const FailureMessage = "Failed to fetch prices"

// ErrFetchFailed is returned by Fetch for every upstream failure.
var ErrFetchFailed = errors.New("fetch failed")

// Quote is the price of a symbol in USD
type Quote struct {
	Price            float64 `json:"price"`
	PercentChange24h float64 `json:"percentChange24h"`
}

// ListingsSource provides upstream listings.
type ListingsSource interface {
	LatestListings(ctx context.Context) ([]coinmarketcap.Listing, error)
}

// QuoteFetcher is what both transports need from the price side.
type QuoteFetcher interface {
	Fetch(ctx context.Context) (map[string]Quote, error)
}

// Fetcher fetches quotes for the symbols of a catalog.
type Fetcher struct {
	catalog *catalog.Catalog
	source  ListingsSource
}

// NewFetcher creates a fetcher over source restricted to c.
func NewFetcher(c *catalog.Catalog, source ListingsSource) *Fetcher {
	return &Fetcher{catalog: c, source: source}
}

// Fetch makes one upstream call and returns quotes keyed by symbol.
// On any failure it returns nil and an error wrapping ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context) (map[string]Quote, error) {
	listings, err := f.source.LatestListings(ctx)
	if err != nil {
		log.Err(err, "Error fetching prices")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	quotes, err := Reshape(f.catalog, listings)
	if err != nil {
		log.Err(err, "Error reshaping prices")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	log.Debug(fmt.Sprintf("Got %d quotes from %d listings", len(quotes), len(listings)))

	return quotes, nil
}

// Reshape keeps the listings whose symbol is in c. The last listing wins
// when a symbol repeats. A catalog listing without a USD quote fails the
// whole reshape with an error wrapping coinmarketcap.ErrDecode.
func Reshape(c *catalog.Catalog, listings []coinmarketcap.Listing) (map[string]Quote, error) {
	quotes := make(map[string]Quote, c.Len())
	for _, l := range listings {
		if !c.Contains(l.Symbol) {
			continue
		}
		usd, ok := l.USD()
		if !ok {
			return nil, fmt.Errorf("%w: %s has no %s quote", coinmarketcap.ErrDecode, l.Symbol, coinmarketcap.USD)
		}
		quotes[l.Symbol] = Quote{
			Price:            usd.Price,
			PercentChange24h: usd.PercentChange24h,
		}
	}
	return quotes, nil
}
