package coinmarketcap

import (
	"errors"
	"fmt"
)

const (
	// DefaultBaseURL is the CoinMarketCap Pro API root
	DefaultBaseURL = "https://pro-api.coinmarketcap.com"
	// ListingsPath is the latest listings endpoint
	ListingsPath = "v1/cryptocurrency/listings/latest"
	// APIKeyHeader carries the API key on every request
	APIKeyHeader = "X-CMC_PRO_API_KEY"
	// USD is the quote currency the listings are converted to
	USD = "USD"
)

var (
	// ErrTransport means the request never produced a response
	ErrTransport = errors.New("coinmarketcap transport error")
	// ErrStatus means the API answered with an error status
	ErrStatus = errors.New("coinmarketcap status error")
	// ErrDecode means the response body could not be understood
	ErrDecode = errors.New("coinmarketcap decode error")
)

// Status is the envelope status block of every API response
type Status struct {
	Timestamp    string `json:"timestamp"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Elapsed      int    `json:"elapsed"`
	CreditCount  int    `json:"credit_count"`
}

// ListingsResponse represents listings/latest API response
type ListingsResponse struct {
	Status Status    `json:"status"`
	Data   []Listing `json:"data"`
}

// Listing represents a single cryptocurrency record
type Listing struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Symbol      string            `json:"symbol"`
	Slug        string            `json:"slug"`
	CMCRank     int               `json:"cmc_rank"`
	LastUpdated string            `json:"last_updated"`
	Quote       map[string]*Quote `json:"quote"`
}

// Quote represents market data of a listing in one currency
type Quote struct {
	Price            float64 `json:"price"`
	Volume24h        float64 `json:"volume_24h"`
	PercentChange1h  float64 `json:"percent_change_1h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	PercentChange7d  float64 `json:"percent_change_7d"`
	MarketCap        float64 `json:"market_cap"`
	LastUpdated      string  `json:"last_updated"`
}

// USD returns the USD quote of the listing, if present
func (l Listing) USD() (*Quote, bool) {
	q, ok := l.Quote[USD]
	return q, ok && q != nil
}

// StatusError represents an error answer of the API
type StatusError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("coinmarketcap error: status=%d, code=%d", e.HTTPStatus, e.Code)
	}
	return fmt.Sprintf("coinmarketcap error: status=%d, code=%d, msg=%s", e.HTTPStatus, e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}
