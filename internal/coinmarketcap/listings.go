package coinmarketcap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ivanglie/coinboard/pkg/log"
)

// maxBodySize caps the upstream body; a full listings page is well below it.
const maxBodySize = 8 << 20

// Client is a client for the CoinMarketCap Pro API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// apiKey authenticates every request.
	apiKey string
	// limit caps the number of listings, 0 keeps the API default.
	limit int
	// httpClient performs the requests.
	httpClient HTTPClient
}

// Option is a configuration option for the client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLimit sets the number of listings requested.
func WithLimit(limit int) Option {
	return func(c *Client) {
		c.limit = limit
	}
}

// New creates a new CoinMarketCap API client.
func New(apiKey string, options ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// ListingsURL returns complete URL for listings request
func (c *Client) ListingsURL() string {
	u := fmt.Sprintf("%s/%s", c.baseURL, ListingsPath)
	if c.limit > 0 {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(c.limit))
		q.Set("convert", USD)
		u += "?" + q.Encode()
	}
	return u
}

// LatestListings fetches the latest listings.
// Errors wrap ErrTransport, ErrStatus or ErrDecode.
func (c *Client) LatestListings(ctx context.Context) ([]Listing, error) {
	u := c.ListingsURL()
	log.Info(fmt.Sprintf("Requesting listings: %s", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp ListingsResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, &StatusError{HTTPStatus: resp.StatusCode}
		}
		return nil, &StatusError{
			HTTPStatus: resp.StatusCode,
			Code:       errResp.Status.ErrorCode,
			Message:    errResp.Status.ErrorMessage,
		}
	}

	var listings ListingsResponse
	if err := json.Unmarshal(body, &listings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if listings.Status.ErrorCode != 0 {
		return nil, &StatusError{
			HTTPStatus: resp.StatusCode,
			Code:       listings.Status.ErrorCode,
			Message:    listings.Status.ErrorMessage,
		}
	}

	if listings.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrDecode)
	}

	return listings.Data, nil
}
