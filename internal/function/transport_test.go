package function_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanglie/coinboard/internal/catalog"
	"github.com/ivanglie/coinboard/internal/function"
	"github.com/ivanglie/coinboard/internal/prices"
	"github.com/ivanglie/coinboard/internal/server"
)

type stubFetcher struct {
	quotes map[string]prices.Quote
	err    error
}

func (f stubFetcher) Fetch(context.Context) (map[string]prices.Quote, error) {
	return f.quotes, f.err
}

// TestTransports_SameResponses sends identical requests to the HTTP server and
// the function handler and expects the same status, CORS origin and body.
func TestTransports_SameResponses(t *testing.T) {
	c := catalog.Default()

	fetchers := map[string]prices.QuoteFetcher{
		"upstream ok": stubFetcher{quotes: map[string]prices.Quote{
			"BTC": {Price: 65000.5, PercentChange24h: 2.3},
		}},
		"upstream down":  stubFetcher{err: prices.ErrFetchFailed},
		"upstream other": stubFetcher{err: errors.New("boom")},
	}
	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodOptions,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
	}
	paths := []string{"/api/cryptocurrencies", "/api/prices"}

	for name, f := range fetchers {
		routes := server.New(":0", c, f).Routes()
		h := function.New(c, f)

		for _, method := range methods {
			for _, path := range paths {
				t.Run(name+" "+method+" "+path, func(t *testing.T) {
					w := httptest.NewRecorder()
					routes.ServeHTTP(w, httptest.NewRequest(method, path, nil))

					resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
						HTTPMethod: method,
						Path:       path,
					})
					require.NoError(t, err)

					assert.Equal(t, w.Code, resp.StatusCode)
					assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
					assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
					assert.Equal(t, w.Header().Get("Allow"), resp.Headers["Allow"])

					switch {
					case w.Code == http.StatusNoContent:
						assert.Empty(t, w.Body.String())
						assert.Empty(t, resp.Body)
					case method == http.MethodGet || w.Code >= http.StatusBadRequest:
						assert.JSONEq(t, w.Body.String(), resp.Body)
					}
				})
			}
		}
	}
}
