// Package function serves the catalog and price endpoints as a single
// serverless function invoked once per request.
package function

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/ivanglie/coinboard/internal/catalog"
	"github.com/ivanglie/coinboard/internal/prices"
	"github.com/ivanglie/coinboard/pkg/log"
)

const (
	cryptocurrenciesRoute = "/cryptocurrencies"
	allowedMethods        = "GET,HEAD,OPTIONS"
)

// Handler handles function invocations
type Handler struct {
	catalog *catalog.Catalog
	prices  prices.QuoteFetcher
}

// New creates a new handler
func New(c *catalog.Catalog, f prices.QuoteFetcher) *Handler {
	return &Handler{catalog: c, prices: f}
}

// Handle routes by path: any path containing /cryptocurrencies returns the
// catalog, every other path returns prices. Failures are encoded in the
// response, the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch req.HTTPMethod {
	case "", http.MethodGet, http.MethodHead:
	case http.MethodOptions:
		return preflight(), nil
	default:
		resp := respond(http.StatusMethodNotAllowed, errorBody("Method not allowed"))
		resp.Headers["Allow"] = allowedMethods
		return resp, nil
	}

	if strings.Contains(req.Path, cryptocurrenciesRoute) {
		return respondJSON(http.StatusOK, h.catalog.All()), nil
	}

	quotes, err := h.prices.Fetch(ctx)
	if err != nil {
		log.Error(fmt.Sprintf("Prices invocation failed: %v", err))
		return respond(http.StatusInternalServerError, errorBody(prices.FailureMessage)), nil
	}

	return respondJSON(http.StatusOK, quotes), nil
}

func headers() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

func preflight() events.APIGatewayProxyResponse {
	hdr := headers()
	hdr["Access-Control-Allow-Methods"] = allowedMethods
	hdr["Access-Control-Allow-Headers"] = "*"
	return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent, Headers: hdr}
}

func respond(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers(),
		Body:       body,
	}
}

func respondJSON(status int, v any) events.APIGatewayProxyResponse {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error(fmt.Sprintf("Error encoding response: %v", err))
		return respond(http.StatusInternalServerError, errorBody("Internal server error"))
	}
	return respond(status, string(b))
}

func errorBody(msg string) string {
	b, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{msg})
	return string(b)
}
