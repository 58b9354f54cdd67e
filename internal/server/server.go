package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ivanglie/coinboard/internal/catalog"
	"github.com/ivanglie/coinboard/internal/prices"
	"github.com/ivanglie/coinboard/pkg/log"
)

// httpServer is the part of *http.Server that Server drives.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// Server serves the catalog and price endpoints
type Server struct {
	catalog  *catalog.Catalog
	prices   prices.QuoteFetcher
	listener httpServer
}

// New creates a new server instance listening on addr
func New(addr string, c *catalog.Catalog, f prices.QuoteFetcher) *Server {
	s := &Server{
		catalog: c,
		prices:  f,
	}

	s.listener = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Routes returns the request handler with all middleware applied
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cryptocurrencies", s.HandleCryptocurrencies)
	mux.HandleFunc("/api/prices", s.HandlePrices)
	mux.HandleFunc("/healthz", s.HandleHealth)

	return chain(mux,
		recoverPanic,
		withGzip,
		withSecurityHeaders,
		withCORS,
		withAccessLog,
	)
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	if err := s.listener.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.listener.Shutdown(ctx)
}

// HandleCryptocurrencies handles /api/cryptocurrencies requests
func (s *Server) HandleCryptocurrencies(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	writeJSON(w, http.StatusOK, s.catalog.All())
}

// HandlePrices handles /api/prices requests
func (s *Server) HandlePrices(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	quotes, err := s.prices.Fetch(r.Context())
	if err != nil {
		log.Error(fmt.Sprintf("Prices request failed: %v", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: prices.FailureMessage})
		return
	}

	writeJSON(w, http.StatusOK, quotes)
}

// HandleHealth handles /healthz requests
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// allowRead serves GET and HEAD. OPTIONS that is not a CORS preflight gets
// 204, every other method 405.
func allowRead(w http.ResponseWriter, r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		return true
	case http.MethodOptions:
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", allowedMethods)
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	}
	return false
}
