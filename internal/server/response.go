package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ivanglie/coinboard/pkg/log"
)

// ErrorResponse represents the body of a failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Error(fmt.Sprintf("Error writing response: %v", err))
	}
}
