package searchapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Code-Monger/SearchSpinneret/pkg/websearch"
)

// ValidationError reports a request that failed parameter validation
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// errorResponse is the JSON body returned for every failed request
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[SearchAPI] Failed to encode response: %v", err)
	}
}

// writeError maps an error onto an HTTP status and writes the JSON body.
// Validation failures become 400, upstream engine failures become 502,
// everything else is an internal error.
func writeError(w http.ResponseWriter, requestID string, err error) {
	status := http.StatusInternalServerError

	var validationErr *ValidationError
	var upstreamErr *websearch.UpstreamError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &upstreamErr):
		status = http.StatusBadGateway
	}

	log.Printf("[SearchAPI] [%s] Request failed with status %d: %v", requestID, status, err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
