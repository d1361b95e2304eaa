// Package searchapi exposes the search client over a JSON HTTP API.
package searchapi

import (
	"context"
	"log"
	"net/http"

	"github.com/Code-Monger/SearchSpinneret/pkg/stats"
	"github.com/Code-Monger/SearchSpinneret/pkg/websearch"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// Server routes HTTP requests to the search client
type Server struct {
	client *websearch.Client
	router *httprouter.Router
}

type contextKey string

const requestIDKey contextKey = "request_id"

// NewServer creates a Server backed by the given client. A nil client uses
// the environment configuration.
func NewServer(client *websearch.Client) *Server {
	if client == nil {
		client = websearch.NewClient(nil)
	}

	s := &Server{
		client: client,
		router: httprouter.New(),
	}

	s.router.GET("/search", stats.Wrap("search", s.handleSearch))
	s.router.GET("/answers", stats.Wrap("answers", s.handleAnswers))
	s.router.GET("/images", stats.Wrap("images", s.handleImages))
	s.router.GET("/videos", stats.Wrap("videos", s.handleVideos))
	s.router.GET("/api", stats.Wrap("api", s.handleAPI))
	s.router.GET("/stats", s.handleStats)
	s.router.GET("/health", s.handleHealth)

	// Preflight requests get an empty 204, CORS headers come from the
	// outer middleware
	s.router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error": "not found",
			"endpoints": []string{
				"/search", "/answers", "/images", "/videos", "/api", "/stats", "/health",
			},
		})
	})

	return s
}

// Handler returns the server's root handler with middleware applied
func (s *Server) Handler() http.Handler {
	return withRequestID(withCORS(s.router))
}

// ListenAndServe starts the HTTP server on addr
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("[SearchAPI] Listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// withCORS adds permissive CORS headers to every response
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// withRequestID assigns each request an ID and logs its arrival
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("[SearchAPI] [%s] %s %s", requestID, r.Method, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))
	})
}

// requestIDFrom returns the request's assigned ID, if any
func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
