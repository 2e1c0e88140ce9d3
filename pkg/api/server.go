// Package api exposes the resolution pipeline over HTTP: a search endpoint
// (GET or POST, same semantics), catalog metadata endpoints and a health
// check. Responses are JSON; store failures surface as a generic internal
// error without leaking detail.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/placera/placera/pkg/log"
	"github.com/placera/placera/pkg/search"
	"github.com/placera/placera/pkg/storage"
)

// DefaultRequestTimeout bounds a single search request when the configuration
// doesn't specify one.
const DefaultRequestTimeout = 10 * time.Second

// Server holds the HTTP handlers and their dependencies. The resolver can be
// swapped at runtime when the configuration (and with it the lexicon) is
// reloaded.
type Server struct {
	mu       sync.RWMutex
	resolver *search.Resolver

	store    *storage.Store
	timeout  time.Duration
	pageSize int
	logger   *log.Logger
}

// NewServer creates a Server. A non-positive timeout falls back to
// DefaultRequestTimeout, a non-positive pageSize to search.DefaultPageSize.
func NewServer(resolver *search.Resolver, store *storage.Store, timeout time.Duration, pageSize int) *Server {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if pageSize <= 0 {
		pageSize = search.DefaultPageSize
	}
	return &Server{
		resolver: resolver,
		store:    store,
		timeout:  timeout,
		pageSize: pageSize,
		logger:   log.ForComponent("api"),
	}
}

// UpdateResolver swaps the resolver used by subsequent requests. In-flight
// requests keep the resolver they started with.
func (s *Server) UpdateResolver(resolver *search.Resolver) {
	s.mu.Lock()
	s.resolver = resolver
	s.mu.Unlock()
}

func (s *Server) currentResolver() *search.Resolver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Errorf("encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, error, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}
	s.writeJSON(w, status, response)
}

// CorsMiddleware allows cross-origin requests against the API.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware tags each request with a UUID, echoes it in the
// X-Request-ID header and logs the request outcome against it.
func RequestIDMiddleware(next http.Handler) http.Handler {
	logger := log.ForComponent("api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debugf("%s %s %s (%v)", id, r.Method, r.URL.Path, time.Since(start))
	})
}
