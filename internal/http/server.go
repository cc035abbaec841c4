// Package http exposes the ledger core as a JSON API. Handlers return
// plain structured values; rendering them is the caller's concern.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"pft/internal/accounts"
	"pft/internal/cache"
	"pft/internal/ledger"
	"pft/internal/session"
)

type Server struct {
	http.Server

	directory *accounts.Directory
	sessions  *session.Manager
	ledger    *ledger.Ledger

	rateLimiter  *rateLimiter
	summaryCache *cache.LRUCache[summaryResponse]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, directory *accounts.Directory, sessions *session.Manager, led *ledger.Ledger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:           addr,
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16,
		},
		directory:        directory,
		sessions:         sessions,
		ledger:           led,
		rateLimiter:      newRateLimiter(),
		summaryCache:     cache.NewLRUCache[summaryResponse](256, 5*time.Minute),
		stopCacheCleanup: make(chan struct{}),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/register", s.protect(s.handleRegister))
	mux.HandleFunc("/api/signin", s.protect(s.handleSignIn))
	mux.HandleFunc("/api/signout", s.protect(s.handleSignOut))
	mux.HandleFunc("/api/session", s.protect(s.handleSession))
	mux.HandleFunc("/api/expenses", s.protect(s.handleExpenses))
	mux.HandleFunc("/api/summary", s.protect(s.handleSummary))

	go s.startCacheCleanup()

	return s
}

// protect chains the standard middleware: security headers, per-IP rate
// limiting, request tracing.
func (s *Server) protect(next http.HandlerFunc) http.HandlerFunc {
	return s.withSecurityHeaders(s.withRateLimit(s.withTrace(next)))
}

func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Cache-Control", "no-store")
		next(w, r)
	}
}

func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := extractClientIP(r)
		if !s.rateLimiter.allow(ip) {
			slog.WarnContext(r.Context(), "Rate limit exceeded",
				"client_ip", ip, "path", r.URL.Path, "component", "http")
			respondError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next(w, r)
	}
}

func (s *Server) withTrace(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		next(w, r)

		slog.InfoContext(ctx, "HTTP request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"client_ip", extractClientIP(r),
			"duration_ms", time.Since(start).Milliseconds(),
			"component", "http")
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// startCacheCleanup evicts expired summary entries periodically.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.summaryCache.CleanExpired(); cleaned > 0 {
				slog.Debug("Summary cache cleanup", "entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown stops the server together with its cleanup goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		close(s.stopCacheCleanup)
		s.rateLimiter.stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}
