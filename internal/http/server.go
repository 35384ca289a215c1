// Package http exposes the JSON API consumed by the SPA frontend.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/cache"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/ledger"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/state"
)

type Server struct {
	http.Server
	app         *state.App
	rateLimiter *rateLimiter

	// Month analytics are recomputed from the full expanded list, so cache
	// them and purge on every write.
	monthCache    *cache.LRUCache[ledger.MonthSummary]
	categoryCache *cache.LRUCache[[]ledger.CategoryTotal]
	cacheManager  *cache.Manager

	shutdownOnce sync.Once
}

// NewServer wires routes, middleware and caches around the state controller.
func NewServer(addr string, app *state.App) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		app:           app,
		rateLimiter:   newRateLimiter(),
		monthCache:    cache.NewLRUCache[ledger.MonthSummary](100, 5*time.Minute),
		categoryCache: cache.NewLRUCache[[]ledger.CategoryTotal](100, 5*time.Minute),
		cacheManager:  cache.NewManager(),
	}
	s.cacheManager.Register(s.monthCache)
	s.cacheManager.Register(s.categoryCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("GET /auth", s.with(s.handleCurrentUser))
	mux.HandleFunc("POST /auth", s.with(s.handleAuth))
	mux.HandleFunc("DELETE /auth", s.with(s.handleLogout))
	mux.HandleFunc("PUT /user/goal", s.with(s.handleUpdateGoal))
	mux.HandleFunc("PUT /user", s.with(s.handleUpdateUser))

	mux.HandleFunc("GET /transactions", s.with(s.handleListTransactions))
	mux.HandleFunc("POST /transactions", s.with(s.handleCreateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}", s.with(s.handleDeleteTransaction))
	mux.HandleFunc("GET /transactions/summary", s.with(s.handleSummary))

	mux.HandleFunc("GET /cards", s.with(s.handleListCards))
	mux.HandleFunc("POST /cards", s.with(s.handleCreateCard))
	mux.HandleFunc("DELETE /cards/{id}", s.with(s.handleDeleteCard))

	mux.HandleFunc("GET /analytics/month", s.with(s.handleMonthAnalytics))
	mux.HandleFunc("GET /analytics/year", s.with(s.handleYearAnalytics))
	mux.HandleFunc("GET /analytics/categories", s.with(s.handleCategoryAnalytics))
	mux.HandleFunc("GET /analytics/goal", s.with(s.handleGoalProgress))
	mux.HandleFunc("GET /comparison", s.with(s.handleComparison))

	mux.HandleFunc("GET /projects", s.with(s.handleListProjects))
	mux.HandleFunc("POST /projects", s.with(s.handleCreateProject))
	mux.HandleFunc("DELETE /projects/{id}", s.with(s.handleDeleteProject))
	mux.HandleFunc("POST /projects/{id}/suppliers", s.with(s.handleCreateSupplier))
	mux.HandleFunc("DELETE /projects/{id}/suppliers/{sid}", s.with(s.handleDeleteSupplier))
	mux.HandleFunc("POST /projects/{id}/suppliers/{sid}/items", s.with(s.handleCreateQuoteItem))
	mux.HandleFunc("DELETE /projects/{id}/suppliers/{sid}/items/{iid}", s.with(s.handleDeleteQuoteItem))
	mux.HandleFunc("GET /projects/{id}/ranking", s.with(s.handleRanking))
	mux.HandleFunc("GET /projects/{id}/analysis", s.with(s.handleAnalysis))

	mux.HandleFunc("GET /notifications", s.with(s.handleNotifications))

	return s
}

// with adds request-id tracing, request logging, security headers and rate
// limiting on mutating methods.
func (s *Server) with(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		if mutating(r.Method) && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

type requestIDKey struct{}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		return true
	}
	return false
}

// invalidateAnalytics drops cached aggregates after any write. Installment
// expansion spreads a single write across many months, so purge everything
// rather than guessing which keys changed.
func (s *Server) invalidateAnalytics() {
	s.monthCache.Purge()
	s.categoryCache.Purge()
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// Shutdown stops the HTTP server and the cache cleanup goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
