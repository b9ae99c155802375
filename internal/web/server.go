// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"sunder/internal/config"
	"sunder/internal/observability"
	"sunder/internal/vault"
)

// limiterTTL is how long an idle client's rate bucket is remembered.
const limiterTTL = 10 * time.Minute

// Server exposes per-session vaults over HTTP.
type Server struct {
	cfg      config.ServerConfig
	observer *observability.StandardObserver
	sessions *sessionStore
	limiter  *clientLimiter
	trusted  []netip.Prefix
	router   chi.Router
	server   *http.Server
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a server. Every new session's vault is built from
// options, so config defaults and rules apply to each one.
func NewServer(cfg config.ServerConfig, observer *observability.StandardObserver, options ...vault.Option) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = config.Default().Server.MaxBodyBytes
	}

	sessionOptions := append([]vault.Option{vault.WithObserver(observer)}, options...)
	s := &Server{
		cfg:      cfg,
		observer: observer,
		sessions: newSessionStore(sessionOptions),
	}
	trusted, err := cfg.TrustedPrefixes()
	if err != nil {
		observer.Logger().Warn("ignoring server.trusted_proxies", "error", err)
	}
	s.trusted = trusted
	if cfg.RateLimit > 0 {
		s.limiter = newClientLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst, limiterTTL)
	}
	s.setupRoutes()
	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.rateLimit)

	r.Get("/health", s.handleHealth)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", s.handleDeleteSession)
			r.Post("/protect", s.handleProtect)
			r.Post("/reveal", s.handleReveal)
			r.Get("/config", s.handleGetConfig)
			r.Put("/config", s.handlePutConfig)
			r.Get("/rules", s.handleListRules)
			r.Post("/rules", s.handleAddRule)
			r.Delete("/rules", s.handleRemoveRule)
			r.Get("/analytics", s.handleAnalytics)
			r.Get("/vault", s.handleIdentityMap)
			r.Delete("/vault", s.handleClearVault)
		})
	})
	s.router = r
}

// createSecureServer creates an HTTP server with security timeouts
func (s *Server) createSecureServer(addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: s.router,
		// Timeout for reading request headers (prevents slow header attacks)
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// and clears every session.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w\n"+
			"Troubleshooting: choose another address with --addr or server.addr in the config file", s.cfg.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.server = s.createSecureServer(listener.Addr().String())
	s.observer.Logger().Info("session API listening", "addr", listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		s.sessions.closeAll()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.server.Shutdown(shutdownCtx)
		s.sessions.closeAll()
		s.observer.Logger().Info("session API stopped")
		return err
	}
}

// rateLimit rejects clients that exceed the configured request rate.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.allow(clientIP(r, s.trusted)) {
			s.sendErrorWithStatus(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) sendJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.observer.Logger().Warn("failed to write response", "error", err)
	}
}

// sendError sends a 400 error response
func (s *Server) sendError(w http.ResponseWriter, message string) {
	s.sendErrorWithStatus(w, message, http.StatusBadRequest)
}

// sendErrorWithStatus sends an error response with a specific HTTP status code
func (s *Server) sendErrorWithStatus(w http.ResponseWriter, message string, statusCode int) {
	s.sendJSON(w, statusCode, ErrorResponse{Error: message})
}
