// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"sync"
	"syscall"

	cnserrors "github.com/NVIDIA/craftgrid/pkg/errors"
	"github.com/NVIDIA/craftgrid/pkg/logging"
	"github.com/NVIDIA/craftgrid/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server represents the HTTP server
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// New creates a server from defaults and the given options.
func New(opts ...Option) *Server {
	s := &Server{
		config: parseConfig(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.config.Handlers == nil {
		s.config.Handlers = make(map[string]http.HandlerFunc)
	}
	if _, ok := s.config.Handlers["/"]; !ok {
		s.config.Handlers["/"] = s.handleRoot
	}

	s.rateLimiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)

	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(s.config.Address, strconv.Itoa(s.config.Port)),
		Handler:           s.setupRoutes(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		ErrorLog:          logging.NewLogLogger(slog.LevelError, false),
	}

	return s
}

// setupRoutes registers system endpoints unwrapped and API routes behind the
// middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for pattern, handler := range s.config.Handlers {
		mux.HandleFunc(pattern, s.withMiddleware(handler))
	}

	return mux
}

// routes returns the API route patterns in sorted order.
func (s *Server) routes() []string {
	return slices.Sorted(maps.Keys(s.config.Handlers))
}

// RootResponse lists what the server exposes.
type RootResponse struct {
	Service string   `json:"service" yaml:"service"`
	Version string   `json:"version" yaml:"version"`
	Routes  []string `json:"routes" yaml:"routes"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound,
			"no such route", false, map[string]any{"path": r.URL.Path})
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	routes := []string{"/health", "/metrics", "/ready"}
	for _, p := range s.routes() {
		if p != "/" {
			routes = append(routes, p)
		}
	}
	slices.Sort(routes)

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Service: s.config.Name,
		Version: s.config.Version,
		Routes:  routes,
	})
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	slog.Info("server listening",
		"name", s.config.Name,
		"version", s.config.Version,
		"address", ln.Addr().String(),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.setReady(true)

	select {
	case <-ctx.Done():
		return s.Shutdown(context.WithoutCancel(ctx))
	case err := <-errCh:
		s.setReady(false)
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}

// Shutdown marks the server not ready and drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout.String())
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Run starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) Run(ctx context.Context) error {
	slog.Debug("server config",
		"address", s.httpServer.Addr,
		"rateLimit", float64(s.config.RateLimit),
		"rateLimitBurst", s.config.RateLimitBurst,
		"maxRequestBytes", s.config.MaxRequestBytes,
		"readTimeout", s.config.ReadTimeout.String(),
		"writeTimeout", s.config.WriteTimeout.String(),
		"idleTimeout", s.config.IdleTimeout.String(),
		"shutdownTimeout", s.config.ShutdownTimeout.String(),
		"routes", s.routes(),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
