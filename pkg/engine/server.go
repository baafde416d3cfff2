package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/imitatus/imitatus/pkg/config"
	"github.com/imitatus/imitatus/pkg/logging"
	"github.com/imitatus/imitatus/pkg/store"
)

// shutdownTimeout bounds how long Stop waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Server is the mock API server: one HTTP listener over one store.
type Server struct {
	cfg        *config.ServerConfig
	store      *store.Store
	handler    *Handler
	httpServer *http.Server
	listener   net.Listener
	log        *slog.Logger
	mu         sync.RWMutex
	running    bool
	startTime  time.Time
}

// ServerOption is a functional option for configuring a Server.
type ServerOption func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithStore supplies an externally constructed store. Tests use this to
// inspect server state directly; by default each server gets its own store.
func WithStore(st *store.Store) ServerOption {
	return func(s *Server) {
		s.store = st
	}
}

// NewServer creates a new Server with the given configuration. A nil
// configuration selects the defaults.
func NewServer(cfg *config.ServerConfig, opts ...ServerOption) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.ApplyDefaults()

	s := &Server{
		cfg: cfg,
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = store.New(cfg.MaxLogEntries)
	}
	s.handler = NewHandler(s.store, cfg, s.log)
	s.seedItems()
	return s
}

// seedItems loads configured seed objects into the item store, generating
// IDs and creation timestamps the same way POST /api/items does.
func (s *Server) seedItems() {
	for _, data := range s.cfg.SeedItems {
		id := uuid.NewString()
		item := make(store.Item, len(data)+2)
		for k, v := range data {
			item[k] = v
		}
		item["id"] = id
		item["created_at"] = time.Now()
		s.store.Items.Set(id, item)
	}
}

// Start binds the listener and begins serving. Bind failures are returned
// synchronously; serve errors after startup are logged.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server error", "error", err)
		}
	}()

	s.running = true
	s.startTime = time.Now()
	s.log.Info("mock server started", "addr", listener.Addr().String())
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.running = false
	s.log.Info("mock server stopped")
	if err != nil {
		return fmt.Errorf("HTTP shutdown: %w", err)
	}
	return nil
}

// Addr returns the bound listen address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// IsRunning returns whether the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Uptime returns the server uptime in seconds.
func (s *Server) Uptime() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return 0
	}
	return int(time.Since(s.startTime).Seconds())
}

// Handler returns the request handler, for serving through external muxes
// and for httptest-driven tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Store returns the server's store.
func (s *Server) Store() *store.Store {
	return s.store
}

// Config returns the server configuration.
func (s *Server) Config() *config.ServerConfig {
	return s.cfg
}
