package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"tooba/internal/catalog"
	"tooba/internal/config"
	"tooba/internal/logging"
)

// Server owns the HTTP listener, the catalog cache, and the single-instance
// lock. One Server corresponds to one library; the catalog is scanned on the
// first request and reused for the process lifetime.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	cache  *catalog.Cache

	lockPath string
	lock     *flock.Flock

	listener net.Listener
	server   *http.Server
}

// New constructs a server for the configured library. The logger may be nil.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server requires config")
	}
	scanner := catalog.NewScanner(cfg, logger)
	lockPath := filepath.Join(cfg.Paths.LogDir, "tooba.lock")
	srv := &Server{
		cfg:      cfg,
		logger:   logger,
		cache:    catalog.NewCache(scanner.Scan),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	srv.server = &http.Server{
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Start acquires the instance lock and begins serving. It returns once the
// listener is up; the server shuts down when ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another tooba instance is already running")
	}

	listener, err := net.Listen("tcp", s.cfg.Paths.Bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("server listening",
		slog.String("address", listener.Addr().String()),
		slog.String("library", s.cfg.Paths.LibraryDir))
	return nil
}

// Stop shuts the server down and releases the instance lock.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	if err := s.lock.Unlock(); err != nil {
		s.log().Warn("failed to release instance lock", logging.Error(err))
	}
}

// Addr reports the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String(logging.FieldComponent, "server"))
	}
	return logging.NewNop()
}
