// Package server runs the HTTP listener: it binds the socket, serves
// connections and drains them on shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultAddr is the fixed loopback address the service listens on.
const DefaultAddr = "127.0.0.1:8080"

// Config holds the listener parameters.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration // upper bound for draining in-flight requests
}

// DefaultConfig returns the only configuration the service runs with.
func DefaultConfig() Config {
	return Config{
		Addr:            DefaultAddr,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Server wraps http.Server with bind and shutdown handling.
type Server struct {
	cfg Config
	srv *http.Server
	log logrus.FieldLogger
}

// New creates a Server that dispatches every request to handler.
// Read and write timeouts are left at net/http defaults.
// The listener is always bound by Listen, so http.Server.Addr stays empty.
func New(cfg Config, handler http.Handler, log logrus.FieldLogger) *Server {
	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Handler: handler,
		},
		log: log,
	}
}

// Listen binds a TCP listener to addr.
// Any failure is returned as *BindError.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	return ln, nil
}

// Run binds the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := Listen(s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// server down gracefully. A cancelled run returns nil, also when the drain
// times out and the remaining connections are closed forcibly.
// Serve takes ownership of ln and must be called once per Server.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	addr := ln.Addr().String()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.WithField("addr", addr).Infof("🚀 Empty OK Service started on %s", addr)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.WithField("addr", addr).Info("⏳ Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		err := s.srv.Shutdown(shutdownCtx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown: %w", err)
		}

		s.log.WithError(err).WithField("addr", addr).Warn("⚠️ Drain timed out, closing remaining connections")
		if err := s.srv.Close(); err != nil {
			return fmt.Errorf("close: %w", err)
		}
		return nil
	})

	return g.Wait()
}
