// Package api configures and exposes the HTTP server that publishes the
// Prometheus metrics, health and profiling endpoints of the long running
// commands.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"pubapis/internal/config"
	"pubapis/pkg/controller"
	"pubapis/pkg/logger"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HealthzPath answers liveness probes.
const HealthzPath = "/healthz"

// Options holds configuration for the metrics server.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":9090".
	Addr string
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
}

// NewOptions maps the metrics section of config.Config to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Metrics.Addr,
		MetricsPath:       cfg.Metrics.Path,
		ReadHeaderTimeout: cfg.Metrics.ReadHeaderTimeout,
	}
}

// NewServer wires up and returns a configured *http.Server. It serves the
// metrics gathered by g at MetricsPath, HealthzPath and the pprof endpoints,
// behind the request logging middleware.
func NewServer(g prometheus.Gatherer, opts Options) *http.Server {
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(g, promhttp.HandlerOpts{
		ErrorLog: zap.NewStdLog(logger.Get(context.Background())),
	}))
	mux.HandleFunc(HealthzPath, controller.Healthz)
	controller.RegisterPprof(mux)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           controller.WithLogger(mux),
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}
}

// Start listens on the server address and serves in the background. Listen
// errors are returned directly; the returned stop function shuts the server
// down gracefully within its context.
func Start(ctx context.Context, server *http.Server) (net.Addr, func(ctx context.Context), error) {
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not listen on %q: %w", server.Addr, err)
	}

	go func() {
		logger.Info(ctx, "starting metrics server...", zap.Stringer("addr", ln.Addr()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "metrics server stopped", zap.Error(err))
		}
	}()

	return ln.Addr(), func(ctx context.Context) {
		logger.Info(ctx, "stopping metrics server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop metrics server", zap.Error(err))
		}
	}, nil
}
