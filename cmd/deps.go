package main

import (
	"context"
	"fmt"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/logger"
	"pubapis/pkg/storage/postgres"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// apiClient builds the shared HTTP client of the public API clients. mp may
// be nil when no metrics are served.
func (a *app) apiClient(mp metric.MeterProvider) (*apiclient.Client, error) {
	api, err := apiclient.New(apiclient.Options{
		UserAgent:     a.cfg.HTTP.UserAgent,
		Timeout:       a.cfg.HTTP.Timeout,
		MeterProvider: mp,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create api client: %w", err)
	}

	return api, nil
}

// getPostgres opens the price history database and pings it, so an
// unreachable server fails the command before any API call is made. The
// returned func closes the pool.
func (a *app) getPostgres(ctx context.Context) (*postgres.PgSQL, func(), error) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           a.cfg.Database.Username,
		Password:           a.cfg.Database.Password,
		Host:               a.cfg.Database.Host,
		Port:               a.cfg.Database.Port,
		Database:           a.cfg.Database.DatabaseName,
		ConnMaxLifetime:    a.cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    a.cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: a.cfg.Database.MaxOpenConnections,
		MaxIdleConnections: a.cfg.Database.MaxIdleConnections,
		SslMode:            a.cfg.Database.SslMode,
		ConnectTimeout:     a.cfg.Database.ConnectTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create postgres storage: %w", err)
	}

	pingCtx, cancel := ctx, context.CancelFunc(func() {})
	if a.cfg.Database.ConnectTimeout > 0 {
		pingCtx, cancel = context.WithTimeout(ctx, a.cfg.Database.ConnectTimeout)
	}
	defer cancel()
	if err := pgsql.Ping(pingCtx); err != nil {
		_ = pgsql.Close()

		return nil, nil, err
	}
	logger.Debug(ctx, "connected to price history database",
		zap.String("host", a.cfg.Database.Host), zap.String("database", a.cfg.Database.DatabaseName))

	return pgsql, func() {
		logger.Debug(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}, nil
}
