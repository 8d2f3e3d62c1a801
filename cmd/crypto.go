package main

import (
	"context"
	"pubapis/internal/api"
	"pubapis/internal/cryptotracker"
	"pubapis/pkg/crypto/coingecko"
	"pubapis/pkg/logger"
	"pubapis/pkg/metrics"
	"pubapis/pkg/storage"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// trackerOptions maps the crypto section of the configuration.
func (a *app) trackerOptions() cryptotracker.Options {
	return cryptotracker.Options{
		Coins:          a.cfg.Crypto.Coins,
		Currencies:     a.cfg.Crypto.Currencies,
		AlertThreshold: a.cfg.Crypto.AlertThreshold,
		Interval:       a.cfg.Crypto.RefreshInterval,
		Retention:      a.cfg.Crypto.HistoryRetention,
	}
}

// newTracker builds a tracker; store and mp may be nil.
func (a *app) newTracker(cmd *cobra.Command, store storage.Storage, mp metric.MeterProvider,
	opts cryptotracker.Options,
) (*cryptotracker.Tracker, error) {
	apiClient, err := a.apiClient(mp)
	if err != nil {
		return nil, err
	}
	client := coingecko.New(apiClient, coingecko.Options{
		BaseURL: a.cfg.APIs.CoinGecko.BaseURL,
		Timeout: a.cfg.APIs.CoinGecko.Timeout,
	})

	return cryptotracker.New(client, store, cmd.OutOrStdout(), mp, opts)
}

// withStorage opens the database for the duration of fn.
func (a *app) withStorage(ctx context.Context, fn func(store storage.Storage) error) error {
	strg, closeStrg, err := a.getPostgres(ctx)
	if err != nil {
		return err
	}
	defer closeStrg()

	return fn(strg)
}

func (a *app) cryptoCommand() *cobra.Command {
	pricesRun := func(cmd *cobra.Command, _ []string) error {
		tracker, err := a.newTracker(cmd, nil, nil, a.trackerOptions())
		if err != nil {
			return err
		}

		tracker.Banner()
		if _, err := tracker.Board(cmd.Context()); err != nil {
			return reported(err)
		}
		tracker.Tips()

		return nil
	}

	cmd := &cobra.Command{
		Use:   "crypto",
		Short: "Live cryptocurrency prices from CoinGecko",
		Args:  cobra.NoArgs,
		RunE:  pricesRun,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "prices",
			Short: "Prints the price board of the configured coins",
			Args:  cobra.NoArgs,
			RunE:  pricesRun,
		},
		a.cryptoCoinCommand(),
		a.cryptoTrackCommand(),
		a.cryptoHistoryCommand(),
		a.cryptoPruneCommand(),
	)

	return cmd
}

func (a *app) cryptoCoinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coin <name>",
		Short: "Prints the details of one coin, by id or ticker (btc, eth, doge...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := a.newTracker(cmd, nil, nil, a.trackerOptions())
			if err != nil {
				return err
			}

			return reported(tracker.ShowCoin(cmd.Context(), args[0]))
		},
	}
}

func (a *app) cryptoTrackCommand() *cobra.Command {
	var (
		interval    time.Duration
		record      bool
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Refreshes the price board until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			opts := a.trackerOptions()
			opts.Interval = interval
			opts.Record = record

			var mp metric.MeterProvider
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
				provider, err := metrics.NewPrometheusProvider(reg)
				if err != nil {
					return err
				}
				defer func() {
					if err := provider.Shutdown(context.Background()); err != nil {
						logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
					}
				}()
				mp = provider

				serverOpts := api.NewOptions(a.cfg)
				serverOpts.Addr = metricsAddr
				addr, stopServer, err := api.Start(ctx, api.NewServer(reg, serverOpts))
				if err != nil {
					return err
				}
				logger.Info(ctx, "serving metrics", zap.Stringer("addr", addr), zap.String("path", serverOpts.MetricsPath))
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
					defer cancel()
					stopServer(shutdownCtx)
				}()
			}

			run := func(store storage.Storage) error {
				tracker, err := a.newTracker(cmd, store, mp, opts)
				if err != nil {
					return err
				}

				return tracker.Track(ctx)
			}
			if !record {
				return run(nil)
			}

			return a.withStorage(ctx, run)
		},
	}
	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Refresh period (defaults to crypto.refreshInterval)")
	cmd.Flags().BoolVar(&record, "record", false, "Store every refresh in the price history database")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (defaults to metrics.addr)")
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		if interval <= 0 {
			interval = a.cfg.Crypto.RefreshInterval
		}
		if metricsAddr == "" {
			metricsAddr = a.cfg.Metrics.Addr
		}
	}

	return cmd
}

func (a *app) cryptoHistoryCommand() *cobra.Command {
	var (
		currency string
		limit    uint
	)
	cmd := &cobra.Command{
		Use:   "history <coin>",
		Short: "Prints the recorded prices of a coin, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStorage(cmd.Context(), func(store storage.Storage) error {
				tracker, err := a.newTracker(cmd, store, nil, a.trackerOptions())
				if err != nil {
					return err
				}

				return tracker.History(cmd.Context(), args[0], currency, limit)
			})
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "", "Quote currency (defaults to the first configured one)")
	cmd.Flags().UintVarP(&limit, "limit", "n", cryptotracker.DefaultHistoryLimit, "Number of snapshots to print")

	return cmd
}

func (a *app) cryptoPruneCommand() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Deletes recorded prices older than the given age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if olderThan <= 0 {
				olderThan = a.cfg.Crypto.HistoryRetention
			}

			return a.withStorage(cmd.Context(), func(store storage.Storage) error {
				tracker, err := a.newTracker(cmd, store, nil, a.trackerOptions())
				if err != nil {
					return err
				}
				_, err = tracker.Prune(cmd.Context(), olderThan)

				return err
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Age of the oldest snapshot to keep (defaults to crypto.historyRetention)")

	return cmd
}
