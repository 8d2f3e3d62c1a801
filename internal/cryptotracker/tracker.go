// Package cryptotracker prints the coin price board and coin details, runs
// the live tracker and manages the recorded price history.
package cryptotracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"pubapis/pkg/crypto"
	"pubapis/pkg/metrics"
	"pubapis/pkg/storage"
	"time"

	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "pubapis/internal/cryptotracker"

// MinRecommendedInterval is the refresh period below which CoinGecko is
// likely to rate limit the tracker.
const MinRecommendedInterval = 10 * time.Second

// Options configures what is tracked and how.
type Options struct {
	// Coins are provider ids, e.g. "shiba-inu".
	Coins []string
	// Currencies are lower-case codes; the first drives trends, market caps and alerts.
	Currencies []string
	// AlertThreshold is the absolute 24h change in percent beyond which a coin is reported.
	AlertThreshold float64
	// Interval is the live tracker refresh period.
	Interval time.Duration
	// Record stores every tracker refresh.
	Record bool
	// Retention prunes recorded prices older than this on every record; zero keeps all.
	Retention time.Duration
}

// Tracker is not safe for concurrent use.
type Tracker struct {
	client crypto.Client
	store  storage.Storage
	out    io.Writer
	opts   Options

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	price  metric.Float64Gauge
	change metric.Float64Gauge
}

// New constructs a Tracker. store may be nil when nothing is recorded or
// queried; mp may be nil to disable metrics.
func New(client crypto.Client, store storage.Storage, out io.Writer, mp metric.MeterProvider, opts Options) (*Tracker, error) {
	if len(opts.Coins) == 0 {
		opts.Coins = crypto.DefaultCoinIDs
	}
	if len(opts.Currencies) == 0 {
		opts.Currencies = crypto.DefaultCurrencies
	}
	if opts.Record && store == nil {
		return nil, errors.New("recording prices requires a storage")
	}
	if mp == nil {
		mp = metrics.Noop()
	}

	meter := mp.Meter(instrumentationName)
	price, err := meter.Float64Gauge("crypto.price",
		metric.WithDescription("Last fetched coin price by coin and currency."))
	if err != nil {
		return nil, fmt.Errorf("could not create price gauge: %w", err)
	}
	change, err := meter.Float64Gauge("crypto.change_24h",
		metric.WithDescription("Last fetched 24h price change by coin and currency."),
		metric.WithUnit("%"))
	if err != nil {
		return nil, fmt.Errorf("could not create change gauge: %w", err)
	}

	return &Tracker{
		client: client,
		store:  store,
		out:    out,
		opts:   opts,
		now:    time.Now,
		sleep:  sleepContext,
		price:  price,
		change: change,
	}, nil
}

// WithClock replaces the clock used for timestamps.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now

	return t
}

// WithSleep replaces the wait between tracker refreshes.
func (t *Tracker) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *Tracker {
	t.sleep = sleep

	return t
}

func (t *Tracker) primary() string {
	return t.opts.Currencies[0]
}

func (t *Tracker) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isCanceled(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
