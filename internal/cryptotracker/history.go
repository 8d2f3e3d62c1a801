package cryptotracker

import (
	"context"
	"errors"
	"fmt"
	"pubapis/pkg/crypto"
	"pubapis/pkg/domain"
	"pubapis/pkg/logger"
	"pubapis/pkg/storage"
	"pubapis/pkg/textfmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultHistoryLimit is the number of snapshots History prints when no
// limit is given.
const DefaultHistoryLimit = 20

const historyLayout = "2006-01-02 15:04:05"

var errNoStorage = errors.New("price history needs a database")

// Snapshots flattens quotes into one snapshot per coin and currency, all
// recorded at the same time.
func Snapshots(quotes []domain.CoinQuote, at time.Time) []domain.PriceSnapshot {
	var out []domain.PriceSnapshot
	for _, q := range quotes {
		for cur, p := range q.Prices {
			out = append(out, domain.PriceSnapshot{
				CoinID:     q.ID,
				Currency:   cur,
				Price:      p,
				Change24h:  q.Change24h[cur],
				MarketCap:  q.MarketCap[cur],
				RecordedAt: at,
			})
		}
	}

	return out
}

// Record stores the quotes in one transaction and prunes snapshots older
// than the retention.
func (t *Tracker) Record(ctx context.Context, quotes []domain.CoinQuote) error {
	if t.store == nil {
		return errNoStorage
	}
	snapshots := Snapshots(quotes, t.now().UTC())
	if len(snapshots) == 0 {
		return nil
	}

	return t.store.WithTx(ctx, func(s storage.AllStorage) error {
		stored, err := s.StoreSnapshots(ctx, snapshots...)
		if err != nil {
			return fmt.Errorf("could not store snapshots: %w", err)
		}

		var pruned int64
		if t.opts.Retention > 0 {
			pruned, err = s.DeleteSnapshotsBefore(ctx, snapshots[0].RecordedAt.Add(-t.opts.Retention))
			if err != nil {
				return fmt.Errorf("could not prune snapshots: %w", err)
			}
		}
		logger.Debug(ctx, "recorded prices", zap.Int("stored", len(stored)), zap.Int64("pruned", pruned))

		return nil
	})
}

// History prints the most recent recorded prices of a coin in a currency,
// newest first. An empty currency uses the primary one and a zero limit
// DefaultHistoryLimit.
func (t *Tracker) History(ctx context.Context, name, currency string, limit uint) error {
	if t.store == nil {
		return errNoStorage
	}
	if currency == "" {
		currency = t.primary()
	}
	currency = strings.ToLower(currency)
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	id := crypto.ResolveID(name)
	page, err := t.store.CoinSnapshots(ctx, id, currency, storage.SnapshotCursor{}, limit)
	if err != nil {
		return fmt.Errorf("could not load price history: %w", err)
	}

	if len(page.Snapshots) == 0 {
		t.printf("No recorded prices for %s in %s. Run `pubapis crypto track --record` first.\n",
			id, strings.ToUpper(currency))

		return nil
	}

	t.printf("\n📜 PRICE HISTORY - %s (%s)\n\n", textfmt.Title(id), strings.ToUpper(currency))
	for _, s := range page.Snapshots {
		t.printf("  %s  %-20s %s 24h: %s\n",
			s.RecordedAt.Local().Format(historyLayout),
			formatPrice(s.Currency, s.Price),
			trend(s.Change24h),
			textfmt.SignedPercent(s.Change24h))
	}
	if page.NextCursor != nil {
		t.printf("\n  ... more entries recorded at or before %s\n",
			page.NextCursor.RecordedAt.Local().Format(historyLayout))
	}

	return nil
}

// Prune removes recorded prices older than olderThan and reports how many
// were removed.
func (t *Tracker) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if t.store == nil {
		return 0, errNoStorage
	}
	if olderThan <= 0 {
		return 0, errors.New("prune age must be positive")
	}

	n, err := t.store.DeleteSnapshotsBefore(ctx, t.now().UTC().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("could not prune price history: %w", err)
	}
	t.printf("🧹 Removed %d snapshots older than %s\n", n, olderThan)

	return n, nil
}
