package postgres

import (
	"context"
	"fmt"
	"pubapis/pkg/domain"
	"pubapis/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	snapshotsTable = "price_snapshots"
)

// StoreSnapshots inserts all snapshots in a single statement.
func (p *PgSQL) StoreSnapshots(ctx context.Context, snapshots ...domain.PriceSnapshot) ([]domain.PriceSnapshot, error) {
	if len(snapshots) == 0 {
		return nil, nil
	}
	for _, s := range snapshots {
		if err := storage.ValidateSnapshot(s); err != nil {
			return nil, fmt.Errorf("could not store %s/%s snapshot: %w", s.CoinID, s.Currency, err)
		}
	}

	var result []PgPriceSnapshot
	if err := p.Builder.Insert(snapshotsTable).
		Rows(domainSnapshotsToPg(snapshots)).
		Returning(&PgPriceSnapshot{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store price snapshots into pg: %w", err)
	}

	return pgSnapshotsToDomain(result), nil
}

// CoinSnapshots returns snapshots of a coin ordered by recorded_at DESC, id DESC.
// The cursor is a (recorded_at, id) keyset, so a page may end in the middle of
// one refresh without losing its remaining currencies.
func (p *PgSQL) CoinSnapshots(ctx context.Context,
	coinID string,
	currency string,
	cursor storage.SnapshotCursor,
	limit uint) (storage.SnapshotPage, error) {
	w := []goqu.Expression{
		goqu.I("coin_id").Eq(coinID),
	}
	if currency != "" {
		w = append(w, goqu.I("currency").Eq(currency))
	}
	if !cursor.IsZero() {
		at := cursor.RecordedAt.UTC()
		w = append(w, goqu.Or(
			goqu.I("recorded_at").Lt(at),
			goqu.And(
				goqu.I("recorded_at").Eq(at),
				goqu.I("id").Lt(uuid.UUID(cursor.ID)),
			),
		))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(snapshotsTable).
		Where(w...).
		Order(goqu.I("recorded_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgPriceSnapshot
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.SnapshotPage{}, fmt.Errorf("could not fetch coin snapshots from pg: %w", err)
	}

	var nextCursor *storage.SnapshotCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.SnapshotCursor{
				RecordedAt: last.RecordedAt,
				ID:         domain.PriceSnapshotID(last.ID),
			}
		}
	}

	return storage.SnapshotPage{
		Snapshots:  pgSnapshotsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// DeleteSnapshotsBefore hard deletes expired history.
func (p *PgSQL) DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := p.Builder.Delete(snapshotsTable).
		Where(goqu.I("recorded_at").Lt(before.UTC())).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete price snapshots from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted price snapshots: %w", err)
	}

	return n, nil
}
