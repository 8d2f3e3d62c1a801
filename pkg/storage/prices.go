package storage

import (
	"context"
	"pubapis/pkg/domain"
	"time"
)

// SnapshotCursor is the position after which the next page starts. One
// refresh records every currency at the same time, so the snapshot ID breaks
// ties between rows sharing RecordedAt.
type SnapshotCursor struct {
	RecordedAt time.Time
	ID         domain.PriceSnapshotID
}

// IsZero reports whether c points at the start of the history.
func (c SnapshotCursor) IsZero() bool {
	return c.RecordedAt.IsZero()
}

// SnapshotPage groups a page of snapshots with an optional NextCursor used
// for pagination.
type SnapshotPage struct {
	// Snapshots contains the current page, newest first.
	Snapshots []domain.PriceSnapshot
	// NextCursor points at the last snapshot of this page. It is nil when
	// there is no next page.
	NextCursor *SnapshotCursor
}

// PriceStorage stores and queries the recorded price history.
type PriceStorage interface {
	// StoreSnapshots inserts the snapshots and returns them as stored,
	// including generated IDs. Every snapshot needs a coin, a currency and a
	// recording time, otherwise ErrInvalidSnapshot is returned and nothing is
	// stored.
	StoreSnapshots(ctx context.Context, snapshots ...domain.PriceSnapshot) ([]domain.PriceSnapshot, error)
	// CoinSnapshots returns up to limit snapshots of a coin that come after
	// the optional cursor, ordered newest first by recording time then ID. An
	// empty currency matches all currencies.
	CoinSnapshots(ctx context.Context,
		coinID string,
		currency string,
		cursor SnapshotCursor,
		limit uint) (SnapshotPage, error)
	// DeleteSnapshotsBefore removes every snapshot recorded before the given
	// time and returns how many were removed.
	DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int64, error)
}

// ValidateSnapshot reports ErrInvalidSnapshot for incomplete snapshots.
func ValidateSnapshot(s domain.PriceSnapshot) error {
	if s.CoinID == "" || s.Currency == "" || s.RecordedAt.IsZero() {
		return ErrInvalidSnapshot
	}

	return nil
}
