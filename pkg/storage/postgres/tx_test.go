package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"pubapis/pkg/storage"
	"pubapis/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// countSnapshots counts the committed rows of a coin, read outside any tx.
func countSnapshots(t *testing.T, pg *postgres.PgSQL, coin string) int {
	t.Helper()
	row := pg.DB.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM price_snapshots WHERE coin_id = $1`, coin)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)
	require.Nil(t, inner.Pool, "tx handle must not own the pool")

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// closing a tx handle leaves the pool alone
	require.NoError(t, inner.Close())
	require.NoError(t, inner.Rollback())
	require.NoError(t, pg.Ping(ctx))
}

func TestPgSQL_Commit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.StoreSnapshots(ctx, snapshot("litecoin", "usd", 85, time.Now()))
	require.NoError(t, err)
	require.Zero(t, countSnapshots(t, pg, "litecoin"), "uncommitted snapshot is visible")

	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countSnapshots(t, pg, "litecoin"))
	require.Error(t, txStorage.Commit(), "tx handle is done after commit")
}

func TestPgSQL_Rollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.StoreSnapshots(ctx, snapshot("polkadot", "usd", 7, time.Now()))
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.Zero(t, countSnapshots(t, pg, "polkadot"))
}

func TestPgSQL_WithTx_refreshAndPrune(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	_, err := pg.StoreSnapshots(ctx, snapshot("chainlink", "usd", 12, now.Add(-48*time.Hour)))
	require.NoError(t, err)

	// a refresh whose prune fails keeps both the old row and the new one out
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreSnapshots(ctx, snapshot("chainlink", "usd", 14, now)); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 1, countSnapshots(t, pg, "chainlink"))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreSnapshots(ctx, snapshot("chainlink", "usd", 14, now)); err != nil {
			return err
		}
		n, err := s.DeleteSnapshotsBefore(ctx, now.Add(-24*time.Hour))
		require.Equal(t, int64(1), n)

		return err
	})
	require.NoError(t, err)

	page, err := pg.CoinSnapshots(ctx, "chainlink", "usd", storage.SnapshotCursor{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Snapshots, 1)
	require.InDelta(t, 14, page.Snapshots[0].Price, 1e-9)
}

func TestPgSQL_WithTx_panicRollsBack(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.Panics(t, func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreSnapshots(ctx, snapshot("stellar", "usd", 0.1, time.Now()))
			require.NoError(t, err)
			panic("render failed")
		})
	})
	require.Zero(t, countSnapshots(t, pg, "stellar"))

	// the pool is still usable: the aborted tx released its connection
	require.NoError(t, pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.StoreSnapshots(ctx, snapshot("stellar", "usd", 0.1, time.Now()))

		return err
	}))
	require.Equal(t, 1, countSnapshots(t, pg, "stellar"))
}

func TestPgSQL_Migrate_inTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)
	defer func() { _ = inner.Rollback() }()

	err = inner.Migrate(ctx, nil, "migrations")
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
}
