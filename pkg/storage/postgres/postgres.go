// Package postgres keeps the recorded coin price history in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pubapis/pkg/serrors"
	"pubapis/pkg/storage"
	"strconv"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// ApplicationName is reported to the server for every session.
const ApplicationName = "pubapis"

// Options configures the price history database connection.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed through as libpq sslmode ("disable", "require", ...).
	SslMode string

	// ConnectTimeout bounds dialing a new connection. Zero leaves the pgx
	// default.
	ConnectTimeout time.Duration

	// Pool sizing. Zero values keep the pgxpool defaults.
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

// connString renders the keyword/value form understood by pgx. Values are
// quoted so passwords with spaces or quotes survive.
func (o Options) connString() string {
	kv := [][2]string{
		{"host", o.Host},
		{"port", strconv.Itoa(o.Port)},
		{"user", o.Username},
		{"password", o.Password},
		{"dbname", o.Database},
		{"sslmode", o.SslMode},
	}
	if o.ConnectTimeout > 0 {
		kv = append(kv, [2]string{"connect_timeout", strconv.Itoa(max(1, int(o.ConnectTimeout.Seconds())))})
	}

	parts := make([]string, 0, len(kv))
	for _, p := range kv {
		if p[1] == "" {
			continue
		}
		v := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(p[1])
		parts = append(parts, p[0]+"='"+v+"'")
	}

	return strings.Join(parts, " ")
}

// DB is the part of database/sql used by the queries. *sql.DB and *sql.Tx
// both satisfy it.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the goqu surface the queries are built with; implemented by
// *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// PgSQL stores price snapshots. A handle returned by New owns the pool; a
// handle returned by Begin is bound to one transaction and has no pool.
type PgSQL struct {
	DB      DB
	Builder Builder
	Pool    *pgxpool.Pool

	addr string
}

var _ storage.Storage = (*PgSQL)(nil)

// New opens a pool for the price history database. The pool dials lazily;
// call Ping to find out whether the server is reachable.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.connString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}
	// recorded_at is TIMESTAMPTZ; keep session output in UTC regardless of
	// the server default
	cfg.ConnConfig.RuntimeParams["timezone"] = "UTC"
	cfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	// goqu and goose both work on database/sql
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
		addr:    fmt.Sprintf("%s:%d/%s", options.Host, options.Port, options.Database),
	}, nil
}

// Ping checks that the price history database answers. Failures are
// serrors.ErrUnavailable unless ctx itself ended.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return nil
	}
	if err := p.Pool.Ping(ctx); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return ctx.Err()
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "price history database %s is unreachable", p.addr)
	}

	return nil
}

// Close releases the pool. Closing a transaction handle does nothing.
func (p *PgSQL) Close() error {
	if p.Pool == nil {
		return nil
	}
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}
	p.Pool.Close()

	return nil
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

// Commit makes the snapshots written through this handle visible.
func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit price history tx: %w", err)
	}

	return nil
}

// Rollback discards the snapshots written through this handle.
func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback price history tx: %w", err)
	}

	return nil
}

// Begin starts a transaction. Nested transactions are not supported and
// return storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin price history tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
		addr:    p.addr,
	}, nil
}

// WithTx runs cb in one transaction, so a refresh is stored and the expired
// history pruned together or not at all. The transaction is rolled back when
// cb fails or panics.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := cb(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	return nil
}
