package postgres_test

import (
	"context"
	"fmt"
	"pubapis"
	"pubapis/pkg/serrors"
	"pubapis/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, pgSQL.Ping(ctx))

	// run migrations
	require.NoError(t, pgSQL.Migrate(ctx, pubapis.Migrations, pubapis.MigrationsDir))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func TestPgSQL_Migrate_idempotent(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, pg.Migrate(context.Background(), pubapis.Migrations, pubapis.MigrationsDir))
}

func TestNew_connectionSettings(t *testing.T) {
	pg, err := postgres.New(context.Background(), postgres.Options{
		Username:       "tracker",
		Password:       `it's a p\ss`,
		Host:           "db.internal",
		Port:           6543,
		Database:       "prices",
		SslMode:        "require",
		ConnectTimeout: 3 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	cfg := pg.Pool.Config().ConnConfig
	require.Equal(t, "tracker", cfg.User)
	require.Equal(t, `it's a p\ss`, cfg.Password)
	require.Equal(t, "db.internal", cfg.Host)
	require.Equal(t, uint16(6543), cfg.Port)
	require.Equal(t, "prices", cfg.Database)
	require.Equal(t, 3*time.Second, cfg.ConnectTimeout)
	require.Equal(t, "UTC", cfg.RuntimeParams["timezone"])
	require.Equal(t, postgres.ApplicationName, cfg.RuntimeParams["application_name"])
}

func TestPgSQL_Ping_unreachable(t *testing.T) {
	pg, err := postgres.New(context.Background(), postgres.Options{
		Username:       testUser,
		Host:           "127.0.0.1",
		Port:           1,
		Database:       "pubapis",
		SslMode:        "disable",
		ConnectTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = pg.Ping(ctx)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorContains(t, err, "price history database 127.0.0.1:1/pubapis is unreachable")

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	require.ErrorIs(t, pg.Ping(canceled), context.Canceled)
}
