// Package dbtest wires repository integration tests to a real PostgreSQL.
// Tests are skipped unless DB_HOST_TEST is set.
package dbtest

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/canteen-service/internal/config"
	"github.com/vasiliy-maslov/canteen-service/internal/db"
)

var (
	once    sync.Once
	shared  *db.Postgres
	initErr error
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Open returns a migrated connection shared by the test binary. Tables listed in
// truncate are emptied before the test and again on cleanup.
func Open(tb testing.TB, truncate ...string) *db.Postgres {
	tb.Helper()

	host := os.Getenv("DB_HOST_TEST")
	if host == "" {
		tb.Skip("DB_HOST_TEST is not set, skipping postgres integration test")
	}

	once.Do(func() {
		cfg := config.PostgresConfig{
			Host:            host,
			Port:            envOr("DB_PORT_TEST", "5432"),
			User:            envOr("DB_USER_TEST", "postgres"),
			Password:        envOr("DB_PASSWORD_TEST", "123456"),
			DBName:          envOr("DB_NAME_TEST", "canteen_test"),
			SSLMode:         envOr("DB_SSLMODE_TEST", "disable"),
			MaxConns:        5,
			MinConns:        1,
			MaxConnLifetime: 5 * time.Minute,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		shared, initErr = db.New(ctx, cfg)
		if initErr != nil {
			return
		}
		initErr = shared.Migrate()
	})
	require.NoError(tb, initErr, "failed to prepare test database")

	clean := func() {
		for _, table := range truncate {
			_, err := shared.Pool.Exec(context.Background(), "TRUNCATE TABLE "+table)
			require.NoError(tb, err, "failed to truncate %s", table)
		}
	}
	clean()
	tb.Cleanup(clean)

	return shared
}
