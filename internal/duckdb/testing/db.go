package duckdbtesting

import (
	"database/sql"
	"testing"
	"time"

	"morehop/internal/duckdb"
	"morehop/internal/testutil"
)

const (
	defaultTimeout = 5 * time.Second
)

// Open opens an in-memory DuckDB database with the schema applied and closes
// it when the test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	return OpenFile(t, "")
}

// OpenFile opens a DuckDB file with the schema applied.
func OpenFile(t testing.TB, path string) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	conn, err := duckdb.Open(ctx, path)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}
