package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens (creating if needed) the database file at path and
// verifies the connection. The handle is limited to a single connection:
// the application is the only user of the file.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %s: %v", domain.ErrStoreUnavailable, path, err)
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping sqlite %s: %v", domain.ErrStoreUnavailable, path, err)
	}
	return db, nil
}

// CreateSQLite creates the table described by s unless it already exists.
// It reports whether the table was created by this call.
func CreateSQLite(ctx context.Context, db *sqlx.DB, s Schema) (bool, error) {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, s.Table); err != nil {
		return false, fmt.Errorf("check table %s: %w", s.Table, err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := db.ExecContext(ctx, s.SQLite); err != nil {
		return false, fmt.Errorf("create table %s: %w", s.Table, err)
	}
	return true, nil
}
