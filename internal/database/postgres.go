package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: connect postgres: %v", domain.ErrStoreUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping postgres: %v", domain.ErrStoreUnavailable, err)
	}
	return pool, nil
}

// CreatePostgres is the postgres counterpart of CreateSQLite.
func CreatePostgres(ctx context.Context, pool *pgxpool.Pool, s Schema) (bool, error) {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, s.Table).Scan(&exists); err != nil {
		return false, fmt.Errorf("check table %s: %w", s.Table, err)
	}
	if exists {
		return false, nil
	}
	if _, err := pool.Exec(ctx, s.Postgres); err != nil {
		return false, fmt.Errorf("create table %s: %w", s.Table, err)
	}
	return true, nil
}
