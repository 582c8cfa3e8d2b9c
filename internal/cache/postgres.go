// internal/cache/postgres.go
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS fusion_cache (
    cache_key  TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    expires_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_fusion_cache_expires_at ON fusion_cache (expires_at);
`

type cacheRow struct {
	Value     []byte       `db:"value"`
	ExpiresAt sql.NullTime `db:"expires_at"`
}

// PostgresBackend keeps entries in the fusion_cache table. Expired rows are ignored on
// read and removed by CleanupExpired.
type PostgresBackend struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPostgresBackend(db *sqlx.DB) *PostgresBackend {
	return &PostgresBackend{db: db, now: time.Now}
}

// EnsureSchema creates the cache table if it does not exist
func (p *PostgresBackend) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create cache table: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Name() string { return "postgres" }

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var row cacheRow
	err := p.db.GetContext(ctx, &row, `SELECT value, expires_at FROM fusion_cache WHERE cache_key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get: %w", err)
	}
	if row.ExpiresAt.Valid && !p.now().Before(row.ExpiresAt.Time) {
		return nil, ErrNotFound
	}
	return row.Value, nil
}

func (p *PostgresBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: p.now().Add(ttl), Valid: true}
	}
	query := `
        INSERT INTO fusion_cache (cache_key, value, expires_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (cache_key) DO UPDATE
        SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, created_at = NOW()`
	if _, err := p.db.ExecContext(ctx, query, key, value, expiresAt); err != nil {
		return fmt.Errorf("postgres set: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Delete(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM fusion_cache WHERE cache_key = $1`, key); err != nil {
		return fmt.Errorf("postgres delete: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Clear(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM fusion_cache`); err != nil {
		return fmt.Errorf("postgres clear: %w", err)
	}
	return nil
}

// CleanupExpired deletes rows past their expiry and reports how many went
func (p *PostgresBackend) CleanupExpired(ctx context.Context) (int64, error) {
	res, err := p.db.ExecContext(ctx,
		`DELETE FROM fusion_cache WHERE expires_at IS NOT NULL AND expires_at <= $1`, p.now())
	if err != nil {
		return 0, fmt.Errorf("postgres cleanup: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("postgres cleanup: %w", err)
	}
	return n, nil
}
