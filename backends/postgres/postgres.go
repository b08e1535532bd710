// Package postgres implements the storage Backend on PostgreSQL. Without
// server-side scripting, compare-and-set is expressed as a conditional
// INSERT/UPDATE whose row count reports whether the write applied.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratewall/ratewall/backends"
)

type Config struct {
	ConnString string
	MaxConns   int32
	MinConns   int32

	// ConnErrorStrings overrides the default connectivity-error patterns.
	ConnErrorStrings []string
}

type Backend struct {
	pool        *pgxpool.Pool
	connErrStrs []string
}

// New initializes a PostgreSQL backend, creating the state table if it
// does not exist.
func New(config Config) (*Backend, error) {
	if config.MaxConns == 0 {
		config.MaxConns = 10
	}
	if config.MinConns == 0 {
		config.MinConns = 2
	}

	poolConfig, err := pgxpool.ParseConfig(config.ConnString)
	if err != nil {
		return nil, NewParseConfigError(err)
	}
	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = config.MinConns

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, NewPoolCreateError(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, backends.NewHealthError("postgres:Ping", err)
	}

	if err := createTable(context.Background(), pool); err != nil {
		pool.Close()
		return nil, NewCreateTableError(err)
	}

	patterns := config.ConnErrorStrings
	if patterns == nil {
		patterns = connErrorStrings
	}

	return &Backend{pool: pool, connErrStrs: patterns}, nil
}

func createTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS ratewall_buckets (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			expires_at TIMESTAMP WITH TIME ZONE
		)
	`)
	return err
}

// GetPool exposes the underlying pool for health checks and tooling.
func (p *Backend) GetPool() *pgxpool.Pool {
	return p.pool
}

func (p *Backend) Get(ctx context.Context, key string) (string, error) {
	var value string
	var expiresAt *time.Time

	err := p.pool.QueryRow(ctx, `
		SELECT value, expires_at
		FROM ratewall_buckets
		WHERE key = $1
	`, key).Scan(&value, &expiresAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", backends.MaybeConnError("postgres:Get", NewGetFailedError(key, err), p.connErrStrs)
	}

	if expiresAt != nil && time.Now().After(*expiresAt) {
		return "", nil
	}

	return value, nil
}

func (p *Backend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	_, err := p.pool.Exec(ctx, `
		INSERT INTO ratewall_buckets (key, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at
	`, key, value, expiresAt)
	if err != nil {
		return backends.MaybeConnError("postgres:Set", NewSetFailedError(key, err), p.connErrStrs)
	}
	return nil
}

// CheckAndSet atomically sets key to newValue only if the current,
// unexpired value matches oldValue. oldValue == "" means "set only if
// key doesn't exist"; an expired row counts as non-existent and is
// replaced in place.
func (p *Backend) CheckAndSet(ctx context.Context, key, oldValue, newValue string, ttl time.Duration) (bool, error) {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	if oldValue == "" {
		tag, err := p.pool.Exec(ctx, `
			INSERT INTO ratewall_buckets (key, value, expires_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				expires_at = EXCLUDED.expires_at
			WHERE ratewall_buckets.expires_at IS NOT NULL
			  AND ratewall_buckets.expires_at <= NOW()
		`, key, newValue, expiresAt)
		if err != nil {
			return false, backends.MaybeConnError("postgres:CheckAndSet", NewCheckAndSetFailedError(key, err), p.connErrStrs)
		}
		return tag.RowsAffected() == 1, nil
	}

	tag, err := p.pool.Exec(ctx, `
		UPDATE ratewall_buckets
		SET value = $2, expires_at = $3
		WHERE key = $1
		  AND value = $4
		  AND (expires_at IS NULL OR expires_at > NOW())
	`, key, newValue, expiresAt, oldValue)
	if err != nil {
		return false, backends.MaybeConnError("postgres:CheckAndSet", NewCheckAndSetFailedError(key, err), p.connErrStrs)
	}
	return tag.RowsAffected() == 1, nil
}

func (p *Backend) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM ratewall_buckets WHERE key = $1`, key)
	if err != nil {
		return backends.MaybeConnError("postgres:Delete", NewDeleteFailedError(key, err), p.connErrStrs)
	}
	return nil
}

func (p *Backend) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
