package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sagarshinde/studyhub/internal/pkg/logger"
)

// PostgresStore keeps documents in a two-column kv table. The upsert is a
// single statement, so the full-collection write is atomic.
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresStore ensures the kv table exists and returns the store.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, table string) (*PostgresStore, error) {
	if table == "" {
		table = "documents"
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, table)
	if _, err := pool.Exec(ctx, ddl); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Failed to ensure kv table")
		return nil, fmt.Errorf("failed to ensure kv table %s: %w", table, err)
	}

	return &PostgresStore{pool: pool, table: table}, nil
}

// Get returns the document stored under key.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	sqlStr, args, err := squirrel.Select("value").
		From(s.table).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	if err := s.pool.QueryRow(ctx, sqlStr, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		logger.Error().Err(err).Str("key", key).Msg("Error reading kv document")
		return nil, err
	}
	return value, nil
}

// Set upserts the document under key in a single statement.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	sqlStr, args, err := squirrel.Insert(s.table).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, sqlStr, args...); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Error writing kv document")
		return err
	}
	return nil
}

// Delete removes the key. Missing rows are not an error.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	sqlStr, args, err := squirrel.Delete(s.table).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, sqlStr, args...); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Error deleting kv document")
		return err
	}
	return nil
}
