// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
)

const kvTable = "kv_store"

// KVStore is a key-value table. It satisfies storage.KV.
type KVStore struct {
	conn *sql.DB
	sb   sq.StatementBuilderType
	now  func() time.Time
}

// NewKVStore wraps conn. dbType selects the placeholder style.
func NewKVStore(conn *sql.DB, dbType string) *KVStore {
	return &KVStore{
		conn: conn,
		sb:   builder(dbType),
		now:  time.Now,
	}
}

func builder(dbType string) sq.StatementBuilderType {
	if dbType == Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.sb.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to build query")
	}

	var value string
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to get %s", key)
	}
	return value, true, nil
}

// Set inserts or overwrites key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.sb.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.sb.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}
