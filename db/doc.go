// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL database and provides the key-value table that
decisions are stored in.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite, no cgo) or "postgres"
(lib/pq) and pings before returning:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := db.CreateSchema(ctx, conn); err != nil {
		return err
	}

SQLite connections are limited to one open connection.

# Schema

A single table:

	kv_store(key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TEXT NOT NULL)

updated_at holds an RFC 3339 UTC timestamp.

# KVStore

KVStore builds its queries with squirrel, using ? placeholders for
SQLite and $N for PostgreSQL. Set is an upsert.
*/
package db
