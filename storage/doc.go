// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage persists decisions as a single JSON collection.

BlobStore implements Store on top of any KV backend: MemoryKV for tests
and the CLI, or db.KVStore for SQLite and PostgreSQL.

	store := storage.NewBlobStore(db.NewKVStore(conn, "sqlite"))
	if err := store.Save(ctx, decision); err != nil {
		return err
	}

# Errors

LoadByID and Update return errors matching ErrNotFound for unknown IDs.
Update returns ErrEmpty when nothing has ever been saved. Delete of an
unknown ID succeeds.
*/
package storage
