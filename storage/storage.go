// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/danielhkuo/qarari/models"
)

// DefaultRecentLimit is how many decisions LoadRecent returns when no
// positive limit is given.
const DefaultRecentLimit = 3

var (
	ErrNotFound = errors.New("decision not found")
	ErrEmpty    = errors.New("no decisions found")
)

// Store persists decisions.
type Store interface {
	Save(ctx context.Context, d models.Decision) error
	Update(ctx context.Context, d models.Decision) error
	LoadByID(ctx context.Context, id string) (models.Decision, error)
	LoadAll(ctx context.Context) ([]models.Decision, error)
	LoadRecent(ctx context.Context, limit int) ([]models.Decision, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

// KV is a string key-value backend.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// BlobStore keeps every decision in one JSON array under models.StorageKey.
// Writes read the whole array, change it and write it back. The mutex
// serializes that within a process; separate processes sharing a backend
// are last-write-wins.
type BlobStore struct {
	kv  KV
	key string
	mu  sync.Mutex
}

func NewBlobStore(kv KV) *BlobStore {
	return &BlobStore{kv: kv, key: models.StorageKey}
}

// load returns the stored array and whether the key exists.
func (s *BlobStore) load(ctx context.Context) ([]models.Decision, bool, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read decisions")
	}
	if !ok {
		return nil, false, nil
	}

	var decisions []models.Decision
	if err := json.Unmarshal([]byte(raw), &decisions); err != nil {
		return nil, true, errors.Wrap(err, "failed to decode decisions")
	}
	return decisions, true, nil
}

func (s *BlobStore) store(ctx context.Context, decisions []models.Decision) error {
	if decisions == nil {
		decisions = []models.Decision{}
	}
	raw, err := json.Marshal(decisions)
	if err != nil {
		return errors.Wrap(err, "failed to encode decisions")
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		return errors.Wrap(err, "failed to write decisions")
	}
	return nil
}

// Save appends d to the collection.
func (s *BlobStore) Save(ctx context.Context, d models.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	decisions, _, err := s.load(ctx)
	if err != nil {
		return err
	}
	return s.store(ctx, append(decisions, d))
}

// Update replaces the decision with d's ID in place.
func (s *BlobStore) Update(ctx context.Context, d models.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	decisions, ok, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEmpty
	}

	for i := range decisions {
		if decisions[i].ID == d.ID {
			decisions[i] = d
			return s.store(ctx, decisions)
		}
	}
	return errors.Wrapf(ErrNotFound, "id %s", d.ID)
}

func (s *BlobStore) LoadByID(ctx context.Context, id string) (models.Decision, error) {
	decisions, _, err := s.load(ctx)
	if err != nil {
		return models.Decision{}, err
	}
	for _, d := range decisions {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Decision{}, errors.Wrapf(ErrNotFound, "id %s", id)
}

// LoadAll returns every decision, newest first. Decisions created at the
// same instant keep their stored order.
func (s *BlobStore) LoadAll(ctx context.Context) ([]models.Decision, error) {
	decisions, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if decisions == nil {
		return []models.Decision{}, nil
	}
	sort.SliceStable(decisions, func(i, j int) bool {
		return decisions[i].CreatedAt.After(decisions[j].CreatedAt)
	})
	return decisions, nil
}

// LoadRecent returns up to limit decisions, newest first.
func (s *BlobStore) LoadRecent(ctx context.Context, limit int) ([]models.Decision, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	decisions, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(decisions) > limit {
		decisions = decisions[:limit]
	}
	return decisions, nil
}

// Delete removes the decision with id. Deleting an unknown id, or from an
// empty store, is not an error.
func (s *BlobStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	decisions, ok, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	kept := decisions[:0]
	for _, d := range decisions {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return s.store(ctx, kept)
}

// ClearAll removes the whole collection.
func (s *BlobStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, s.key); err != nil {
		return errors.Wrap(err, "failed to clear decisions")
	}
	return nil
}

// MemoryKV is an in-process KV.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
