// Package cached decorates a MemoryStore with a ristretto
// read-through cache. The full memory list is read on every chat turn,
// so caching it saves a store round trip per turn; create and delete
// invalidate the cached list.
package cached

import (
	"context"

	"github.com/dgraph-io/ristretto"

	"github.com/hearthchat/hearth/core"
	"github.com/hearthchat/hearth/store"
)

const listKey = "memories"

// MemoryStore wraps an inner store.MemoryStore with a cache for the
// full list.
type MemoryStore struct {
	inner store.MemoryStore
	cache *ristretto.Cache
}

// NewMemoryStore returns a caching wrapper around inner.
func NewMemoryStore(inner store.MemoryStore) (*MemoryStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 10,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemoryStore{inner: inner, cache: cache}, nil
}

// List returns the cached memory list, falling back to the inner
// store on a miss.
func (s *MemoryStore) List(ctx context.Context) ([]core.Memory, error) {
	if v, ok := s.cache.Get(listKey); ok {
		return v.([]core.Memory), nil
	}
	memories, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(listKey, memories, int64(len(memories)+1))
	return memories, nil
}

// Create writes through to the inner store and invalidates the cached
// list.
func (s *MemoryStore) Create(ctx context.Context, category, content string) (core.Memory, error) {
	m, err := s.inner.Create(ctx, category, content)
	if err != nil {
		return core.Memory{}, err
	}
	s.cache.Del(listKey)
	return m, nil
}

// Delete writes through to the inner store and invalidates the cached
// list.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Del(listKey)
	return nil
}

// Wait blocks until pending cache mutations are applied. Ristretto
// applies sets and deletes asynchronously; tests use this to observe
// them deterministically.
func (s *MemoryStore) Wait() {
	s.cache.Wait()
}
