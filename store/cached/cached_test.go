package cached_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthchat/hearth/core"
	"github.com/hearthchat/hearth/store/cached"
)

type countingStore struct {
	memories  []core.Memory
	listCalls int
}

func (s *countingStore) List(ctx context.Context) ([]core.Memory, error) {
	s.listCalls++
	return s.memories, nil
}

func (s *countingStore) Create(ctx context.Context, category, content string) (core.Memory, error) {
	m := core.Memory{ID: "new", Category: category, Content: content}
	s.memories = append(s.memories, m)
	return m, nil
}

func (s *countingStore) Delete(ctx context.Context, id string) error {
	return nil
}

func TestList_ServedFromCache(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{memories: []core.Memory{{ID: "1", Category: "fact", Content: "x"}}}
	s, err := cached.NewMemoryStore(inner)
	require.NoError(t, err)

	first, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	s.Wait()

	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.listCalls)
}

func TestCreate_InvalidatesCachedList(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{}
	s, err := cached.NewMemoryStore(inner)
	require.NoError(t, err)

	_, err = s.List(ctx)
	require.NoError(t, err)
	s.Wait()

	_, err = s.Create(ctx, "fact", "new fact")
	require.NoError(t, err)
	s.Wait()

	memories, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Equal(t, 2, inner.listCalls)
}

func TestDelete_InvalidatesCachedList(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{memories: []core.Memory{{ID: "1"}}}
	s, err := cached.NewMemoryStore(inner)
	require.NoError(t, err)

	_, err = s.List(ctx)
	require.NoError(t, err)
	s.Wait()

	require.NoError(t, s.Delete(ctx, "1"))
	s.Wait()

	_, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.listCalls)
}
