package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthchat/hearth/core"
	"github.com/hearthchat/hearth/store/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "hearth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMemories_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	first, err := s.Create(ctx, "critical", "peanut allergy")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "critical", first.Category)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := s.Create(ctx, "", "likes jazz")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultCategory, second.Category)

	memories, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, memories, 2)
	// Ascending creation order.
	assert.Equal(t, first.ID, memories[0].ID)
	assert.Equal(t, second.ID, memories[1].ID)

	require.NoError(t, s.Delete(ctx, first.ID))
	memories, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Equal(t, second.ID, memories[0].ID)

	// Deleting an unknown id is not an error.
	assert.NoError(t, s.Delete(ctx, "missing"))
}

func TestConversations_MessageReplayOrder(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	conv, err := s.CreateConversation(ctx, core.DefaultConversationTitle)
	require.NoError(t, err)
	require.NotEmpty(t, conv.ID)

	require.NoError(t, s.AppendMessage(ctx, conv.ID, core.RoleUser, "hello"))
	require.NoError(t, s.AppendMessage(ctx, conv.ID, core.RoleAssistant, "hi there"))
	require.NoError(t, s.AppendMessage(ctx, conv.ID, core.RoleUser, "how are you?"))

	messages, err := s.ListMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, core.RoleUser, messages[0].Role)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, core.RoleAssistant, messages[1].Role)
	assert.Equal(t, "how are you?", messages[2].Content)
	for _, m := range messages {
		assert.Equal(t, conv.ID, m.ConversationID)
	}
}

func TestConversations_MessagesScopedToConversation(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	a, err := s.CreateConversation(ctx, "a")
	require.NoError(t, err)
	b, err := s.CreateConversation(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, s.AppendMessage(ctx, a.ID, core.RoleUser, "for a"))
	require.NoError(t, s.AppendMessage(ctx, b.ID, core.RoleUser, "for b"))

	messages, err := s.ListMessages(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "for a", messages[0].Content)
}

func TestListConversations_NewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	var ids []string
	for i := 0; i < 3; i++ {
		c, err := s.CreateConversation(ctx, core.DefaultConversationTitle)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	conversations, err := s.ListConversations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, ids[2], conversations[0].ID)
	assert.Equal(t, ids[1], conversations[1].ID)
}
