// Package store defines the persistence boundaries the engine and
// HTTP layer depend on. Implementations live in subpackages
// (store/sqlite for the embedded database, store/cached for the
// read-through memory cache).
package store

import (
	"context"

	"github.com/hearthchat/hearth/core"
)

// MemoryStore is CRUD over category-tagged text facts. Memories have
// no update operation: they are immutable once created except for
// deletion.
type MemoryStore interface {
	// List returns every memory, ascending by creation time.
	List(ctx context.Context) ([]core.Memory, error)

	// Create persists a new memory and returns it with its
	// store-assigned id and timestamp.
	Create(ctx context.Context, category, content string) (core.Memory, error)

	// Delete removes a memory by id. Deleting an id that does not
	// exist is not an error.
	Delete(ctx context.Context, id string) error
}

// ConversationStore is CRUD over conversations and their ordered,
// append-only messages.
type ConversationStore interface {
	// CreateConversation persists a new conversation with the given
	// title and returns it with its store-assigned id.
	CreateConversation(ctx context.Context, title string) (core.Conversation, error)

	// ListMessages returns the conversation's messages, ascending by
	// creation time.
	ListMessages(ctx context.Context, conversationID string) ([]core.Message, error)

	// AppendMessage appends one message to a conversation.
	AppendMessage(ctx context.Context, conversationID string, role core.Role, content string) error

	// ListConversations returns up to limit conversations, most
	// recent first.
	ListConversations(ctx context.Context, limit int) ([]core.Conversation, error)
}
