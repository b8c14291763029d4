// Package core defines the shared domain types for Hearth: memories,
// conversations, messages, and the tagged error kinds every boundary
// (store, provider, HTTP) classifies its failures with.
package core

import "time"

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultCategory is assigned to memories created without a category.
const DefaultCategory = "fact"

// DefaultConversationTitle is used when a conversation is created
// implicitly on the first message of a session.
const DefaultConversationTitle = "New conversation"

// Memory is a persisted, categorized fact injected into every future
// conversation's system instructions. Immutable once created except
// for deletion. Memories are global, shared across all conversations.
type Memory struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is a persisted thread identified by an opaque,
// store-assigned id.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is one turn inside a conversation. Append-only; role and
// content are immutable post-creation. Replay order is ascending
// creation time.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
