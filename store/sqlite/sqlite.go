// Package sqlite provides SQLite-backed persistence for memories,
// conversations, and messages.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hearthchat/hearth/core"
)

// Store implements store.MemoryStore and store.ConversationStore on a
// single SQLite database. Safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

const schema = `
CREATE TABLE IF NOT EXISTS memories (
	id TEXT PRIMARY KEY,
	category TEXT NOT NULL DEFAULT 'fact',
	content TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS conversations (
	id TEXT PRIMARY KEY,
	title TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation
	ON messages(conversation_id, created_at);
`

// Open opens (or creates) the database at path and initializes the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every memory, ascending by creation time. The rowid
// tiebreak keeps same-instant inserts in insertion order.
func (s *Store) List(ctx context.Context) ([]core.Memory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, content, created_at
		 FROM memories ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memories []core.Memory
	for rows.Next() {
		var m core.Memory
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Category, &m.Content, &createdAt); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

// Create persists a new memory.
func (s *Store) Create(ctx context.Context, category, content string) (core.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == "" {
		category = core.DefaultCategory
	}
	m := core.Memory{
		ID:        uuid.New().String(),
		Category:  category,
		Content:   content,
		CreatedAt: now(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO memories (id, category, content, created_at) VALUES (?, ?, ?, ?)`,
		m.ID, m.Category, m.Content, formatTime(m.CreatedAt))
	if err != nil {
		return core.Memory{}, err
	}
	return m, nil
}

// Delete removes a memory by id. A missing id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM memories WHERE id = ?`, id)
	return err
}

// CreateConversation persists a new conversation.
func (s *Store) CreateConversation(ctx context.Context, title string) (core.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := core.Conversation{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, title, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Title, formatTime(c.CreatedAt))
	if err != nil {
		return core.Conversation{}, err
	}
	return c, nil
}

// ListMessages returns a conversation's messages, oldest first.
func (s *Store) ListMessages(ctx context.Context, conversationID string) ([]core.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversation_id, role, content, created_at
		 FROM messages WHERE conversation_id = ?
		 ORDER BY created_at ASC, rowid ASC`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []core.Message
	for rows.Next() {
		var m core.Message
		var role, createdAt string
		if err := rows.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &createdAt); err != nil {
			return nil, err
		}
		m.Role = core.Role(role)
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// AppendMessage appends one message to a conversation.
func (s *Store) AppendMessage(ctx context.Context, conversationID string, role core.Role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, conversation_id, role, content, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), conversationID, string(role), content, formatTime(now()))
	return err
}

// ListConversations returns up to limit conversations, newest first.
func (s *Store) ListConversations(ctx context.Context, limit int) ([]core.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, created_at FROM conversations
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []core.Conversation
	for rows.Next() {
		var c core.Conversation
		var title sql.NullString
		var createdAt string
		if err := rows.Scan(&c.ID, &title, &createdAt); err != nil {
			return nil, err
		}
		c.Title = title.String
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

// timeLayout is RFC 3339 with a fixed-width fractional second so the
// stored text sorts chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func now() time.Time {
	return time.Now().UTC()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", s, err)
	}
	return t, nil
}
