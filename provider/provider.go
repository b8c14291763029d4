// Package provider defines the completion-client boundary: a
// stateless request/response interface over a hosted LLM API, plus
// the Anthropic implementation.
package provider

import "context"

// DefaultModel is used when the caller does not select one.
const DefaultModel = "claude-sonnet-4-5-20250929"

// Output and reasoning ceilings. Extended thinking allocates hidden
// computation before the visible reply, so it raises the output
// ceiling to leave room for both. These are provider policy, not
// business logic.
const (
	DefaultMaxTokens     = 2048
	ThinkingMaxTokens    = 8192
	ThinkingBudgetTokens = 4096
)

// Role identifies a message author on the wire.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the ordered prompt sequence.
type Message struct {
	Role    Role
	Content string
}

// ThinkingConfig requests extended reasoning with a token budget.
type ThinkingConfig struct {
	BudgetTokens int64
}

// Request is one completion call.
type Request struct {
	Model     string
	MaxTokens int64
	System    string
	Messages  []Message
	// Thinking is nil unless extended reasoning was requested.
	Thinking *ThinkingConfig
}

// Segment is one typed content segment of a completion response. A
// response may carry non-text segments (e.g. a reasoning trace)
// before the visible text.
type Segment struct {
	Type string
	Text string
}

// SegmentText marks the visible text segments of a response.
const SegmentText = "text"

// Client is a stateless completion client.
type Client interface {
	// Complete runs one completion call and returns the ordered
	// content segments of the response.
	Complete(ctx context.Context, req Request) ([]Segment, error)
}

// FirstText returns the first text-typed segment, skipping any
// non-text segments that precede it. Returns the empty string when
// the response carries no text.
func FirstText(segments []Segment) string {
	for _, s := range segments {
		if s.Type == SegmentText {
			return s.Text
		}
	}
	return ""
}
