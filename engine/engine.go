// Package engine implements the chat orchestrator. One Run is one
// turn: one user message in, one assistant reply out, plus the
// associated persistence.
package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hearthchat/hearth/core"
	"github.com/hearthchat/hearth/memory"
	"github.com/hearthchat/hearth/provider"
	"github.com/hearthchat/hearth/store"
)

// memoryUnavailable replaces the memory block when the store cannot
// be read. Memory retrieval failure must never block chat.
const memoryUnavailable = "(memory is unavailable right now)"

// notConfiguredMessage is returned on every turn while the completion
// provider has no credentials.
const notConfiguredMessage = "the assistant is not configured yet: set ANTHROPIC_API_KEY and restart"

// Engine composes conversation lookup, history retrieval, memory
// formatting, and the completion call into one turn-taking operation.
type Engine struct {
	provider      provider.Client // nil until credentials are configured
	memories      store.MemoryStore
	conversations store.ConversationStore
	logger        *zap.Logger
	defaultModel  string
}

// Option configures the engine.
type Option func(*Engine)

// WithProvider sets the completion client. Without it every turn
// fails fast with a configuration message.
func WithProvider(c provider.Client) Option {
	return func(e *Engine) {
		e.provider = c
	}
}

// WithDefaultModel overrides the model used when a turn does not
// select one.
func WithDefaultModel(model string) Option {
	return func(e *Engine) {
		e.defaultModel = model
	}
}

// New creates an engine over the given stores.
func New(memories store.MemoryStore, conversations store.ConversationStore, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		memories:      memories,
		conversations: conversations,
		logger:        logger.Named("engine"),
		defaultModel:  provider.DefaultModel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Input is one chat turn request.
type Input struct {
	// Message is the user's message. Required.
	Message string

	// ConversationID resumes an existing conversation. Empty means
	// create a new one.
	ConversationID string

	// Model overrides the default completion model.
	Model string

	// ExtendedThinking requests extended reasoning with a token
	// budget and a raised output ceiling.
	ExtendedThinking bool
}

// Output is the result of one chat turn.
type Output struct {
	// Text is the assistant's reply.
	Text string

	// ConversationID is the resolved conversation id, freshly
	// created when the input carried none.
	ConversationID string

	// Memories is the memory list loaded for this turn; empty when
	// memory was unavailable.
	Memories []core.Memory
}

// Run executes one turn. Conversation creation and the completion
// call abort the turn on failure; memory retrieval, history retrieval,
// and message persistence degrade gracefully. Nothing is retried.
func (e *Engine) Run(ctx context.Context, in *Input) (*Output, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, core.InvalidInput("message is required")
	}
	if e.provider == nil {
		return nil, core.NotConfigured(notConfiguredMessage)
	}

	// Resolve the conversation. Creation failure is the only store
	// failure that aborts the turn: without an id there is nowhere to
	// put the exchange.
	conversationID := in.ConversationID
	if conversationID == "" {
		conv, err := e.conversations.CreateConversation(ctx, core.DefaultConversationTitle)
		if err != nil {
			return nil, core.DependencyFailure("could not start a new conversation", err)
		}
		conversationID = conv.ID
	}

	// Load memories. Failure degrades the prompt, never the turn.
	// Memories stays non-nil so the response always carries an array.
	memories := []core.Memory{}
	memoryBlock := memoryUnavailable
	if loaded, err := e.memories.List(ctx); err != nil {
		e.logger.Warn("memory retrieval failed, continuing without memories",
			zap.Error(err))
	} else {
		memories = append(memories, loaded...)
		memoryBlock = memory.FormatForPrompt(loaded)
	}

	// Load history. Failure degrades to an empty history.
	history, err := e.conversations.ListMessages(ctx, conversationID)
	if err != nil {
		e.logger.Warn("history retrieval failed, continuing with empty history",
			zap.String("conversation_id", conversationID),
			zap.Error(err))
		history = nil
	}

	// Persist the user turn before calling the provider so a
	// completion failure does not lose it. Best-effort.
	if err := e.conversations.AppendMessage(ctx, conversationID, core.RoleUser, in.Message); err != nil {
		e.logger.Warn("failed to persist user message",
			zap.String("conversation_id", conversationID),
			zap.Error(err))
	}

	req := e.buildRequest(in, memoryBlock, history)
	segments, err := e.provider.Complete(ctx, req)
	if err != nil {
		e.logger.Error("completion call failed",
			zap.String("conversation_id", conversationID),
			zap.String("model", req.Model),
			zap.Error(err))
		return nil, core.DependencyFailure("the assistant could not produce a reply", err)
	}

	reply := provider.FirstText(segments)

	if err := e.conversations.AppendMessage(ctx, conversationID, core.RoleAssistant, reply); err != nil {
		e.logger.Warn("failed to persist assistant reply",
			zap.String("conversation_id", conversationID),
			zap.Error(err))
	}

	return &Output{
		Text:           reply,
		ConversationID: conversationID,
		Memories:       memories,
	}, nil
}

// buildRequest assembles the ordered prompt sequence and routes the
// model and reasoning parameters.
func (e *Engine) buildRequest(in *Input, memoryBlock string, history []core.Message) provider.Request {
	messages := make([]provider.Message, 0, len(history)+1)
	for _, m := range history {
		role := provider.RoleUser
		if m.Role == core.RoleAssistant {
			role = provider.RoleAssistant
		}
		messages = append(messages, provider.Message{Role: role, Content: m.Content})
	}
	messages = append(messages, provider.Message{Role: provider.RoleUser, Content: in.Message})

	model := in.Model
	if model == "" {
		model = e.defaultModel
	}

	req := provider.Request{
		Model:     model,
		MaxTokens: provider.DefaultMaxTokens,
		System:    buildSystemPrompt(memoryBlock),
		Messages:  messages,
	}
	if in.ExtendedThinking {
		req.MaxTokens = provider.ThinkingMaxTokens
		req.Thinking = &provider.ThinkingConfig{BudgetTokens: provider.ThinkingBudgetTokens}
	}
	return req
}

// buildSystemPrompt composes the fixed persona preamble, the
// formatted memory block, and the fixed behavioral guidelines.
func buildSystemPrompt(memoryBlock string) string {
	return personaPreamble + "\n\nThings I remember:\n" + memoryBlock + "\n\n" + behavioralGuidelines
}

const personaPreamble = `You are Hearth, a personal AI companion. You talk in a warm,
relaxed tone, like a close friend who knows the person well. Keep the
conversation natural and unhurried.`

const behavioralGuidelines = `Conversation guidelines:
- Be sincere, not performative
- Weave remembered information into the conversation naturally
- Answer honestly when asked something directly`
