package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/hearthchat/hearth/core"
	"github.com/hearthchat/hearth/engine"
)

// Wire shapes follow the original client contract: camelCase request
// fields, `response`/`conversationId`/`memories` on the reply.

type chatRequest struct {
	Message          string `json:"message"`
	ConversationID   string `json:"conversationId"`
	Model            string `json:"model"`
	ExtendedThinking bool   `json:"extendedThinking"`
}

type chatResponse struct {
	Response       string        `json:"response"`
	ConversationID string        `json:"conversationId"`
	Memories       []core.Memory `json:"memories"`
}

type memoryRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, core.InvalidInput("request body must be JSON"))
		return
	}

	out, err := s.engine.Run(r.Context(), &engine.Input{
		Message:          req.Message,
		ConversationID:   req.ConversationID,
		Model:            req.Model,
		ExtendedThinking: req.ExtendedThinking,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, chatResponse{
		Response:       out.Text,
		ConversationID: out.ConversationID,
		Memories:       out.Memories,
	})
}

func (s *Server) handleListMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := s.memories.List(r.Context())
	if err != nil {
		s.writeError(w, core.DependencyFailure("could not load memories", err))
		return
	}
	if memories == nil {
		memories = []core.Memory{}
	}
	s.writeJSON(w, http.StatusOK, memories)
}

func (s *Server) handleCreateMemory(w http.ResponseWriter, r *http.Request) {
	var req memoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, core.InvalidInput("request body must be JSON"))
		return
	}
	if req.Content == "" {
		s.writeError(w, core.InvalidInput("content is required"))
		return
	}
	if req.Category == "" {
		req.Category = core.DefaultCategory
	}

	m, err := s.memories.Create(r.Context(), req.Category, req.Content)
	if err != nil {
		s.writeError(w, core.DependencyFailure("could not save the memory", err))
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleDeleteMemory(w http.ResponseWriter, r *http.Request) {
	// Path form first, query form as the fallback the original
	// serverless client used.
	id := r.PathValue("id")
	if id == "" {
		id = r.URL.Query().Get("id")
	}
	if id == "" {
		s.writeError(w, core.InvalidInput("id is required"))
		return
	}

	if err := s.memories.Delete(r.Context(), id); err != nil {
		s.writeError(w, core.DependencyFailure("could not delete the memory", err))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := s.conversations.ListConversations(r.Context(), conversationListLimit)
	if err != nil {
		s.writeError(w, core.DependencyFailure("could not load conversations", err))
		return
	}
	if conversations == nil {
		conversations = []core.Conversation{}
	}
	s.writeJSON(w, http.StatusOK, conversations)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "hearth is up and running",
	})
}

// handleDebug reports configuration presence and store connectivity
// without exposing any secret values.
func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	env := map[string]string{
		"anthropic_api_key": presence(s.debug.AnthropicKeyConfigured),
		"db_path":           s.debug.DBPath,
	}

	tests := map[string]string{}
	if _, err := s.memories.List(r.Context()); err != nil {
		tests["read_memories"] = "failed: " + err.Error()
	} else {
		tests["read_memories"] = "ok"
	}
	if _, err := s.conversations.ListConversations(r.Context(), 1); err != nil {
		tests["read_conversations"] = "failed: " + err.Error()
	} else {
		tests["read_conversations"] = "ok"
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"env":   env,
		"tests": tests,
	})
}

func presence(configured bool) string {
	if configured {
		return "configured"
	}
	return "missing"
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// writeError maps a tagged error to its HTTP status and a JSON error
// body. Wrapped causes go to the details field, not the main message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if core.KindOf(err) == core.KindInvalidInput {
		status = http.StatusBadRequest
	}

	resp := errorResponse{Error: core.MessageOf(err)}
	var tagged *core.Error
	if errors.As(err, &tagged) && tagged.Err != nil {
		resp.Details = tagged.Err.Error()
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	s.writeJSON(w, status, resp)
}
