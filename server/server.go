// Package server is the HTTP endpoint layer: thin request validation
// and dispatch over the engine and the stores, JSON in and out, with
// a permissive cross-origin policy. This is a personal single-tenant
// tool, not a multi-tenant security boundary.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hearthchat/hearth/engine"
	"github.com/hearthchat/hearth/store"
)

// conversationListLimit caps GET /api/conversations.
const conversationListLimit = 50

// DebugInfo is what GET /api/debug may reveal about configuration.
// Presence flags only, never credential values.
type DebugInfo struct {
	AnthropicKeyConfigured bool
	DBPath                 string
}

// Server wires the routes to the engine and stores.
type Server struct {
	engine        *engine.Engine
	memories      store.MemoryStore
	conversations store.ConversationStore
	logger        *zap.Logger
	debug         DebugInfo
	mux           *http.ServeMux
	upgrader      websocket.Upgrader
}

// New builds a server over the given engine and stores.
func New(e *engine.Engine, memories store.MemoryStore, conversations store.ConversationStore, logger *zap.Logger, debug DebugInfo) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:        e,
		memories:      memories,
		conversations: conversations,
		logger:        logger.Named("server"),
		debug:         debug,
		mux:           http.NewServeMux(),
		upgrader: websocket.Upgrader{
			// Same permissive policy as the CORS headers.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.HandleFunc("GET /api/memories", s.handleListMemories)
	s.mux.HandleFunc("POST /api/memories", s.handleCreateMemory)
	s.mux.HandleFunc("DELETE /api/memories", s.handleDeleteMemory)
	s.mux.HandleFunc("DELETE /api/memories/{id}", s.handleDeleteMemory)
	s.mux.HandleFunc("GET /api/conversations", s.handleListConversations)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/debug", s.handleDebug)
	s.mux.HandleFunc("GET /ws", s.handleWS)
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.cors(s.mux)
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

// cors applies the permissive cross-origin policy and answers
// preflight requests before routing.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
