package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hearthchat/hearth/core"
	"github.com/hearthchat/hearth/engine"
)

// handleWS serves chat over a WebSocket connection: each inbound JSON
// chat request runs one engine turn, and the reply (or a JSON error
// object) is written back on the same connection. Turn semantics are
// identical to POST /api/chat.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		out, err := s.engine.Run(r.Context(), &engine.Input{
			Message:          req.Message,
			ConversationID:   req.ConversationID,
			Model:            req.Model,
			ExtendedThinking: req.ExtendedThinking,
		})
		if err != nil {
			if writeErr := conn.WriteJSON(errorResponse{Error: core.MessageOf(err)}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(chatResponse{
			Response:       out.Text,
			ConversationID: out.ConversationID,
			Memories:       out.Memories,
		}); err != nil {
			return
		}
	}
}
