package notify

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the configured frontend origin; origin
	// policy is enforced by the CORS layer in front of this handler.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Serve handles GET /api/ws: it upgrades the connection and parks it
// under the session's username until the client goes away. Inbound
// messages are discarded; this channel is push only.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "no active session"}`, http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("notify: upgrade failed", "username", sess.Username, "error", err)
		return
	}

	h.add(sess.Username, conn)
	h.logger.Info("notify: client connected", "username", sess.Username)

	go func() {
		defer func() {
			h.remove(sess.Username, conn)
			conn.Close()
			h.logger.Info("notify: client disconnected", "username", sess.Username)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
