// Package notify pushes refresh signals to connected clients. Lifecycle
// services publish typed events on the bus; the hub fans each event out
// to the websocket connections of the usernames it names. Delivery is
// best effort: a party that is not connected misses the signal and picks
// the change up on its next list reload.
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Simply-Coder-start/Medi-Triage/internal/events"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

const writeTimeout = 5 * time.Second

// Envelope is the frame sent to clients.
type Envelope struct {
	Type string       `json:"type"`
	Data events.Event `json:"data"`
}

// Hub tracks live connections keyed by username.
type Hub struct {
	bus    *events.Bus
	logger *logging.Logger

	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]struct{}
}

// NewHub creates a hub over the event bus.
func NewHub(bus *events.Bus, logger *logging.Logger) *Hub {
	if logger == nil {
		logger = logging.Default()
	}
	return &Hub{
		bus:    bus,
		logger: logger,
		conns:  make(map[string]map[*websocket.Conn]struct{}),
	}
}

// Run consumes bus events until ctx is done. Call it in its own
// goroutine.
func (h *Hub) Run(ctx context.Context) {
	ch, cancel := h.bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			h.dispatch(evt)
		}
	}
}

func (h *Hub) dispatch(evt events.Event) {
	frame, err := json.Marshal(Envelope{Type: evt.Type(), Data: evt})
	if err != nil {
		h.logger.Error("notify: encode event", "type", evt.Type(), "error", err)
		return
	}

	for _, username := range evt.Recipients() {
		for _, conn := range h.connsFor(username) {
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.logger.Warn("notify: write failed, dropping connection",
					"username", username,
					"error", err,
				)
				h.remove(username, conn)
				conn.Close()
			}
		}
	}
}

func (h *Hub) connsFor(username string) []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	set := h.conns[username]
	out := make([]*websocket.Conn, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

func (h *Hub) add(username string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[username] == nil {
		h.conns[username] = make(map[*websocket.Conn]struct{})
	}
	h.conns[username][conn] = struct{}{}
}

func (h *Hub) remove(username string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.conns[username]
	delete(set, conn)
	if len(set) == 0 {
		delete(h.conns, username)
	}
}
