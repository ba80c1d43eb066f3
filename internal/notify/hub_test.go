package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simply-Coder-start/Medi-Triage/internal/events"
	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
)

// serveAs fakes the auth middleware: every connection carries the given
// session.
func serveAs(h *Hub, sess session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.Serve(w, r.WithContext(session.WithSession(r.Context(), sess)))
	}
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubDeliversToRecipient(t *testing.T) {
	bus := events.NewBus(0, nil)
	hub := NewHub(bus, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(serveAs(hub, session.Session{Username: "amina", Role: session.RolePatient}))
	defer srv.Close()
	conn := dial(t, srv.URL)

	// wait for registration before publishing
	require.Eventually(t, func() bool {
		return len(hub.connsFor("amina")) == 1
	}, time.Second, 10*time.Millisecond)

	bus.Publish(events.RequestCreatedV1{
		EventID:         "evt-1",
		RequestID:       "req-1",
		PatientUsername: "amina",
		Specialty:       "Cardiology",
		OccurredAt:      time.Now().UTC(),
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var envelope struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(frame, &envelope))
	assert.Equal(t, "request.created.v1", envelope.Type)
	assert.Contains(t, string(envelope.Data), `"request_id":"req-1"`)
}

func TestHubSkipsOtherUsers(t *testing.T) {
	bus := events.NewBus(0, nil)
	hub := NewHub(bus, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(serveAs(hub, session.Session{Username: "bola", Role: session.RolePatient}))
	defer srv.Close()
	conn := dial(t, srv.URL)

	require.Eventually(t, func() bool {
		return len(hub.connsFor("bola")) == 1
	}, time.Second, 10*time.Millisecond)

	// addressed to amina only
	bus.Publish(events.RequestCreatedV1{
		EventID:         "evt-1",
		RequestID:       "req-1",
		PatientUsername: "amina",
		OccurredAt:      time.Now().UTC(),
	})

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHubUnregistersOnClose(t *testing.T) {
	bus := events.NewBus(0, nil)
	hub := NewHub(bus, nil)

	srv := httptest.NewServer(serveAs(hub, session.Session{Username: "amina", Role: session.RolePatient}))
	defer srv.Close()
	conn := dial(t, srv.URL)

	require.Eventually(t, func() bool {
		return len(hub.connsFor("amina")) == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool {
		return len(hub.connsFor("amina")) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestServeRequiresSession(t *testing.T) {
	hub := NewHub(events.NewBus(0, nil), nil)
	srv := httptest.NewServer(http.HandlerFunc(hub.Serve))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
