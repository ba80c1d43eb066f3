package appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remoteReq() RemoteBookingRequest {
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	return RemoteBookingRequest{
		RequestID: "req-1",
		DoctorID:  "drkim",
		PatientID: "amina",
		StartTime: start,
		EndTime:   start.Add(15 * time.Minute),
		Mode:      ModeVideo,
	}
}

func TestRemoteClientBook(t *testing.T) {
	var got RemoteBookingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok": true, "appointment_id": "rem-9", "status": "confirmed"}`))
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second, nil)
	id, err := c.Book(context.Background(), remoteReq())
	require.NoError(t, err)
	assert.Equal(t, "rem-9", id)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, ModeVideo, got.Mode)
}

func TestRemoteClientEmptyEndpoint(t *testing.T) {
	c := NewRemoteClient("", time.Second, nil)
	_, err := c.Book(context.Background(), remoteReq())
	assert.ErrorIs(t, err, ErrRemoteUnconfigured)
}

func TestRemoteClientNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second, nil)
	_, err := c.Book(context.Background(), remoteReq())
	assert.ErrorContains(t, err, "502")
}

func TestRemoteClientRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "status": "rejected", "detail": "slot taken"}`))
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second, nil)
	_, err := c.Book(context.Background(), remoteReq())
	assert.ErrorContains(t, err, "slot taken")
}

func TestRemoteClientBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewRemoteClient(srv.URL, time.Second, nil)
	_, err := c.Book(context.Background(), remoteReq())
	assert.Error(t, err)
}
