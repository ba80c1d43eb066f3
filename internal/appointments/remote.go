package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

const defaultRemoteTimeout = 10 * time.Second

// RemoteBooker is the upstream appointment-booking endpoint.
type RemoteBooker interface {
	Book(ctx context.Context, req RemoteBookingRequest) (string, error)
}

// RemoteBookingRequest is the JSON body sent upstream.
type RemoteBookingRequest struct {
	RequestID string    `json:"request_id"`
	DoctorID  string    `json:"doctor_id"`
	PatientID string    `json:"patient_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Mode      Mode      `json:"mode"`
	Notes     string    `json:"notes,omitempty"`
}

type remoteBookingResponse struct {
	OK            bool   `json:"ok"`
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	Detail        string `json:"detail,omitempty"`
}

// RemoteClient posts bookings to the configured endpoint. An empty
// endpoint means every call reports ErrRemoteUnconfigured and the caller
// settles locally.
type RemoteClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewRemoteClient creates a client for the upstream booking endpoint.
func NewRemoteClient(endpoint string, timeout time.Duration, logger *logging.Logger) *RemoteClient {
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RemoteClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Book submits the booking upstream and returns the remote appointment id.
func (c *RemoteClient) Book(ctx context.Context, req RemoteBookingRequest) (string, error) {
	if c.endpoint == "" {
		return "", ErrRemoteUnconfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("appointments: encode booking: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("appointments: build booking request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("appointments: booking call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("appointments: read booking response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("appointments: booking endpoint returned %d", resp.StatusCode)
	}

	var out remoteBookingResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("appointments: decode booking response: %w", err)
	}
	if !out.OK {
		if out.Detail != "" {
			return "", fmt.Errorf("appointments: booking refused: %s", out.Detail)
		}
		return "", fmt.Errorf("appointments: booking refused with status %q", out.Status)
	}
	return out.AppointmentID, nil
}
