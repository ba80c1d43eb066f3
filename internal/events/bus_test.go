package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus(4, nil)

	chA, cancelA := bus.Subscribe()
	defer cancelA()
	chB, cancelB := bus.Subscribe()
	defer cancelB()

	evt := RequestCreatedV1{EventID: "e1", RequestID: "r1", PatientUsername: "amina"}
	bus.Publish(evt)

	for _, ch := range []<-chan Event{chA, chB} {
		select {
		case got := <-ch:
			assert.Equal(t, "request.created.v1", got.Type())
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestPublishNeverBlocksOnFullBuffer(t *testing.T) {
	bus := NewBus(1, nil)
	ch, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		bus.Publish(RequestCreatedV1{EventID: "e1"})
		bus.Publish(RequestCreatedV1{EventID: "e2"}) // buffer full, dropped
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	got := <-ch
	require.IsType(t, RequestCreatedV1{}, got)
	assert.Equal(t, "e1", got.(RequestCreatedV1).EventID)
}

func TestCancelClosesChannel(t *testing.T) {
	bus := NewBus(1, nil)
	ch, cancel := bus.Subscribe()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// publishing after cancel is harmless
	bus.Publish(RequestCreatedV1{EventID: "e1"})
}

func TestRecipients(t *testing.T) {
	assert.Equal(t,
		[]string{"amina", "drkim"},
		AppointmentCreatedV1{PatientUsername: "amina", DoctorUsername: "drkim"}.Recipients())

	assert.Equal(t,
		[]string{"amina"},
		RequestStatusChangedV1{PatientUsername: "amina"}.Recipients())

	assert.Equal(t,
		[]string{"amina", "drkim"},
		RequestStatusChangedV1{PatientUsername: "amina", DoctorUsername: "drkim"}.Recipients())
}
