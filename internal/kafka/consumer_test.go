package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTicketEvent(t *testing.T) {
	payload := []byte(`{
		"type": "order_created",
		"order_number": "ord-9",
		"flight_id": 4,
		"row": 1,
		"seat": 2,
		"email": "user@example.com",
		"created_at": "2024-07-01T12:00:00Z"
	}`)

	event, err := decodeTicketEvent(payload)
	assert.NoError(t, err)
	assert.Equal(t, "order_created", event.Type)
	assert.Equal(t, "ord-9", event.OrderNumber)
	assert.Equal(t, int64(4), event.FlightID)
	assert.Equal(t, 1, event.Row)
	assert.Equal(t, 2, event.Seat)
	assert.Equal(t, "user@example.com", event.Email)
	assert.Equal(t, time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC), event.CreatedAt)
}

func TestDecodeTicketEvent_MalformedJSON(t *testing.T) {
	_, err := decodeTicketEvent([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodeTicketEvent_MissingType(t *testing.T) {
	_, err := decodeTicketEvent([]byte(`{"order_number": "ord-9"}`))
	assert.Error(t, err)
}
