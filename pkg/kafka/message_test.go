package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBuilder_Build(t *testing.T) {
	msg := NewMessage().
		WithKey("car-1").
		WithValue(map[string]string{"status": "pending"}).
		WithEventType("booking.created").
		WithSource("bookings").
		Build()

	assert.Equal(t, "car-1", msg.Key)
	assert.JSONEq(t, `{"status":"pending"}`, string(msg.Value))
	assert.Equal(t, "booking.created", msg.GetEventType())
	assert.NotEmpty(t, msg.GetEventID())
	assert.NotEmpty(t, msg.Headers[HeaderTimestamp])
	assert.Equal(t, "bookings", msg.Headers[HeaderSource])
}

func TestMessageBuilder_BuildE_ReportsEncodingError(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).BuildE()
	assert.Error(t, err)
}

func TestMessage_DecodeValue(t *testing.T) {
	msg := NewMessage().WithKey("k").WithValue(struct {
		CarID string `json:"carId"`
	}{CarID: "abc"}).Build()

	var out struct {
		CarID string `json:"carId"`
	}
	require.NoError(t, msg.DecodeValue(&out))
	assert.Equal(t, "abc", out.CarID)
}

func TestMessage_RetryCount(t *testing.T) {
	msg := Message{}
	assert.Equal(t, 0, msg.GetRetryCount())

	for range 12 {
		msg.IncrementRetryCount()
	}
	assert.Equal(t, 12, msg.GetRetryCount())
	assert.Equal(t, "12", msg.Headers[HeaderRetryCount])

	msg.Headers[HeaderRetryCount] = "garbage"
	assert.Equal(t, 0, msg.GetRetryCount())
}

func TestMessage_Headers(t *testing.T) {
	msg := NewMessage().
		WithKey("car-1").
		WithValue("{}").
		WithCorrelationID("b-1").
		WithSchemaVersion("1").
		WithHeader("tenant", "north").
		Build()

	assert.Equal(t, "b-1", msg.GetCorrelationID())

	version, ok := msg.GetHeader(HeaderSchemaVersion)
	assert.True(t, ok)
	assert.Equal(t, "1", version)

	tenant, ok := msg.GetHeader("tenant")
	assert.True(t, ok)
	assert.Equal(t, "north", tenant)

	_, ok = msg.GetHeader("missing")
	assert.False(t, ok)
}
