package kafka

import (
	"context"
	"errors"
	"testing"

	"carhire/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	err      error
	messages []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestProducer(writer, dlq *fakeWriter) *Producer {
	p := &Producer{
		writer:   writer,
		topic:    "carhire.bookings",
		dlqTopic: "carhire.bookings.dlq",
		log:      logger.Discard(),
	}
	if dlq != nil {
		p.dlqWriter = dlq
	}
	return p
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProducer_PublishValidatesMessage(t *testing.T) {
	p := newTestProducer(&fakeWriter{}, nil)

	assert.ErrorIs(t, p.Publish(context.Background(), Message{Value: []byte("x")}), ErrEmptyKey)
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k"}), ErrEmptyValue)
}

func TestProducer_PublishRunsMiddlewareInOrder(t *testing.T) {
	writer := &fakeWriter{}
	p := newTestProducer(writer, nil)

	var order []string
	p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
		order = append(order, "first")
		return next(ctx, msg)
	})
	p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
		order = append(order, "second")
		assert.Equal(t, "carhire.bookings", msg.Topic)
		return next(ctx, msg)
	})

	msg := NewMessage().WithKey("car-1").WithRawValue([]byte(`{}`)).WithEventType("booking.created").Build()
	require.NoError(t, p.Publish(context.Background(), msg))

	assert.Equal(t, []string{"first", "second"}, order)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "car-1", string(writer.messages[0].Key))
	assert.Equal(t, "booking.created", headerValue(writer.messages[0], HeaderEventType))
}

func TestProducer_FailedPublishGoesToDLQ(t *testing.T) {
	writeErr := errors.New("connection refused")
	dlq := &fakeWriter{}
	p := newTestProducer(&fakeWriter{err: writeErr}, dlq)

	msg := Message{Key: "car-1", Value: []byte(`{}`)}
	err := p.Publish(context.Background(), msg)

	assert.ErrorIs(t, err, writeErr)
	require.Len(t, dlq.messages, 1)
	assert.Equal(t, "carhire.bookings", headerValue(dlq.messages[0], HeaderOriginalTopic))
	assert.Equal(t, "connection refused", headerValue(dlq.messages[0], HeaderDLQError))
	assert.Nil(t, msg.Headers, "caller's message must not be mutated")
}

func TestProducer_PublishBatchSkipsInvalid(t *testing.T) {
	writer := &fakeWriter{}
	p := newTestProducer(writer, nil)

	err := p.PublishBatch(context.Background(), []Message{
		{Key: "a", Value: []byte("1")},
		{Key: "", Value: []byte("2")},
		{Key: "c"},
	})
	require.NoError(t, err)
	assert.Len(t, writer.messages, 1)

	assert.ErrorIs(t, p.PublishBatch(context.Background(), []Message{{Key: "x"}}), ErrInvalidMessage)
}

func TestProducer_Close(t *testing.T) {
	writer, dlq := &fakeWriter{}, &fakeWriter{}
	p := newTestProducer(writer, dlq)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
	assert.True(t, dlq.closed)
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")}), ErrProducerClosed)
}
