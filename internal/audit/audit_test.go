package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"carhire/pkg/events"
	"carhire/pkg/kafka"
	"carhire/pkg/logger"
	"carhire/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryEventRepository struct {
	events    []*model.BookingEvent
	appendErr error
}

func (m *memoryEventRepository) Append(_ context.Context, event *model.BookingEvent) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.events = append(m.events, event)
	return nil
}

func (m *memoryEventRepository) FindByBooking(_ context.Context, bookingID string) ([]*model.BookingEvent, error) {
	var out []*model.BookingEvent
	for _, e := range m.events {
		if e.BookingID == bookingID {
			out = append(out, e)
		}
	}
	return out, nil
}

func bookingMessage(t *testing.T, event model.BookingEvent) kafka.Message {
	t.Helper()
	msg, err := kafka.NewMessage().
		WithKey(event.CarID).
		WithValue(event).
		WithEventID(event.ID).
		WithEventType(event.Type).
		BuildE()
	require.NoError(t, err)
	return msg
}

func TestRecorder_Handle(t *testing.T) {
	repo := &memoryEventRepository{}
	rec := NewRecorder(repo, logger.Discard())

	event := model.BookingEvent{
		ID:         "evt-1",
		Type:       model.EventBookingCreated,
		BookingID:  "b-1",
		CarID:      "car-1",
		Status:     model.StatusPending,
		OccurredAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, rec.Handle(context.Background(), bookingMessage(t, event)))

	require.Len(t, repo.events, 1)
	assert.Equal(t, "b-1", repo.events[0].BookingID)
	assert.True(t, event.OccurredAt.Equal(repo.events[0].OccurredAt))
}

func TestRecorder_Handle_Failures(t *testing.T) {
	valid := model.BookingEvent{ID: "evt-1", Type: model.EventBookingCreated, BookingID: "b-1", CarID: "car-1"}

	tests := []struct {
		name          string
		msg           func(t *testing.T) kafka.Message
		appendErr     error
		wantTransient bool
	}{
		{
			name: "undecodable payload",
			msg: func(t *testing.T) kafka.Message {
				return kafka.NewMessage().WithKey("car-1").WithRawValue([]byte("{not json")).WithEventType(model.EventBookingCreated).Build()
			},
		},
		{
			name: "missing booking id",
			msg: func(t *testing.T) kafka.Message {
				e := valid
				e.BookingID = ""
				return bookingMessage(t, e)
			},
		},
		{
			name: "unsupported schema version",
			msg: func(t *testing.T) kafka.Message {
				return kafka.NewMessage().WithKey("car-1").WithValue(valid).WithEventType(valid.Type).WithSchemaVersion("2").Build()
			},
		},
		{
			name:          "store failure",
			msg:           func(t *testing.T) kafka.Message { return bookingMessage(t, valid) },
			appendErr:     errors.New("mongo unavailable"),
			wantTransient: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder(&memoryEventRepository{appendErr: tt.appendErr}, logger.Discard())

			err := rec.Handle(context.Background(), tt.msg(t))
			require.Error(t, err)

			var kerr *kafka.KafkaError
			require.True(t, errors.As(err, &kerr))
			assert.Equal(t, tt.wantTransient, kerr.IsTransient())
		})
	}
}

func TestRecorder_Handle_SkipsForeignEvents(t *testing.T) {
	repo := &memoryEventRepository{}
	msg := kafka.NewMessage().WithKey("car-1").WithValue(model.CarEvent{ID: "c"}).WithEventType(model.EventCarCreated).Build()

	require.NoError(t, NewRecorder(repo, logger.Discard()).Handle(context.Background(), msg))
	assert.Empty(t, repo.events)
}

func TestRecorder_Handle_BookingIDFromCorrelation(t *testing.T) {
	repo := &memoryEventRepository{}
	event := model.BookingEvent{ID: "evt-2", Type: model.EventBookingDeleted, CarID: "car-1"}
	msg := kafka.NewMessage().
		WithKey(event.CarID).
		WithValue(event).
		WithEventType(event.Type).
		WithCorrelationID("b-9").
		WithSchemaVersion(events.SchemaVersion).
		Build()

	require.NoError(t, NewRecorder(repo, logger.Discard()).Handle(context.Background(), msg))
	require.Len(t, repo.events, 1)
	assert.Equal(t, "b-9", repo.events[0].BookingID)
}
