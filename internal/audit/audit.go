// Package audit turns booking events from Kafka into the booking_events
// audit trail.
package audit

import (
	"context"
	"strings"

	"carhire/internal/bookings/repository"
	"carhire/pkg/events"
	"carhire/pkg/kafka"
	"carhire/pkg/logger"
	"carhire/pkg/model"
)

const bookingEventPrefix = "booking."

type Recorder struct {
	repo repository.BookingEventRepository
	log  *logger.Logger
}

func NewRecorder(repo repository.BookingEventRepository, log *logger.Logger) *Recorder {
	return &Recorder{
		repo: repo,
		log:  log,
	}
}

// Handle is a kafka.MessageHandler. Undecodable or incomplete events are
// permanent failures and go to the DLQ; store failures are retried.
func (r *Recorder) Handle(ctx context.Context, msg kafka.Message) error {
	if eventType := msg.GetEventType(); eventType != "" && !strings.HasPrefix(eventType, bookingEventPrefix) {
		r.log.Debug("Skipping non-booking event", "event_type", eventType, "offset", msg.Offset)
		return nil
	}

	if version, ok := msg.GetHeader(kafka.HeaderSchemaVersion); ok && version != events.SchemaVersion {
		return kafka.NewPermanentError("unsupported booking event schema version", nil).
			WithDetail("schema_version", version)
	}

	var event model.BookingEvent
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("failed to decode booking event", err)
	}
	if event.ID == "" {
		event.ID = msg.GetEventID()
	}
	if event.BookingID == "" {
		event.BookingID = msg.GetCorrelationID()
	}
	if event.ID == "" || event.BookingID == "" || event.Type == "" {
		return kafka.NewPermanentError("booking event is missing id, bookingId or type", nil).
			WithDetail("offset", msg.Offset)
	}

	if err := r.repo.Append(ctx, &event); err != nil {
		return kafka.NewTransientError("failed to append booking event", err)
	}

	r.log.Info("Booking event recorded",
		"event_id", event.ID,
		"event_type", event.Type,
		"booking_id", event.BookingID,
	)
	return nil
}
