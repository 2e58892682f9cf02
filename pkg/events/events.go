// Package events publishes booking and car domain events to Kafka.
package events

import (
	"context"
	"fmt"

	"carhire/pkg/kafka"
	kafka_config "carhire/pkg/kafka/config"
	kafka_middleware "carhire/pkg/kafka/middleware"
	"carhire/pkg/logger"
	"carhire/pkg/metrics"
	"carhire/pkg/model"
)

const SchemaVersion = "1"

// Publisher emits domain events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	PublishBooking(ctx context.Context, event model.BookingEvent) error
	PublishCar(ctx context.Context, event model.CarEvent) error
	Close() error
}

type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// KafkaPublisher writes booking events to the bookings topic and car events to
// the cars topic. Both are keyed by car id so one car's history stays ordered.
type KafkaPublisher struct {
	bookings producer
	cars     producer
	source   string
}

// New returns a KafkaPublisher when enabled is true and a Noop otherwise.
func New(enabled bool, source string, log *logger.Logger, m *metrics.Metrics) (Publisher, error) {
	if !enabled {
		log.Info("Kafka disabled, domain events will not be published")
		return Noop{}, nil
	}

	cfg, err := kafka_config.Load()
	if err != nil {
		return nil, err
	}
	cfg.LogConfiguration(log.Info)

	bookings, err := kafka.NewProducer(cfg, cfg.BookingsTopic, cfg.DLQTopic(cfg.BookingsTopic), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create bookings producer: %w", err)
	}
	cars, err := kafka.NewProducer(cfg, cfg.CarsTopic, cfg.DLQTopic(cfg.CarsTopic), log)
	if err != nil {
		_ = bookings.Close()
		return nil, fmt.Errorf("failed to create cars producer: %w", err)
	}

	if cfg.EnableMiddleware {
		for _, p := range []*kafka.Producer{bookings, cars} {
			p.Use(kafka_middleware.LoggingProducerMiddleware(log))
			if m != nil {
				p.Use(kafka_middleware.MetricsProducerMiddleware(m))
			}
		}
	}

	return &KafkaPublisher{bookings: bookings, cars: cars, source: source}, nil
}

func (p *KafkaPublisher) PublishBooking(ctx context.Context, event model.BookingEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.CarID).
		WithValue(event).
		WithEventID(event.ID).
		WithEventType(event.Type).
		WithCorrelationID(event.BookingID).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		BuildE()
	if err != nil {
		return fmt.Errorf("failed to encode booking event: %w", err)
	}
	return p.bookings.Publish(ctx, msg)
}

func (p *KafkaPublisher) PublishCar(ctx context.Context, event model.CarEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.CarID).
		WithValue(event).
		WithEventID(event.ID).
		WithEventType(event.Type).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		BuildE()
	if err != nil {
		return fmt.Errorf("failed to encode car event: %w", err)
	}
	return p.cars.Publish(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	err := p.bookings.Close()
	if carsErr := p.cars.Close(); err == nil {
		err = carsErr
	}
	return err
}

type Noop struct{}

func (Noop) PublishBooking(context.Context, model.BookingEvent) error {
	return nil
}

func (Noop) PublishCar(context.Context, model.CarEvent) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
