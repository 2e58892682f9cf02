package kafka_middleware

import (
	"context"

	"carhire/pkg/kafka"
	"carhire/pkg/metrics"
)

const (
	DirectionPublish = "publish"
	DirectionConsume = "consume"
)

// MetricsProducerMiddleware counts publish attempts by topic and result.
func MetricsProducerMiddleware(m *metrics.Metrics) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		err := next(ctx, msg)
		m.ObserveKafka(msg.Topic, DirectionPublish, err)
		return err
	}
}

// MetricsConsumerMiddleware counts handler invocations by topic and result.
// Retries are counted once per attempt.
func MetricsConsumerMiddleware(m *metrics.Metrics) kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		err := next(ctx, msg)
		m.ObserveKafka(msg.Topic, DirectionConsume, err)
		return err
	}
}
