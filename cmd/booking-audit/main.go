package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"carhire/internal/audit"
	"carhire/internal/bookings/repository"
	"carhire/internal/health"
	"carhire/pkg/config"
	"carhire/pkg/kafka"
	kafka_config "carhire/pkg/kafka/config"
	kafka_middleware "carhire/pkg/kafka/middleware"
	"carhire/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

const ServiceName = "booking-audit"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	m := metrics.New(ServiceName)
	recorder := audit.NewRecorder(repository.NewBookingEventRepository(cfg), cfg.Log)

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		kafkaCfg.BookingsTopic,
		kafkaCfg.AuditGroupID,
		kafkaCfg.DLQTopic(kafkaCfg.BookingsTopic),
		recorder.Handle,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
		consumer.Use(kafka_middleware.MetricsConsumerMiddleware(m))
	}

	m.RegisterConsumerLag(kafkaCfg.BookingsTopic, kafkaCfg.AuditGroupID, consumer.Lag)

	server := newOpsServer(cfg, m)
	go func() {
		cfg.Log.Info("Starting ops server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cfg.Log.Error("Ops server failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting booking audit worker", "topic", kafkaCfg.BookingsTopic, "group_id", kafkaCfg.AuditGroupID)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped unexpectedly", "error", err)
	}

	cfg.Log.Info("Shutting down booking audit worker")
	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close Kafka consumer", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		cfg.Log.Error("Ops server shutdown failed", "error", err)
	}
}

// newOpsServer exposes health probes and metrics for the worker.
func newOpsServer(cfg *config.Config, m *metrics.Metrics) *http.Server {
	router := httprouter.New()
	health.NewHealthHandler(cfg.Log).
		AddCheck("mongo", health.MongoCheck(cfg.Client.Mongo)).
		RegisterRoutes(router)
	router.Handler(http.MethodGet, cfg.MetricsPath, m.Handler())

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
