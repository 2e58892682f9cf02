package main

import (
	"carhire/internal/bookings/handler"
	"carhire/internal/bookings/repository"
	"carhire/internal/bookings/service"
	"carhire/internal/bookings/validator"
	carrepo "carhire/internal/cars/repository"
	settingsrepo "carhire/internal/settings/repository"
	settingsservice "carhire/internal/settings/service"
	settingsvalidator "carhire/internal/settings/validator"
	"carhire/pkg/app"
	"carhire/pkg/config"
	"carhire/pkg/events"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()

	cfg.Log.Info("Starting Bookings service")
	serverApp := app.NewApplication(cfg, ServiceName)
	bookingService := initServices(cfg, serverApp)
	serverApp.SetApp(handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config, serverApp *app.Application) service.BookingService {
	publisher, err := events.New(cfg.KafkaEnabled, ServiceName, cfg.Log, serverApp.Metrics())
	if err != nil {
		cfg.Log.Fatal("Failed to create event publisher", "error", err)
	}
	serverApp.OnShutdown(publisher)

	// Pricing is read through the settings service so bookings see the same
	// defaults and cache as the settings API.
	pricing := settingsservice.NewSettingsService(
		settingsrepo.NewMongoSettingsRepository(cfg),
		settingsvalidator.NewSettingsValidator(cfg.Log),
		serverApp.Cache(),
		serverApp.Metrics(),
		cfg,
	)

	bookingService := service.NewBookingService(service.Dependencies{
		Repo:      repository.NewMongoBookingRepository(cfg),
		LockRepo:  repository.NewBookingLockRepository(cfg),
		EventRepo: repository.NewBookingEventRepository(cfg),
		Cars:      carrepo.NewMongoCarRepository(cfg),
		Pricing:   pricing,
		Validator: validator.NewBookingValidator(cfg.Log),
		Cache:     serverApp.Cache(),
		Events:    publisher,
		Metrics:   serverApp.Metrics(),
	}, cfg)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}
