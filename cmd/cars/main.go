package main

import (
	"context"

	carhandler "carhire/internal/cars/handler"
	carrepo "carhire/internal/cars/repository"
	carservice "carhire/internal/cars/service"
	carvalidator "carhire/internal/cars/validator"
	uploadhandler "carhire/internal/uploads/handler"
	uploadservice "carhire/internal/uploads/service"
	"carhire/pkg/app"
	"carhire/pkg/config"
	"carhire/pkg/contracts"
	"carhire/pkg/events"
	"carhire/pkg/storage"
)

const ServiceName = "cars"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()

	cfg.Log.Info("Starting Cars service")
	serverApp := app.NewApplication(cfg, ServiceName)
	serverApp.SetApp(initHandlers(cfg, serverApp)...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, serverApp *app.Application) []contracts.Handler {
	publisher, err := events.New(cfg.KafkaEnabled, ServiceName, cfg.Log, serverApp.Metrics())
	if err != nil {
		cfg.Log.Fatal("Failed to create event publisher", "error", err)
	}
	serverApp.OnShutdown(publisher)

	carService := carservice.NewCarService(
		carrepo.NewMongoCarRepository(cfg),
		carvalidator.NewCarValidator(cfg.Log),
		serverApp.Cache(),
		publisher,
		serverApp.Metrics(),
		cfg,
	)

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize object storage", "provider", cfg.StorageProvider, "error", err)
	}
	uploadService := uploadservice.NewUploadService(store, serverApp.Metrics(), cfg)

	handlers := []contracts.Handler{
		carhandler.NewCarHandler(carService, cfg.Log),
		uploadhandler.NewUploadHandler(uploadService, cfg.UploadMaxFileSize, cfg.UploadMaxFiles, cfg.Log),
	}
	if cfg.StorageProvider == config.StorageLocal {
		handlers = append(handlers, uploadhandler.NewFilesHandler(cfg.StorageLocalURL, cfg.StorageLocalPath))
	}

	cfg.Log.Info("Car service initialized",
		"database", cfg.MongoDatabaseName,
		"storage_provider", store.Name(),
	)
	return handlers
}
