package main

import (
	adminhandler "carhire/internal/admin/handler"
	"carhire/internal/settings/handler"
	"carhire/internal/settings/repository"
	"carhire/internal/settings/service"
	"carhire/internal/settings/validator"
	"carhire/pkg/app"
	"carhire/pkg/config"
)

const ServiceName = "settings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()

	cfg.Log.Info("Starting Settings service")
	serverApp := app.NewApplication(cfg, ServiceName)

	settingsService := service.NewSettingsService(
		repository.NewMongoSettingsRepository(cfg),
		validator.NewSettingsValidator(cfg.Log),
		serverApp.Cache(),
		serverApp.Metrics(),
		cfg,
	)
	if !serverApp.Tokens().Enabled() || cfg.AdminPasswordHash == "" {
		cfg.Log.Warn("Admin authentication not configured, admin routes will answer 503")
	}

	serverApp.SetApp(
		handler.NewSettingsHandler(settingsService, cfg.Log),
		adminhandler.NewSessionHandler(serverApp.Tokens(), cfg.AdminPasswordHash, cfg.Log),
	)
	serverApp.Run()
}
