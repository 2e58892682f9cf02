package app

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"carhire/internal/health"
	"carhire/pkg/auth"
	"carhire/pkg/cache"
	"carhire/pkg/config"
	"carhire/pkg/contracts"
	"carhire/pkg/metrics"
	"carhire/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

// UploadPathPrefix is the route prefix that accepts multipart bodies and the
// larger upload size cap.
const UploadPathPrefix = "/api/upload"

type Application struct {
	cfg              *config.Config
	server           *http.Server
	metrics          *metrics.Metrics
	tokens           *auth.TokenManager
	cache            cache.Cache
	idempotencyStore middleware.IdempotencyStore
	rateLimiter      *middleware.RateLimiter
	healthHandler    *http.Handler
	appHttpHandler   *http.Handler
	closers          []io.Closer
}

// NewApplication wires the shared infrastructure of an HTTP service. Mongo
// and Redis must already be connected on cfg.Client.
func NewApplication(cfg *config.Config, serviceName string) *Application {
	return &Application{
		cfg:     cfg,
		metrics: metrics.New(serviceName),
		tokens:  auth.NewTokenManager(cfg.AdminJWTSecret, cfg.AdminSessionTTL),
		cache:   cache.New(cfg.Client.Redis),
	}
}

func (a *Application) Metrics() *metrics.Metrics {
	return a.metrics
}

func (a *Application) Cache() cache.Cache {
	return a.cache
}

func (a *Application) Tokens() *auth.TokenManager {
	return a.tokens
}

// Admin returns the guard handlers wrap their admin-only routes with.
func (a *Application) Admin() contracts.AdminGuard {
	return middleware.RequireAdmin(a.tokens, a.cfg.Log)
}

// OnShutdown registers a resource closed after the server has drained.
func (a *Application) OnShutdown(c io.Closer) {
	a.closers = append(a.closers, c)
}

func (a *Application) SetApp(appHandlers ...contracts.Handler) {
	a.setHealthHandler()
	a.setAppHandler(appHandlers)
	a.setAppServer()
}

func (a *Application) setHealthHandler() {
	healthRouter := httprouter.New()
	healthHandler := health.NewHealthHandler(a.cfg.Log).
		AddCheck("mongo", health.MongoCheck(a.cfg.Client.Mongo))
	if a.cfg.Client.Redis != nil {
		healthHandler.AddCheck("redis", health.RedisCheck(a.cfg.Client.Redis))
	}
	healthHandler.RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(a.cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(a.cfg.Log)(healthHTTPHandler)
	a.healthHandler = &healthHTTPHandler
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(appHandlers []contracts.Handler) {
	appRouter := httprouter.New()
	admin := a.Admin()
	for _, h := range appHandlers {
		h.RegisterRoutes(appRouter, admin)
	}

	if a.cfg.Client.Redis != nil {
		a.idempotencyStore = middleware.NewRedisIdempotencyStore(a.cfg.Client.Redis, a.cfg.IdempotencyTTL, a.cfg.Log)
	} else {
		a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)
	}
	a.rateLimiter = middleware.NewRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		middleware.ClientIP,
		a.cfg.Log,
	)

	var appHttpHandler http.Handler = appRouter
	appHttpHandler = middleware.Idempotency(a.idempotencyStore, middleware.DefaultIdempotencyHeader)(appHttpHandler)
	appHttpHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHttpHandler)
	appHttpHandler = middleware.RateLimit(a.rateLimiter)(appHttpHandler)
	appHttpHandler = middleware.ContentTypeValidation(a.cfg.Log, UploadPathPrefix)(appHttpHandler)
	appHttpHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize), map[string]int64{
		UploadPathPrefix: int64(a.cfg.UploadMaxRequestSize),
	})(appHttpHandler)
	appHttpHandler = middleware.Metrics(a.metrics)(appHttpHandler)
	appHttpHandler = middleware.RequestLogging(a.cfg.Log)(appHttpHandler)
	appHttpHandler = middleware.Recovery(a.cfg.Log)(appHttpHandler)
	a.appHttpHandler = &appHttpHandler
	a.cfg.Log.Info("Application endpoints configured with full middleware stack")
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", *a.healthHandler)
	mux.Handle("/ready", *a.healthHandler)
	mux.Handle(a.cfg.MetricsPath, a.metrics.Handler())
	mux.Handle("/", *a.appHttpHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port, "metrics_path", a.cfg.MetricsPath)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Stopping background workers...")
	a.idempotencyStore.Stop()
	a.rateLimiter.Stop()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.cfg.Log.Error("Failed to close resource", "error", err)
		}
	}
	a.cfg.Log.Info("Background workers stopped")

	a.cfg.GracefulShutdown()
	a.cfg.Log.Info("Server stopped gracefully")
}
