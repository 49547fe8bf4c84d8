// Supervision Event Type API
//
// CRUD and text-search API for supervised event types, backed by MongoDB.
//
//	@title			Supervision Event Type API
//	@version		1.0
//	@description	Create, read, update, delete, list and search event types.
//
//	@host		localhost:8080
//	@BasePath	/api
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"go.supervision.dev/internal/common/health"
	"go.supervision.dev/internal/common/lifecycle"
	commonmongo "go.supervision.dev/internal/common/mongo"
	"go.supervision.dev/internal/platform/api"
	"go.supervision.dev/internal/platform/common"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	setupLogging()

	slog.Info("Starting Supervision Event Type API",
		"version", version,
		"build_time", buildTime)

	ctx := context.Background()

	// ========================================
	// 1. INFRASTRUCTURE INITIALIZATION
	// ========================================
	app, cleanup, err := lifecycle.Initialize(ctx, lifecycle.AppOptions{
		NeedsMongoDB: true,
	})
	if err != nil {
		slog.Error("Failed to initialize", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Indexes (unique _id is implicit; name + text index back list/search)
	if err := commonmongo.NewIndexInitializer(app.Mongo).Initialize(ctx); err != nil {
		slog.Error("Failed to initialize indexes", "error", err)
		os.Exit(1)
	}

	// ========================================
	// 2. COMPONENT WIRING
	// ========================================
	healthChecker := health.NewChecker()
	healthChecker.AddReadinessCheck(health.MongoDBCheck(func() error {
		return app.Mongo.Ping(ctx)
	}))

	apiHandlers := api.NewHandlers(app.Mongo.Database())

	httpRouter := setupHTTPRouter(app, healthChecker, apiHandlers)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Config.HTTP.Port),
		Handler:      httpRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ========================================
	// 3. RUN UNTIL SHUTDOWN
	// ========================================
	httpService := lifecycle.NewHTTPService("supervision-api", httpServer)

	slog.Info("Supervision API ready", "port", app.Config.HTTP.Port)

	if err := lifecycle.Run(ctx, httpService); err != nil {
		slog.Error("Service error", "error", err)
		os.Exit(1)
	}

	slog.Info("Supervision Event Type API stopped")
}

// setupLogging configures the slog default logger.
func setupLogging() {
	logLevel := slog.LevelInfo
	if os.Getenv("SUPERVISION_DEV") == "true" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// setupHTTPRouter creates the HTTP router with all routes and middleware.
func setupHTTPRouter(
	app *lifecycle.App,
	healthChecker *health.Checker,
	apiHandlers *api.Handlers,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(common.TracingMiddleware)
	r.Use(common.RequestLoggingMiddleware(slog.Default()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.Config.HTTP.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Correlation-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints
	r.Get("/q/health", healthChecker.HandleHealth)
	r.Get("/q/health/live", healthChecker.HandleLive)
	r.Get("/q/health/ready", healthChecker.HandleReady)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/q/metrics", promhttp.Handler())

	// API routes
	apiHandlers.MountRoutes(r)

	return r
}
