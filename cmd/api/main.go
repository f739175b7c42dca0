package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/recount/docs/swagger"
	"github.com/ghuser/recount/pkg/app"
	"github.com/ghuser/recount/pkg/cache"
	"github.com/ghuser/recount/pkg/config"
	"github.com/ghuser/recount/pkg/errhttp"
	"github.com/ghuser/recount/pkg/events"
	"github.com/ghuser/recount/pkg/httpx"
	"github.com/ghuser/recount/pkg/logger"
	"github.com/ghuser/recount/pkg/telemetry"
	wardrobeApi "github.com/ghuser/recount/services/wardrobe/application/api"
	appsvcs "github.com/ghuser/recount/services/wardrobe/application/services"
	domainevents "github.com/ghuser/recount/services/wardrobe/domain/events"
	"github.com/ghuser/recount/services/wardrobe/infrastructure/imaging"
)

// @title					Recount API
// @version				1.0
// @description			Personal wardrobe tracker: items, wear/wash counts, and derived statistics.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	errhttp.HideInternalErrors(cfg.Environment == config.EnvProduction)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	var uploader *imaging.CloudinaryUploader
	if cfg.CloudinaryURL != "" {
		uploader, err = imaging.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			log.Error("failed to initialize cloudinary", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("cloudinary configured", "folder", cfg.CloudinaryFolder)
	} else {
		log.Warn("CLOUDINARY_URL not set, image uploads disabled")
	}

	appConfig := &app.Application{
		Logger:      log,
		Redis:       redisClient,
		EventBus:    eventBus,
		Uploader:    uploader,
		ImageFolder: cfg.CloudinaryFolder,
	}

	startActivityLog(ctx, eventBus, log)

	if cfg.SeedOnEmpty {
		svcs := appsvcs.New(appConfig)
		count, seeded, err := svcs.Item.Seed(ctx)
		if err != nil {
			log.Error("failed to seed sample wardrobe", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		if seeded {
			log.Info("seeded sample wardrobe", "count", count)
		}
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Redis:    redisClient,
		EventBus: eventBus,
		Uploader: pingerOrNil(uploader),
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	wardrobeApi.WardrobeRoutes(r, a)
}

// startActivityLog subscribes to wardrobe domain events and logs each one.
// The subscriber is advisory; its errors are drained and logged.
func startActivityLog(ctx context.Context, bus *events.EventBus, log logger.Logger) {
	topics := []string{
		domainevents.TopicItemCreated,
		domainevents.TopicItemUpdated,
		domainevents.TopicItemDeleted,
	}
	for _, topic := range topics {
		errCh, err := bus.Subscribe(ctx, topic, func(msgCtx context.Context, msg *message.Message) error {
			var event domainevents.ItemEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				return err
			}
			log.InfoContext(msgCtx, "wardrobe activity",
				"topic", topic,
				"item_id", event.ItemID,
				"name", event.Name,
			)
			return nil
		})
		if err != nil {
			log.Error("failed to subscribe to activity topic", "topic", topic, "error", err)
			continue
		}
		go func(topic string) {
			for err := range errCh {
				log.Error("activity subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}
}

// pingerOrNil avoids a typed-nil *CloudinaryUploader turning into a
// non-nil HealthChecker interface.
func pingerOrNil(u *imaging.CloudinaryUploader) httpx.HealthChecker {
	if u == nil {
		return nil
	}
	return u
}
