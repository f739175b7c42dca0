package app

import (
	"github.com/ghuser/recount/pkg/cache"
	"github.com/ghuser/recount/pkg/events"
	"github.com/ghuser/recount/pkg/logger"
	"github.com/ghuser/recount/services/wardrobe/infrastructure/imaging"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger      logger.Logger
	Redis       *cache.RedisClient
	EventBus    *events.EventBus
	Uploader    *imaging.CloudinaryUploader // nil when CLOUDINARY_URL is unset
	ImageFolder string
}
