package services

import (
	"github.com/ghuser/recount/pkg/app"
	"github.com/ghuser/recount/services/wardrobe/infrastructure/persistence/redisstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all wardrobe application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	store := redisstore.NewItemStore(a.Redis)

	// A typed nil pointer must not become a non-nil interface value.
	var uploader ImageUploader
	if a.Uploader != nil {
		uploader = a.Uploader
	}

	return &Services{
		Item: NewItemService(store, uploader, a.EventBus, a.Logger, a.ImageFolder),
	}
}
