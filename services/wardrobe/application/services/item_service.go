package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	pkgevents "github.com/ghuser/recount/pkg/events"
	"github.com/ghuser/recount/pkg/logger"
	wardrobedomain "github.com/ghuser/recount/services/wardrobe/domain"
	domainevents "github.com/ghuser/recount/services/wardrobe/domain/events"
	"github.com/ghuser/recount/services/wardrobe/domain/models"
	"github.com/ghuser/recount/services/wardrobe/domain/repositories"
	"github.com/ghuser/recount/services/wardrobe/domain/stats"
)

// ImageUploader is the external image hosting collaborator. Implementations
// take raw bytes and return a stable hosted URL.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, folder string) (string, error)
}

// CreateItem is the draft for a new wardrobe item. Image carries the raw
// upload bytes when the client attached a file; nil means no image.
type CreateItem struct {
	Name         string
	Category     models.Category
	BoughtFrom   string
	Price        float64
	PurchaseDate string
	Notes        string
	Image        []byte
}

// StatsOverview is the derived-statistics view of the whole collection.
type StatsOverview struct {
	stats.Summary
	MostWorn []models.ClothingItem `json:"mostWorn"`
	Recent   []models.ClothingItem `json:"recent"`
}

// ItemService orchestrates wardrobe mutations and reads. Writes go
// wholesale to the store (last write wins; no compare-and-swap), events
// are published fire-and-forget after successful mutations.
type ItemService struct {
	store    repositories.ItemStore
	uploader ImageUploader
	bus      *pkgevents.EventBus
	log      logger.Logger
	folder   string

	// Item ids are insertion-time millis. The guard keeps them unique
	// when two creates land in the same millisecond.
	idMu   sync.Mutex
	lastID int64
}

// NewItemService wires an ItemService. uploader may be nil (uploads
// disabled, items fall back to the placeholder image); bus may be nil
// (events disabled).
func NewItemService(store repositories.ItemStore, uploader ImageUploader, bus *pkgevents.EventBus, log logger.Logger, folder string) *ItemService {
	return &ItemService{store: store, uploader: uploader, bus: bus, log: log, folder: folder}
}

// List returns the full collection newest-first.
func (s *ItemService) List(ctx context.Context) ([]models.ClothingItem, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get returns a single item by id.
func (s *ItemService) Get(ctx context.Context, id string) (*models.ClothingItem, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Create validates the draft, uploads the image when one is attached,
// assigns a fresh id, and appends the item to the collection.
func (s *ItemService) Create(ctx context.Context, draft CreateItem) (*models.ClothingItem, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, wardrobedomain.ErrNameRequired
	}
	if !draft.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", wardrobedomain.ErrInvalidCategory, draft.Category)
	}

	image := ""
	if len(draft.Image) > 0 && s.uploader != nil {
		url, err := s.uploader.Upload(ctx, draft.Image, s.folder)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		image = url
	}

	now := time.Now().UTC()
	purchaseDate := draft.PurchaseDate
	if purchaseDate == "" {
		purchaseDate = now.Format(time.DateOnly)
	}

	item := &models.ClothingItem{
		ID:           s.nextID(now),
		Name:         name,
		Category:     draft.Category,
		Image:        image,
		BoughtFrom:   strings.TrimSpace(draft.BoughtFrom),
		Price:        max(0, draft.Price),
		PurchaseDate: purchaseDate,
		Notes:        draft.Notes,
	}
	item.FillDefaults()

	if err := s.store.Append(ctx, item, now); err != nil {
		return nil, fmt.Errorf("append item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemCreated, item)
	return item, nil
}

// Update loads the current record, merges the patch into it (the stored id
// always wins), optionally replaces the image, and writes the whole record
// back. Two concurrent updates of the same id race; the later Put wins.
func (s *ItemService) Update(ctx context.Context, id string, patch models.ItemPatch, image []byte) (*models.ClothingItem, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", wardrobedomain.ErrInvalidCategory, *patch.Category)
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if len(image) > 0 && s.uploader != nil {
		url, err := s.uploader.Upload(ctx, image, s.folder)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		patch.Image = &url
	}

	patch.Apply(item)
	item.FillDefaults()

	if err := s.store.Put(ctx, item); err != nil {
		return nil, fmt.Errorf("put item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemUpdated, item)
	return item, nil
}

// Delete removes the item and its ordering entry. Deleting an id that was
// never created (or is already gone) succeeds silently.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.publish(ctx, domainevents.TopicItemDeleted, &models.ClothingItem{ID: id})
	return nil
}

// Stats derives the statistics overview from a fresh collection snapshot.
// Nothing is persisted; every call recomputes from the current state.
func (s *ItemService) Stats(ctx context.Context) (*StatsOverview, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return &StatsOverview{
		Summary:  stats.Summarize(items),
		MostWorn: stats.MostWorn(items, stats.DefaultMostWornCount),
		Recent:   stats.Recent(items, stats.DefaultRecentCount),
	}, nil
}

// nextID allocates a time-based id, bumping by one when the millisecond
// clock has not advanced since the previous allocation.
func (s *ItemService) nextID(now time.Time) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	ms := now.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return models.NewItemID(time.UnixMilli(ms))
}

// publish emits a domain event. Failures are logged and swallowed: events
// are advisory and must never fail the mutation that produced them.
func (s *ItemService) publish(ctx context.Context, topic string, item *models.ClothingItem) {
	if s.bus == nil {
		return
	}
	event := domainevents.NewItemEvent(item.ID, item.Name)
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal domain event", "topic", topic, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.ErrorContext(ctx, "publish domain event", "topic", topic, "error", err)
	}
}
