package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the wardrobe service. Consumers subscribe via
// EventBus.Subscribe(ctx, topic).
const (
	TopicItemCreated = "wardrobe.item.created"
	TopicItemUpdated = "wardrobe.item.updated"
	TopicItemDeleted = "wardrobe.item.deleted"
)

// ItemEvent is published after an item mutation is persisted.
// Publishing is fire-and-forget: a publish failure never fails the
// mutation that produced it.
type ItemEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemEvent builds a version-1 event for the given item.
func NewItemEvent(itemID, name string) ItemEvent {
	return ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     itemID,
		Name:       name,
		OccurredAt: time.Now().UTC(),
	}
}
