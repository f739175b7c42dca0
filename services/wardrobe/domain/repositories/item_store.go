package repositories

import (
	"context"
	"time"

	"github.com/ghuser/recount/services/wardrobe/domain/models"
)

// ItemStore is the persistence interface for the wardrobe collection.
// The domain layer owns this interface; infrastructure implements it.
//
// The collection is an ordered set: every record has an entry in a
// secondary ordering index keyed by insertion time, and listing order is
// that index read newest-first. The index and the record table are not
// updated atomically with respect to each other; readers tolerate skew
// (see ListAll).
type ItemStore interface {
	// Get returns the item with the given id, with read-time defaults
	// filled in. Returns domain.ErrItemNotFound when the id is absent.
	Get(ctx context.Context, id string) (*models.ClothingItem, error)

	// Put upserts the record at item.ID wholesale. The ordering index is
	// untouched; use Append for new items.
	Put(ctx context.Context, item *models.ClothingItem) error

	// Append inserts a new item into both the record table and the
	// ordering index. orderingKey determines the item's position in
	// newest-first listings.
	Append(ctx context.Context, item *models.ClothingItem, orderingKey time.Time) error

	// Delete removes the record and its ordering-index entry. Deleting a
	// missing id is not an error.
	Delete(ctx context.Context, id string) error

	// ListAll returns every item newest-first. Index entries whose record
	// lookup fails (dangling entries) are silently skipped.
	ListAll(ctx context.Context) ([]models.ClothingItem, error)

	// Count returns the number of entries in the ordering index.
	Count(ctx context.Context) (int, error)
}
