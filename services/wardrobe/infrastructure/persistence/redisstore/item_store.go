// Package redisstore implements the wardrobe ItemStore on Redis.
//
// Layout: one JSON record per item at "wardrobe:item:{id}" plus a sorted
// set "wardrobe:ids" scoring each id by its insertion time in epoch
// milliseconds. Listing reads the sorted set newest-first and multi-gets
// the records in one pipeline round trip.
//
// The two keys are written without a cross-key transaction. A fault
// between the record write and the index write can leave a dangling index
// entry (skipped on list) or an orphaned record (invisible to listing);
// both are tolerated per the store contract.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/recount/pkg/cache"
	wardrobedomain "github.com/ghuser/recount/services/wardrobe/domain"
	"github.com/ghuser/recount/services/wardrobe/domain/models"
)

const (
	indexKey      = "wardrobe:ids"
	itemKeyPrefix = "wardrobe:item:"
)

// ItemStore implements repositories.ItemStore against Redis.
type ItemStore struct {
	client *cache.RedisClient
}

// NewItemStore returns an ItemStore backed by the given Redis client.
func NewItemStore(client *cache.RedisClient) *ItemStore {
	return &ItemStore{client: client}
}

// Get returns the item stored at id with read-time defaults applied.
// Returns ErrItemNotFound when no record exists.
func (s *ItemStore) Get(ctx context.Context, id string) (*models.ClothingItem, error) {
	raw, err := s.client.Client().Get(ctx, itemKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, wardrobedomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: get %s: %w", wardrobedomain.ErrStoreUnavailable, id, err)
	}
	item, err := decodeItem([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("decode item %s: %w", id, err)
	}
	return item, nil
}

// Put upserts the record at item.ID wholesale. The ordering index is left
// untouched, so Put on an unknown id produces an orphan record.
func (s *ItemStore) Put(ctx context.Context, item *models.ClothingItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item %s: %w", item.ID, err)
	}
	if err := s.client.Client().Set(ctx, itemKey(item.ID), payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: put %s: %w", wardrobedomain.ErrStoreUnavailable, item.ID, err)
	}
	return nil
}

// Append writes the record and adds its id to the ordering index, scored
// by orderingKey. The two writes share a pipeline (one round trip) but not
// a transaction.
func (s *ItemStore) Append(ctx context.Context, item *models.ClothingItem, orderingKey time.Time) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item %s: %w", item.ID, err)
	}
	pipe := s.client.Client().Pipeline()
	pipe.Set(ctx, itemKey(item.ID), payload, 0)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(orderingKey.UnixMilli()),
		Member: item.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: append %s: %w", wardrobedomain.ErrStoreUnavailable, item.ID, err)
	}
	return nil
}

// Delete removes the record and its index entry. Deleting a missing id is
// a no-op, not an error.
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.Client().Pipeline()
	pipe.Del(ctx, itemKey(id))
	pipe.ZRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: delete %s: %w", wardrobedomain.ErrStoreUnavailable, id, err)
	}
	return nil
}

// ListAll returns every item newest-first. Ids whose record is missing or
// undecodable are skipped silently; index/record skew is not an error here.
func (s *ItemStore) ListAll(ctx context.Context) ([]models.ClothingItem, error) {
	ids, err := s.client.Client().ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: list ids: %w", wardrobedomain.ErrStoreUnavailable, err)
	}
	if len(ids) == 0 {
		return []models.ClothingItem{}, nil
	}

	pipe := s.client.Client().Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, itemKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: fetch records: %w", wardrobedomain.ErrStoreUnavailable, err)
	}

	items := make([]models.ClothingItem, 0, len(ids))
	for _, cmd := range cmds {
		raw, err := cmd.Bytes()
		if err != nil {
			// Dangling index entry: the record was lost or never written.
			continue
		}
		item, err := decodeItem(raw)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

// Count returns the number of entries in the ordering index.
func (s *ItemStore) Count(ctx context.Context) (int, error) {
	n, err := s.client.Client().ZCard(ctx, indexKey).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: count: %w", wardrobedomain.ErrStoreUnavailable, err)
	}
	return int(n), nil
}

// decodeItem unmarshals a stored record and backfills fields added after
// the record was written (washCount, lastWornDate, notes, and the image
// and boughtFrom fallbacks).
func decodeItem(raw []byte) (*models.ClothingItem, error) {
	var item models.ClothingItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	item.FillDefaults()
	return &item, nil
}

func itemKey(id string) string {
	return itemKeyPrefix + id
}
