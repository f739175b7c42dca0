package models

import (
	"strconv"
	"time"
)

// DefaultImage is the placeholder reference used when an item has no
// uploaded image. Every item must resolve to some image reference.
const DefaultImage = "/images/white-tshirt.jpg"

// DefaultBoughtFrom is the source label applied when none is supplied.
const DefaultBoughtFrom = "Unknown"

// ClothingItem is the core aggregate: one tracked clothing entry.
//
// JSON tags match the stored record shape, so a record written before
// washCount/lastWornDate/notes existed decodes cleanly; FillDefaults
// backfills those fields at read time instead of migrating stored records.
type ClothingItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Image        string   `json:"image"`
	WearCount    int      `json:"wearCount"`
	WashCount    int      `json:"washCount"`
	BoughtFrom   string   `json:"boughtFrom"`
	Price        float64  `json:"price"`
	PurchaseDate string   `json:"purchaseDate"`
	LastWornDate *string  `json:"lastWornDate"`
	Notes        string   `json:"notes"`
}

// NewItemID returns a fresh time-based item identifier. IDs are strings so
// the scheme can change without touching stored records.
func NewItemID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// FillDefaults backfills fields that may be absent from older stored
// records or sparse create requests. Counts are floored at zero; the
// id is never touched.
func (i *ClothingItem) FillDefaults() {
	if i.Image == "" {
		i.Image = DefaultImage
	}
	if i.BoughtFrom == "" {
		i.BoughtFrom = DefaultBoughtFrom
	}
	if i.WearCount < 0 {
		i.WearCount = 0
	}
	if i.WashCount < 0 {
		i.WashCount = 0
	}
}

// Clone returns a deep copy of the item.
func (i ClothingItem) Clone() ClothingItem {
	out := i
	if i.LastWornDate != nil {
		d := *i.LastWornDate
		out.LastWornDate = &d
	}
	return out
}
