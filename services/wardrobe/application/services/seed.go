package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/recount/services/wardrobe/domain/models"
)

// sampleItems is the starter wardrobe installed by Seed into an empty
// store. Ids are fixed so reseeding a wiped development store is stable.
var sampleItems = []models.ClothingItem{
	{
		ID:           "1",
		Name:         "Classic White Tee",
		Category:     models.CategoryTop,
		Image:        "/images/white-tshirt.jpg",
		WearCount:    12,
		BoughtFrom:   "Uniqlo",
		Price:        19.90,
		PurchaseDate: "2025-03-15",
	},
	{
		ID:           "2",
		Name:         "Slim Fit Jeans",
		Category:     models.CategoryLower,
		Image:        "/images/blue-jeans.jpg",
		WearCount:    8,
		BoughtFrom:   "Levi's",
		Price:        89.00,
		PurchaseDate: "2025-01-20",
	},
	{
		ID:           "3",
		Name:         "Cozy Knit Sweater",
		Category:     models.CategoryUpper,
		Image:        "/images/beige-sweater.jpg",
		WearCount:    5,
		BoughtFrom:   "H&M",
		Price:        34.99,
		PurchaseDate: "2025-02-10",
	},
	{
		ID:           "4",
		Name:         "Utility Jacket",
		Category:     models.CategoryUpper,
		Image:        "/images/olive-jacket.jpg",
		WearCount:    3,
		BoughtFrom:   "Zara",
		Price:        79.90,
		PurchaseDate: "2024-11-05",
	},
	{
		ID:           "5",
		Name:         "Black Midi Dress",
		Category:     models.CategoryTop,
		Image:        "/images/black-dress.jpg",
		WearCount:    6,
		BoughtFrom:   "& Other Stories",
		Price:        59.00,
		PurchaseDate: "2025-04-01",
	},
	{
		ID:           "6",
		Name:         "Gray Hoodie",
		Category:     models.CategoryUpper,
		Image:        "/images/gray-hoodie.jpg",
		WearCount:    15,
		BoughtFrom:   "Nike",
		Price:        65.00,
		PurchaseDate: "2024-09-12",
	},
}

// Seed installs the sample wardrobe when the collection is empty. Ordering
// keys come from each item's purchase date, so listings read newest
// purchase first. Returns the resulting item count and whether anything
// was written; a non-empty collection makes Seed a no-op.
func (s *ItemService) Seed(ctx context.Context) (count int, seeded bool, err error) {
	existing, err := s.store.Count(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("count items: %w", err)
	}
	if existing > 0 {
		return existing, false, nil
	}

	for i := range sampleItems {
		item := sampleItems[i].Clone()
		item.FillDefaults()

		key, err := time.Parse(time.DateOnly, item.PurchaseDate)
		if err != nil {
			key = time.Now().UTC()
		}
		if err := s.store.Append(ctx, &item, key); err != nil {
			return i, true, fmt.Errorf("seed item %s: %w", item.ID, err)
		}
	}
	return len(sampleItems), true, nil
}
