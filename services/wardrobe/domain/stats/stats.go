// Package stats derives rankings, totals, and per-category summaries from
// a wardrobe snapshot. Every function is a pure, total function of its
// input: empty collections yield zero values, never errors.
package stats

import (
	"sort"

	"github.com/ghuser/recount/services/wardrobe/domain/models"
)

// Default preview sizes used by the summary endpoint.
const (
	DefaultMostWornCount = 4
	DefaultRecentCount   = 5
)

// weeklyWearCap bounds each item's contribution to WeeklyWears. There is
// no per-wear-event timestamp in the data model, so min(wearCount, 3) is a
// crude stand-in for "worn this week". A known approximation, not a true
// weekly count.
const weeklyWearCap = 3

// TotalWears sums wearCount over all items.
func TotalWears(items []models.ClothingItem) int {
	total := 0
	for _, it := range items {
		total += it.WearCount
	}
	return total
}

// WeeklyWears sums min(wearCount, 3) over all items. See weeklyWearCap.
func WeeklyWears(items []models.ClothingItem) int {
	total := 0
	for _, it := range items {
		total += min(it.WearCount, weeklyWearCap)
	}
	return total
}

// MostWorn returns up to n items sorted by wearCount descending. The sort
// is stable: items with equal wearCount keep their collection order.
func MostWorn(items []models.ClothingItem, n int) []models.ClothingItem {
	if n <= 0 {
		return []models.ClothingItem{}
	}
	ranked := make([]models.ClothingItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WearCount > ranked[j].WearCount
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Recent returns the first n items in collection order (newest-first by
// insertion; no independent recency sort exists beyond that).
func Recent(items []models.ClothingItem, n int) []models.ClothingItem {
	if n <= 0 {
		return []models.ClothingItem{}
	}
	if len(items) > n {
		items = items[:n]
	}
	out := make([]models.ClothingItem, len(items))
	copy(out, items)
	return out
}

// CategorySummary is the per-category slice of the wardrobe.
type CategorySummary struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
	Value    float64         `json:"value"`
}

// GroupByCategory partitions items by category and reports per-category
// count and summed price. All enumerated categories appear in the result,
// in display order, including empty ones.
func GroupByCategory(items []models.ClothingItem) []CategorySummary {
	byCat := make(map[models.Category]*CategorySummary, len(models.Categories))
	out := make([]CategorySummary, len(models.Categories))
	for i, c := range models.Categories {
		out[i] = CategorySummary{Category: c, Label: c.Label()}
		byCat[c] = &out[i]
	}
	for _, it := range items {
		s, ok := byCat[it.Category]
		if !ok {
			// Unknown category in a stored record: tolerated, not counted.
			continue
		}
		s.Count++
		s.Value += it.Price
	}
	return out
}

// CostPerWear amortizes price over wear count. A never-worn item costs its
// full price per wear, which also avoids dividing by zero.
func CostPerWear(item models.ClothingItem) float64 {
	if item.WearCount > 0 {
		return item.Price / float64(item.WearCount)
	}
	return item.Price
}

// CostPerWash amortizes price over wash count, with the same never-used
// convention as CostPerWear.
func CostPerWash(item models.ClothingItem) float64 {
	if item.WashCount > 0 {
		return item.Price / float64(item.WashCount)
	}
	return item.Price
}

// WearsPerWash returns the wear-to-wash ratio. ok is false when the item
// has never been washed and the ratio is undefined.
func WearsPerWash(item models.ClothingItem) (ratio float64, ok bool) {
	if item.WashCount == 0 {
		return 0, false
	}
	return float64(item.WearCount) / float64(item.WashCount), true
}

// Summary is the portfolio-level rollup of the whole wardrobe.
type Summary struct {
	TotalItems     int               `json:"totalItems"`
	TotalValue     float64           `json:"totalValue"`
	TotalWears     int               `json:"totalWears"`
	WeeklyWears    int               `json:"weeklyWears"`
	AvgCostPerWear float64           `json:"avgCostPerWear"`
	Categories     []CategorySummary `json:"categories"`
}

// Summarize computes the portfolio rollup. avgCostPerWear is
// totalValue/totalWears, or 0 for a wardrobe that has never been worn.
func Summarize(items []models.ClothingItem) Summary {
	s := Summary{
		TotalItems:  len(items),
		TotalWears:  TotalWears(items),
		WeeklyWears: WeeklyWears(items),
		Categories:  GroupByCategory(items),
	}
	for _, it := range items {
		s.TotalValue += it.Price
	}
	if s.TotalWears > 0 {
		s.AvgCostPerWear = s.TotalValue / float64(s.TotalWears)
	}
	return s
}
