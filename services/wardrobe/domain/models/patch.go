package models

// ItemPatch is a field-level partial update. Nil pointers mean "leave the
// field alone". There is deliberately no ID field: the identifier is
// immutable once assigned and any id supplied by a caller is discarded
// before a patch is built.
type ItemPatch struct {
	Name         *string   `json:"name,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Image        *string   `json:"image,omitempty"`
	WearCount    *int      `json:"wearCount,omitempty"`
	WashCount    *int      `json:"washCount,omitempty"`
	BoughtFrom   *string   `json:"boughtFrom,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	PurchaseDate *string   `json:"purchaseDate,omitempty"`
	LastWornDate *string   `json:"lastWornDate,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p ItemPatch) IsZero() bool {
	return p.Name == nil && p.Category == nil && p.Image == nil &&
		p.WearCount == nil && p.WashCount == nil && p.BoughtFrom == nil &&
		p.Price == nil && p.PurchaseDate == nil && p.LastWornDate == nil &&
		p.Notes == nil
}

// Apply merges the patch into item. Counts are floored at zero rather than
// allowed to go negative. The item's ID is never modified.
func (p ItemPatch) Apply(item *ClothingItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.WearCount != nil {
		item.WearCount = max(0, *p.WearCount)
	}
	if p.WashCount != nil {
		item.WashCount = max(0, *p.WashCount)
	}
	if p.BoughtFrom != nil {
		item.BoughtFrom = *p.BoughtFrom
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.PurchaseDate != nil {
		item.PurchaseDate = *p.PurchaseDate
	}
	if p.LastWornDate != nil {
		d := *p.LastWornDate
		item.LastWornDate = &d
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
}

// WithoutImage returns a copy of the patch with the image field cleared.
// The sync client uses this for optimistic merges: scalar fields are
// promoted into the local cache immediately, image references only after
// the server confirms the upload.
func (p ItemPatch) WithoutImage() ItemPatch {
	p.Image = nil
	return p
}
