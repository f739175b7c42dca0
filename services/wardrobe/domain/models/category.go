package models

// Category is the fixed classification for a clothing item.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryUpper     Category = "upper"
	CategoryLower     Category = "lower"
	CategoryUnderwear Category = "underwear"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryTop, CategoryUpper, CategoryLower, CategoryUnderwear}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTop, CategoryUpper, CategoryLower, CategoryUnderwear:
		return true
	}
	return false
}

// Label returns the human-readable name shown in category listings.
func (c Category) Label() string {
	switch c {
	case CategoryTop:
		return "Tops"
	case CategoryUpper:
		return "Upper"
	case CategoryLower:
		return "Lower"
	case CategoryUnderwear:
		return "Underwear"
	}
	return string(c)
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}
