package domain

import "errors"

// Sentinel errors for the wardrobe domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrNameRequired indicates a create request without a display name.
	ErrNameRequired = errors.New("name is required")

	// ErrInvalidCategory indicates a category outside the fixed enumerated set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrUploadFailed indicates the image hosting provider rejected an upload.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrStoreUnavailable indicates a persistence operation against Redis failed.
	ErrStoreUnavailable = errors.New("item store unavailable")
)
