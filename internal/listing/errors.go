package listing

import "errors"

var (
	// ErrInvalidPageSize is a configuration error: page size must be positive.
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
	// ErrStaleLoad is returned by View.Reload when a newer reload superseded it.
	ErrStaleLoad = errors.New("listing reload superseded by a newer one")
	// ErrFetchPanicked wraps a panic raised inside a fetch function.
	ErrFetchPanicked = errors.New("listing fetch panicked")
)
