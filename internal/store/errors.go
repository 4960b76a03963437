package store

import "errors"

var (
	// ErrNotFound indicates the referenced context does not exist in the
	// registry.
	ErrNotFound = errors.New("context not found")

	// ErrCorrupt indicates a context's stored state cannot be used: the
	// metadata record does not parse, or the metadata is present while the
	// credential blob is missing.
	ErrCorrupt = errors.New("context storage corrupt")
)
