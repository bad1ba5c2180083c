package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when the on-device database cannot
	// be opened or migrated. This is a degraded-but-non-fatal condition:
	// the engine falls back to in-memory repositories and keeps running,
	// at the cost of durability across restarts.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrProductNotFound is returned when a lookup targets a cached product
	// that does not exist.
	ErrProductNotFound = errors.New("product not found in local cache")

	// ErrSaleNotFound is returned when a lookup targets a pending sale that
	// does not exist.
	ErrSaleNotFound = errors.New("pending sale not found")

	// ErrConflictEntryNotFound is returned when a lookup targets a conflict
	// log entry that does not exist.
	ErrConflictEntryNotFound = errors.New("conflict log entry not found")

	// ErrUnknownIndex is returned by GetByIndex when the requested index is
	// not one of the declared secondary indexes for the collection.
	ErrUnknownIndex = errors.New("unknown secondary index")
)
