package remote

import "errors"

// Sentinel errors shared by both Store implementations. Callers match them
// with [errors.Is].
var (
	// ErrUnauthorized means the session token is missing, expired or
	// rejected.
	ErrUnauthorized = errors.New("remote store rejected credentials")

	// ErrNotFound means the addressed record does not exist remotely.
	// For FindSaleByKey this is the normal "not yet durable" answer.
	ErrNotFound = errors.New("remote record not found")

	// ErrBadRequest means the remote store rejected the payload.
	ErrBadRequest = errors.New("remote store rejected request")

	// ErrUnavailable means the remote store could not be reached or
	// answered with a server-side failure.
	ErrUnavailable = errors.New("remote store unavailable")
)
