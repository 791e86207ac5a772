package store

import "errors"

var (
	// ErrQuery is returned when the store rejects a query (e.g. a malformed
	// predicate in a structured filter).
	ErrQuery = errors.New("store query failed")

	// ErrConnection is returned when the store connection fails or the
	// target is unreachable.
	ErrConnection = errors.New("store connection failed")
)
