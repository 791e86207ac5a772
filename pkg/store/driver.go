// Package store defines the document-store boundary for the trident search
// engine: a Driver interface covering the three query kinds the resolution
// cascade needs (structured filters, nearest-neighbor vector search, and
// literal substring matching), plus the swappable Handle that holds the
// process-wide driver slot.
package store

import "context"

// Driver is the interface every document-store backend implements.
// Records are read-mostly: the engine never mutates or deletes individual
// records, only seeding clears and repopulates the store.
type Driver interface {
	// Find executes a structured filter expressed in the store's native
	// query grammar and returns up to limit records in store-native order.
	Find(ctx context.Context, filter map[string]any, limit int64) ([]Record, error)

	// VectorSearch performs an approximate nearest-neighbor query against
	// the store's vector index, considering numCandidates candidates and
	// returning up to limit records by decreasing similarity.
	VectorSearch(ctx context.Context, embedding []float32, numCandidates, limit int64) ([]Record, error)

	// SubstringSearch returns up to limit records where any of the given
	// fields contains text as a case-insensitive substring. Implementations
	// must match text literally: any character with special meaning in the
	// store's pattern grammar is escaped, never interpreted.
	SubstringSearch(ctx context.Context, text string, fields []string, limit int64) ([]Record, error)

	// Categories returns the distinct set of recordType values in the store.
	Categories(ctx context.Context) ([]string, error)

	// InsertMany stores the given records, assigning IDs.
	InsertMany(ctx context.Context, records []Record) error

	// DeleteAll removes every record. Used by seeding.
	DeleteAll(ctx context.Context) error

	// EnsureSearchIndex (re-)establishes the index supporting substring
	// search. Called after rebinding to a new store target.
	EnsureSearchIndex(ctx context.Context) error

	// Close releases the connection and any resources held by the driver.
	Close(ctx context.Context) error
}
