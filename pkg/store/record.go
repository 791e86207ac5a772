package store

// Record is the unit of search: a typed bag of attributes with an optional
// precomputed embedding.
type Record struct {
	// ID is the store-assigned unique identifier, immutable after creation.
	ID string

	// RecordType is a short category label (e.g. "Employee", "Order").
	// It is an open enumeration: new types may appear without code changes.
	RecordType string

	// Attributes is an open mapping from field name to scalar or nested
	// value. Keys are not validated against any schema.
	Attributes map[string]any

	// Embedding is an optional fixed-length vector computed from a textual
	// rendering of the record. Absent when the embedding service was
	// unavailable at write time.
	Embedding []float32
}

// Flatten returns the record as a single open map: the attributes plus
// injected "id" and "recordType" fields. Every search tier produces the
// same flattened shape regardless of which executor matched the record.
func (r Record) Flatten() map[string]any {
	flat := make(map[string]any, len(r.Attributes)+2)
	for k, v := range r.Attributes {
		flat[k] = v
	}
	flat["id"] = r.ID
	flat["recordType"] = r.RecordType
	return flat
}
