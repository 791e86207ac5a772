// Package inmemory provides a map-backed store driver. It serves as the dev
// mode backend and as the test double for the resolution cascade, evaluating
// a practical subset of the document store's filter grammar in process.
package inmemory

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tridentsearch/trident/pkg/store"
)

// Driver implements store.Driver using an in-memory slice.
type Driver struct {
	// mu guards records for concurrent search requests
	mu sync.RWMutex

	records []store.Record
	closed  bool
}

// NewDriver creates an empty in-memory driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Find evaluates the structured filter against every record.
func (d *Driver) Find(_ context.Context, filter map[string]any, limit int64) ([]store.Record, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var results []store.Record
	for _, rec := range d.records {
		ok, err := matchFilter(rec, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			results = append(results, rec)
			if int64(len(results)) >= limit {
				break
			}
		}
	}
	return results, nil
}

// VectorSearch brute-forces cosine similarity over every embedded record and
// returns the top matches by decreasing similarity. Records without an
// embedding are skipped.
func (d *Driver) VectorSearch(_ context.Context, embedding []float32, _, limit int64) ([]store.Record, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	type scored struct {
		rec   store.Record
		score float64
	}

	var candidates []scored
	for _, rec := range d.records {
		if len(rec.Embedding) == 0 || len(rec.Embedding) != len(embedding) {
			continue
		}
		candidates = append(candidates, scored{rec: rec, score: cosine(embedding, rec.Embedding)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if int64(len(candidates)) > limit {
		candidates = candidates[:limit]
	}

	results := make([]store.Record, len(candidates))
	for i, c := range candidates {
		results[i] = c.rec
	}
	return results, nil
}

// SubstringSearch matches text as a literal, case-insensitive substring over
// the given fields. Contains on the lowercased rendering never interprets
// pattern metacharacters, so the literal-match contract holds by construction.
func (d *Driver) SubstringSearch(_ context.Context, text string, fields []string, limit int64) ([]store.Record, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	needle := strings.ToLower(text)

	var results []store.Record
	for _, rec := range d.records {
		for _, field := range fields {
			val, ok := lookupField(rec, field)
			if !ok {
				continue
			}
			s, ok := val.(string)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(s), needle) {
				results = append(results, rec)
				break
			}
		}
		if int64(len(results)) >= limit {
			break
		}
	}
	return results, nil
}

// Categories returns the distinct recordType values in sorted order.
func (d *Driver) Categories(_ context.Context) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, rec := range d.records {
		if !seen[rec.RecordType] {
			seen[rec.RecordType] = true
			categories = append(categories, rec.RecordType)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// InsertMany stores the records, assigning a fresh ID to each.
func (d *Driver) InsertMany(_ context.Context, records []store.Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		d.records = append(d.records, rec)
	}
	return nil
}

// DeleteAll removes every record.
func (d *Driver) DeleteAll(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.records = nil
	return nil
}

// EnsureSearchIndex is a no-op: substring search scans in process.
func (d *Driver) EnsureSearchIndex(_ context.Context) error {
	return nil
}

// Close releases the driver.
func (d *Driver) Close(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.records = nil
	return nil
}

func cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

var _ store.Driver = (*Driver)(nil)
