package testutils

import (
	"context"

	"github.com/tridentsearch/trident/pkg/store"
)

// FaultyDriver wraps a real driver and injects errors per query kind, so
// tests can exercise each tier's failure absorption independently.
type FaultyDriver struct {
	store.Driver

	FindErr            error
	VectorSearchErr    error
	SubstringSearchErr error
}

func NewFaultyDriver(inner store.Driver) *FaultyDriver {
	return &FaultyDriver{Driver: inner}
}

func (f *FaultyDriver) Find(ctx context.Context, filter map[string]any, limit int64) ([]store.Record, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	return f.Driver.Find(ctx, filter, limit)
}

func (f *FaultyDriver) VectorSearch(ctx context.Context, embedding []float32, numCandidates, limit int64) ([]store.Record, error) {
	if f.VectorSearchErr != nil {
		return nil, f.VectorSearchErr
	}
	return f.Driver.VectorSearch(ctx, embedding, numCandidates, limit)
}

func (f *FaultyDriver) SubstringSearch(ctx context.Context, text string, fields []string, limit int64) ([]store.Record, error) {
	if f.SubstringSearchErr != nil {
		return nil, f.SubstringSearchErr
	}
	return f.Driver.SubstringSearch(ctx, text, fields, limit)
}
