// Package seed clears and repopulates a store with the canonical sample
// records, computing an embedding for each one best-effort.
package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tridentsearch/trident/pkg/nlp"
	"github.com/tridentsearch/trident/pkg/store"
)

// Samples returns the fixed sample set. A fresh copy each call, so callers
// may attach embeddings without sharing state.
func Samples() []store.Record {
	return []store.Record{
		{
			RecordType: "Employee",
			Attributes: map[string]any{
				"name":       "Dr. Sarah Chen",
				"department": "R&D",
				"salary":     150000,
				"city":       "San Francisco",
				"country":    "USA",
				"bio":        "Expert in quantum computing.",
				"status":     "Active",
			},
		},
		{
			RecordType: "Employee",
			Attributes: map[string]any{
				"name":       "Marcus Johnson",
				"department": "Sales",
				"salary":     85000,
				"city":       "New York",
				"country":    "USA",
				"bio":        "Top performer in sales.",
				"status":     "Active",
			},
		},
		{
			RecordType: "Order",
			Attributes: map[string]any{
				"orderId":     "ORD-2024-001",
				"amount":      5000,
				"status":      "Processing",
				"city":        "Tokyo",
				"country":     "Japan",
				"description": "Bulk order of servers.",
			},
		},
		{
			RecordType: "Customer",
			Attributes: map[string]any{
				"name":       "TechGiant Corp",
				"city":       "Seattle",
				"country":    "USA",
				"email":      "procurement@techgiant.com",
				"preference": "High-volume purchaser.",
			},
		},
	}
}

// Seed clears the store and inserts the sample set. Embeddings are computed
// concurrently and best-effort: a sample whose embedding fails is stored
// without one, it never fails the seeding run. Returns the inserted count.
func Seed(ctx context.Context, drv store.Driver, embedder nlp.Embedder, logger *zap.Logger) (int, error) {
	if err := drv.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clearing store: %w", err)
	}

	samples := Samples()

	g, gctx := errgroup.WithContext(ctx)
	for i := range samples {
		g.Go(func() error {
			embedding, err := embedder.Embed(gctx, semanticText(samples[i]))
			if err != nil {
				logger.Warn("embedding sample failed, storing without embedding",
					zap.String("recordType", samples[i].RecordType),
					zap.Error(err),
				)
				return nil
			}
			samples[i].Embedding = embedding
			return nil
		})
	}
	// Goroutines only report nil, the group is used for the join.
	_ = g.Wait()

	if err := drv.InsertMany(ctx, samples); err != nil {
		return 0, fmt.Errorf("inserting samples: %w", err)
	}

	logger.Info("store seeded", zap.Int("count", len(samples)))
	return len(samples), nil
}

// semanticText renders a record for embedding: its type followed by the
// JSON form of its attributes.
func semanticText(rec store.Record) string {
	attrs, err := json.Marshal(rec.Attributes)
	if err != nil {
		return rec.RecordType
	}
	return rec.RecordType + " " + string(attrs)
}
