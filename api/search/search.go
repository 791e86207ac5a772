// Package search implements the tiered resolution cascade: free text is
// answered by progressively less precise strategies until one yields
// results. It is shared by the REST search endpoint and the CLI.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tridentsearch/trident/pkg/nlp"
	"github.com/tridentsearch/trident/pkg/store"
)

// Method labels identify which tier produced the returned results.
const (
	// MethodStructured is reported when the translated structured query
	// matched records.
	MethodStructured = "Syntactic Translation (Precise)"

	// MethodVector is reported when nearest-neighbor search over the
	// embedding index matched records.
	MethodVector = "Semantic Vector Match"

	// MethodFuzzy is reported by the terminal fallback tier, regardless of
	// whether it matched anything.
	MethodFuzzy = "Keyword Fuzzy Match"
)

const (
	// ResultLimit caps the result count of every tier.
	ResultLimit = 10

	// VectorCandidatePool is the candidate pool size for the
	// nearest-neighbor query.
	VectorCandidatePool = 100
)

// FuzzyFields is the fixed field list the fuzzy tier matches against.
var FuzzyFields = []string{
	"recordType",
	"attributes.name",
	"attributes.department",
	"attributes.city",
	"attributes.country",
	"attributes.bio",
	"attributes.description",
	"attributes.preference",
	"attributes.status",
}

// Output is the uniform response envelope, identical across tiers.
type Output struct {
	Count  int    `json:"count"`
	Query  string `json:"query"`
	Method string `json:"method"`

	// GeneratedMQL carries the translated structured query back for
	// display. Null unless the structured tier won.
	GeneratedMQL map[string]any `json:"generatedMql"`

	// Suggestion is a human-readable hint. Null unless Results is empty.
	Suggestion *string `json:"suggestion"`

	// Results holds each matched record flattened to its attributes plus
	// injected id and recordType fields.
	Results []map[string]any `json:"results"`
}

// Resolver sequences the cascade tiers and assembles the response envelope.
// It is the single place where tier-local failures are interpreted as "skip
// to the next tier" versus "abort".
type Resolver struct {
	translator nlp.Translator
	embedder   nlp.Embedder
	suggester  *Suggester
	logger     *zap.Logger
}

// NewResolver creates a resolver over the given external-service adapters.
func NewResolver(translator nlp.Translator, embedder nlp.Embedder, suggester *Suggester, logger *zap.Logger) *Resolver {
	return &Resolver{
		translator: translator,
		embedder:   embedder,
		suggester:  suggester,
		logger:     logger,
	}
}

// Resolve runs the cascade for the given query text against the given store
// driver. Exactly one tier's results are returned; tiers are never merged.
// The returned error is terminal: it only occurs when the final fallback
// tier itself fails.
func (r *Resolver) Resolve(ctx context.Context, drv store.Driver, text string) (*Output, error) {
	var (
		results      []store.Record
		method       string
		generatedMQL map[string]any
	)

	// Tier 1: translate to a structured query and execute it. Any failure
	// here, in the translator or in the store, falls through.
	results, generatedMQL = r.runStructured(ctx, drv, text)
	if len(results) > 0 {
		method = MethodStructured
	}

	// Tier 2: semantic nearest-neighbor search. Only reached when the
	// structured tier produced nothing, including the case where its query
	// executed cleanly but matched zero records.
	if len(results) == 0 {
		generatedMQL = nil
		results = r.runVector(ctx, drv, text)
		if len(results) > 0 {
			method = MethodVector
		}
	}

	// Tier 3: fuzzy substring match, unconditional terminal fallback. A
	// store error here is the only thing that fails the request.
	if len(results) == 0 {
		var err error
		results, err = drv.SubstringSearch(ctx, text, FuzzyFields, ResultLimit)
		if err != nil {
			return nil, fmt.Errorf("fuzzy search: %w", err)
		}
		method = MethodFuzzy
	}

	output := &Output{
		Count:        len(results),
		Query:        text,
		Method:       method,
		GeneratedMQL: generatedMQL,
		Results:      make([]map[string]any, 0, len(results)),
	}
	for _, rec := range results {
		output.Results = append(output.Results, rec.Flatten())
	}

	if output.Count == 0 {
		hint := r.suggester.Hint()
		output.Suggestion = &hint
	}

	return output, nil
}

// runStructured attempts the translation tier. It returns the matched
// records and the structured query that produced them; both are empty when
// the tier did not succeed.
func (r *Resolver) runStructured(ctx context.Context, drv store.Driver, text string) ([]store.Record, map[string]any) {
	mql, err := r.translator.TranslateQuery(ctx, text)
	if err != nil {
		r.logger.Warn("query translation failed, skipping structured tier",
			zap.String("query", text),
			zap.Error(err),
		)
		return nil, nil
	}

	// An empty translation is treated identically to no translation.
	if len(mql) == 0 {
		r.logger.Debug("no usable translation", zap.String("query", text))
		return nil, nil
	}

	r.logger.Debug("executing structured query", zap.Any("mql", mql))

	results, err := drv.Find(ctx, mql, ResultLimit)
	if err != nil {
		r.logger.Warn("structured query execution failed, falling through",
			zap.Any("mql", mql),
			zap.Error(err),
		)
		return nil, nil
	}

	if len(results) == 0 {
		return nil, nil
	}
	return results, mql
}

// runVector attempts the semantic tier. Embedder failure is explicit, not
// swallowed by the adapter, because it decides whether a vector query is
// attempted at all.
func (r *Resolver) runVector(ctx context.Context, drv store.Driver, text string) []store.Record {
	embedding, err := r.embedder.Embed(ctx, text)
	if err != nil {
		r.logger.Warn("embedding unavailable, skipping vector tier",
			zap.String("query", text),
			zap.Error(err),
		)
		return nil
	}

	results, err := drv.VectorSearch(ctx, embedding, VectorCandidatePool, ResultLimit)
	if err != nil {
		r.logger.Warn("vector search failed, falling through",
			zap.Error(err),
		)
		return nil
	}
	return results
}
