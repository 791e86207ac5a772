// Package nlp defines the boundaries to the external natural-language
// service: query translation and text embedding.
package nlp

import "context"

// Translator converts free text into a structured query expressed in the
// document store's native filter grammar. A nil or empty map means the
// service produced no usable translation.
type Translator interface {
	// TranslateQuery translates text into a structured filter.
	TranslateQuery(ctx context.Context, text string) (map[string]any, error)
}

// Embedder provides text embedding capabilities.
type Embedder interface {
	// Embed converts text into a vector embedding.
	Embed(ctx context.Context, text string) ([]float32, error)
}
