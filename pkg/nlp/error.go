package nlp

import "errors"

var (
	// ErrTranslation is returned when query translation fails.
	ErrTranslation = errors.New("query translation failed")

	// ErrEmbedding is returned when embedding generation fails.
	ErrEmbedding = errors.New("embedding failed")
)
