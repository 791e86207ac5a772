// Package testutils provides hand-written mocks for the external-service
// boundaries used across the test suites.
package testutils

import (
	"context"
	"errors"
)

// MockTranslator is a test translator with scripted output.
type MockTranslator struct {
	// MQL is returned for every query. nil means "no translation".
	MQL map[string]any

	// Err, when set, is returned instead.
	Err error

	// Calls records every query text received.
	Calls []string
}

func NewMockTranslator() *MockTranslator {
	return &MockTranslator{}
}

func (m *MockTranslator) TranslateQuery(_ context.Context, text string) (map[string]any, error) {
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.MQL, nil
}

// MockEmbedder is a test embedder that returns predictable embeddings.
type MockEmbedder struct {
	Embeddings map[string][]float32

	// Err, when set, causes every Embed call to fail.
	Err error

	// FailOn causes Embed to return an error when the input text matches.
	FailOn string
}

func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{
		Embeddings: make(map[string][]float32),
	}
}

func (m *MockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.FailOn != "" && text == m.FailOn {
		return nil, errors.New("mock embedding failure for: " + text)
	}

	if emb, ok := m.Embeddings[text]; ok {
		return emb, nil
	}

	// Return a default embedding for any text
	return []float32{0.1, 0.2, 0.3}, nil
}
