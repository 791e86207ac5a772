package search

import (
	"fmt"
	"math/rand/v2"
)

// hintTerms is the fixed vocabulary of example query terms offered when
// every tier comes back empty.
var hintTerms = []string{"sales", "marketing", "tech", "manager", "pending", "usa", "india"}

// Suggester produces a human-readable hint when a search finds nothing.
// The hint is advisory only and never re-runs the cascade.
type Suggester struct {
	terms []string
	intn  func(n int) int
}

// NewSuggester creates a suggester drawing uniformly from the default
// vocabulary.
func NewSuggester() *Suggester {
	return &Suggester{
		terms: hintTerms,
		intn:  rand.IntN,
	}
}

// NewSuggesterWithSource creates a suggester with an injected random source,
// so tests can pin the chosen term.
func NewSuggesterWithSource(intn func(n int) int) *Suggester {
	return &Suggester{
		terms: hintTerms,
		intn:  intn,
	}
}

// Hint returns a single suggestion string.
func (s *Suggester) Hint() string {
	term := s.terms[s.intn(len(s.terms))]
	return fmt.Sprintf("No matches found. Try '%s' or check for typos.", term)
}
