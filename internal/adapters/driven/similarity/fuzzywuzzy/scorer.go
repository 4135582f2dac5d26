// Package fuzzywuzzy adapts a Levenshtein-based ratio to the Scorer
// port.
package fuzzywuzzy

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/hearthlabs/parley/internal/core/ports/driven"
)

// Ensure Scorer implements the interface.
var _ driven.Scorer = (*Scorer)(nil)

// Scorer computes normalized edit similarity via the fuzzywuzzy simple
// ratio. Scores are integers in [0, 100]; identical strings score 100.
type Scorer struct{}

// NewScorer creates a new fuzzy scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Ratio returns the similarity between a and b.
func (s *Scorer) Ratio(a, b string) int {
	return fuzzy.Ratio(a, b)
}
