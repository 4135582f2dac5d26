package fuzzywuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRatio_Identical tests that identical strings score 100.
func TestRatio_Identical(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, 100, s.Ratio("what is art therapy", "what is art therapy"))
}

// TestRatio_NearMiss tests that a trailing question mark barely dents
// the score.
func TestRatio_NearMiss(t *testing.T) {
	s := NewScorer()
	score := s.Ratio("what is art therapy?", "what is art therapy")
	assert.GreaterOrEqual(t, score, 90)
	assert.Less(t, score, 100)
}

// TestRatio_Unrelated tests that unrelated strings score low.
func TestRatio_Unrelated(t *testing.T) {
	s := NewScorer()
	score := s.Ratio("asdfgh", "what is art therapy")
	assert.Less(t, score, 50)
}

// TestRatio_Bounds tests that scores stay within [0, 100].
func TestRatio_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"", "something"},
		{"a", "b"},
		{"define art therapy", "what is art therapy"},
	}

	s := NewScorer()
	for _, p := range pairs {
		score := s.Ratio(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0, "pair %v", p)
		assert.LessOrEqual(t, score, 100, "pair %v", p)
	}
}

// TestRatio_Symmetric tests argument-order independence.
func TestRatio_Symmetric(t *testing.T) {
	s := NewScorer()
	assert.Equal(t,
		s.Ratio("define art therapy", "what is art therapy"),
		s.Ratio("what is art therapy", "define art therapy"))
}
