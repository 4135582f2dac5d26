package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewKnowledgeBase_Valid tests construction from well-formed
// parallel sequences.
func TestNewKnowledgeBase_Valid(t *testing.T) {
	kb, err := NewKnowledgeBase(
		[]string{"what is art therapy", "who runs the program"},
		[][]string{
			{"what is art therapy", "define art therapy"},
			{"who runs the program", "who is in charge"},
		},
		[][]string{
			{"Art therapy is a therapeutic practice using creative expression."},
			{"The program is run by", "the community centre."},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, kb.Len())
	assert.Equal(t, "what is art therapy", kb.Pattern(0))
	assert.Equal(t, []string{"who runs the program", "who is in charge"}, kb.Questions(1))
	assert.Len(t, kb.Answers(1), 2)
}

// TestNewKnowledgeBase_UnequalLengths tests that mismatched parallel
// sequences are rejected at construction.
func TestNewKnowledgeBase_UnequalLengths(t *testing.T) {
	_, err := NewKnowledgeBase(
		[]string{"a", "b"},
		[][]string{{"q1", "q2"}},
		[][]string{{"ans"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedKnowledgeBase)
}

// TestNewKnowledgeBase_WrongPhrasingCount tests that question groups
// must hold exactly two phrasings.
func TestNewKnowledgeBase_WrongPhrasingCount(t *testing.T) {
	_, err := NewKnowledgeBase(
		[]string{"a"},
		[][]string{{"only one"}},
		[][]string{{"ans"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedKnowledgeBase)
}

// TestNewKnowledgeBase_EmptyAnswerGroup tests that empty answer groups
// are rejected.
func TestNewKnowledgeBase_EmptyAnswerGroup(t *testing.T) {
	_, err := NewKnowledgeBase(
		[]string{"a"},
		[][]string{{"q1", "q2"}},
		[][]string{{}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedKnowledgeBase)
}

// TestKnowledgeBase_Contains tests intent id bounds checks.
func TestKnowledgeBase_Contains(t *testing.T) {
	kb, err := NewKnowledgeBase(
		[]string{"a"},
		[][]string{{"q1", "q2"}},
		[][]string{{"ans"}},
	)
	require.NoError(t, err)

	assert.True(t, kb.Contains(0))
	assert.False(t, kb.Contains(1))
	assert.False(t, kb.Contains(-1))
	assert.False(t, kb.Contains(IntentSynthesized))
}
