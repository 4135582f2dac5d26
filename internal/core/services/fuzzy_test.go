package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFuzzyCandidates_PrefilterFloor tests that a phrasing scoring 49
// never becomes a candidate while one scoring exactly 50 does.
func TestFuzzyCandidates_PrefilterFloor(t *testing.T) {
	kb := mustKB(
		[]string{"a", "b"},
		[][]string{
			{"almost relevant", "not quite"},
			{"barely relevant", "nope"},
		},
		[]string{"answer a", "answer b"},
	)
	scorer := phraseScorer(map[string]int{
		"almost relevant": 49,
		"not quite":       10,
		"barely relevant": 50,
		"nope":            0,
	})

	candidates := fuzzyCandidates("some utterance", kb, scorer)

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Intent)
	assert.Equal(t, "barely relevant", candidates[0].Phrase)
	assert.Equal(t, 50, candidates[0].Score)
}

// TestFuzzyCandidates_RankedByScore tests descending score order.
func TestFuzzyCandidates_RankedByScore(t *testing.T) {
	kb := mustKB(
		[]string{"a", "b"},
		[][]string{
			{"first phrasing", "second phrasing"},
			{"third phrasing", "fourth phrasing"},
		},
		[]string{"answer a", "answer b"},
	)
	scorer := phraseScorer(map[string]int{
		"first phrasing":  62,
		"second phrasing": 88,
		"third phrasing":  95,
		"fourth phrasing": 51,
	})

	candidates := fuzzyCandidates("utterance", kb, scorer)

	require.Len(t, candidates, 4)
	assert.Equal(t, []int{95, 88, 62, 51}, []int{
		candidates[0].Score, candidates[1].Score, candidates[2].Score, candidates[3].Score,
	})
	assert.Equal(t, 1, candidates[0].Intent)
}

// TestFuzzyCandidates_TieBrokenByPhraseLength tests that identical
// scores rank the longer phrasing first.
func TestFuzzyCandidates_TieBrokenByPhraseLength(t *testing.T) {
	kb := mustKB(
		[]string{"a", "b"},
		[][]string{
			{"short", "tiny"},
			{"a much longer phrasing", "word"},
		},
		[]string{"answer a", "answer b"},
	)
	scorer := phraseScorer(map[string]int{
		"short":                  70,
		"tiny":                   10,
		"a much longer phrasing": 70,
		"word":                   10,
	})

	candidates := fuzzyCandidates("utterance", kb, scorer)

	require.Len(t, candidates, 2)
	assert.Equal(t, "a much longer phrasing", candidates[0].Phrase)
	assert.Equal(t, 1, candidates[0].Intent)
}

// TestFuzzyCandidates_Empty tests that nothing below the floor yields
// no candidates.
func TestFuzzyCandidates_Empty(t *testing.T) {
	kb := mustKB(
		[]string{"a"},
		[][]string{{"one", "two"}},
		[]string{"answer"},
	)

	candidates := fuzzyCandidates("utterance", kb, flatScorer(20))
	assert.Empty(t, candidates)
}
