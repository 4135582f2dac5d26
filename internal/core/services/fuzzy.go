package services

import (
	"sort"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/core/ports/driven"
	"github.com/hearthlabs/parley/internal/logger"
)

const (
	// prefilterFloor is the hard minimum score for a phrasing to count
	// as a candidate at all, independent of the acceptance threshold.
	prefilterFloor = 50

	// DefaultThreshold is the minimum score for the best fuzzy candidate
	// to be accepted as a knowledge-base hit.
	DefaultThreshold = 60
)

// fuzzyCandidates scores every question phrasing against the normalized
// utterance and returns the candidates that cleared the pre-filter
// floor, ranked by score descending with ties broken by phrase length
// descending.
func fuzzyCandidates(normalized string, kb *domain.KnowledgeBase, scorer driven.Scorer) []domain.MatchCandidate {
	var candidates []domain.MatchCandidate
	for intent := 0; intent < kb.Len(); intent++ {
		for _, phrase := range kb.Questions(intent) {
			score := scorer.Ratio(normalized, phrase)
			if score >= prefilterFloor {
				candidates = append(candidates, domain.MatchCandidate{
					Intent: intent,
					Phrase: phrase,
					Score:  score,
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Better(candidates[j])
	})

	if len(candidates) > 0 {
		logger.Debug("fuzzy: %d candidates, best %q (intent %d, score %d)",
			len(candidates), candidates[0].Phrase, candidates[0].Intent, candidates[0].Score)
	}
	return candidates
}
