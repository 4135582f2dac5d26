package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/core/ports/driven"
	"github.com/hearthlabs/parley/internal/core/ports/driving"
	"github.com/hearthlabs/parley/internal/logger"
)

// Ensure ResolverService implements the interface.
var _ driving.Resolver = (*ResolverService)(nil)

// apologyText is the fixed response for utterances nothing could be
// made of.
const apologyText = "Sorry, I don't know the answer to that!"

// Options tunes the resolution pipeline.
type Options struct {
	// Threshold is the minimum fuzzy score for a knowledge-base hit.
	// Zero selects DefaultThreshold.
	Threshold int

	// FallbackPolicy names when the heuristic phase runs after a fuzzy
	// miss. Empty selects FallbackLegacy.
	FallbackPolicy domain.FallbackPolicy

	// LooseCommandRule keeps the permissive "any token is not a nominal
	// subject" command rule enabled.
	LooseCommandRule bool
}

// DefaultOptions returns the options matching the original system's
// behavior.
func DefaultOptions() Options {
	return Options{
		Threshold:        DefaultThreshold,
		FallbackPolicy:   domain.FallbackLegacy,
		LooseCommandRule: true,
	}
}

// ResolverService resolves utterances against a knowledge base and
// composes responses. The pipeline is synchronous and stateless per
// call; the knowledge base is an immutable snapshot swapped atomically
// on reload.
type ResolverService struct {
	kb       atomic.Pointer[domain.KnowledgeBase]
	analyzer driven.Analyzer
	scorer   driven.Scorer
	opts     Options
}

// NewResolverService creates a resolver over the given knowledge base
// and capability ports.
func NewResolverService(kb *domain.KnowledgeBase, analyzer driven.Analyzer, scorer driven.Scorer, opts Options) (*ResolverService, error) {
	if kb == nil {
		return nil, domain.ErrEmptyKnowledgeBase
	}
	if analyzer == nil {
		return nil, domain.ErrAnalyzerUnavailable
	}
	if scorer == nil {
		return nil, domain.ErrScorerUnavailable
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.FallbackPolicy == "" {
		opts.FallbackPolicy = domain.FallbackLegacy
	}

	s := &ResolverService{
		analyzer: analyzer,
		scorer:   scorer,
		opts:     opts,
	}
	s.kb.Store(kb)
	return s, nil
}

// SwapKnowledgeBase atomically replaces the knowledge base. In-flight
// resolutions keep the snapshot they started with.
func (s *ResolverService) SwapKnowledgeBase(kb *domain.KnowledgeBase) {
	if kb != nil {
		s.kb.Store(kb)
	}
}

// KnowledgeBase returns the current knowledge-base snapshot.
func (s *ResolverService) KnowledgeBase() *domain.KnowledgeBase {
	return s.kb.Load()
}

// Understand resolves the utterance: anchored pattern match first, then
// fuzzy similarity against the question phrasings, then — when matching
// produced nothing at all — heuristic classification and fallback
// synthesis.
func (s *ResolverService) Understand(ctx context.Context, utterance string) (domain.IntentResult, error) {
	kb := s.kb.Load()

	logger.Section("Intent Resolution")
	lowered := strings.ToLower(strings.TrimSpace(utterance))
	cleaned := normalize(lowered)
	logger.Debug("normalized: %q", cleaned)

	if intent, ok := matchPattern(cleaned, kb); ok {
		return domain.Hit(intent), nil
	}

	candidates := fuzzyCandidates(cleaned, kb, s.scorer)
	if len(candidates) > 0 {
		best := candidates[0]
		if best.Score >= s.opts.Threshold {
			return domain.Hit(best.Intent), nil
		}
		if s.opts.FallbackPolicy == domain.FallbackLegacy {
			// Candidates cleared the pre-filter floor but none reached
			// the threshold: the legacy policy stops here.
			logger.Debug("best candidate scored %d, below threshold %d", best.Score, s.opts.Threshold)
			return domain.Unresolved(), nil
		}
	}

	return s.fallback(ctx, utterance, cleaned)
}

// fallback runs the heuristic phase: entity extraction over the cleaned
// raw text, linguistic annotation of the normalized utterance, and
// response synthesis.
func (s *ResolverService) fallback(ctx context.Context, utterance, cleaned string) (domain.IntentResult, error) {
	raw := normalize(strings.TrimSpace(utterance))
	entities, err := s.analyzer.Entities(ctx, raw)
	if err != nil {
		return domain.IntentResult{}, fmt.Errorf("extracting entities: %w", err)
	}
	logger.Debug("entities: %d", len(entities))

	ann, err := s.analyzer.Annotate(ctx, cleaned)
	if err != nil {
		return domain.IntentResult{}, fmt.Errorf("annotating utterance: %w", err)
	}

	return synthesize(cleaned, ann, entities, s.opts.LooseCommandRule), nil
}

// Respond composes the final response text for a resolved intent:
// the fixed apology for no resolution, the synthesized fallback
// verbatim, or the intent's answer fragments joined with single spaces.
func (s *ResolverService) Respond(result domain.IntentResult) string {
	switch {
	case result.Unresolved():
		return apologyText
	case result.Synthesized():
		return result.Fallback
	}

	kb := s.kb.Load()
	if !kb.Contains(result.Intent) {
		logger.Warn("intent %d outside knowledge base", result.Intent)
		return apologyText
	}
	return strings.TrimSpace(strings.Join(kb.Answers(result.Intent), " "))
}

// IsRecoverable reports whether a resolution error should degrade to an
// apology rather than abort the transport.
func IsRecoverable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}
