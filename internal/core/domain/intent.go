package domain

// Reserved intent ids. Non-negative ids index the knowledge base.
const (
	// IntentUnresolved marks an utterance nothing could be made of.
	IntentUnresolved = -1

	// IntentSynthesized marks a fallback response built by the
	// synthesizer (search/map links or a clarification prompt).
	IntentSynthesized = -2
)

// IntentResult is the outcome of resolving one utterance.
type IntentResult struct {
	// Intent is a knowledge-base index, IntentSynthesized, or
	// IntentUnresolved.
	Intent int

	// Fallback holds the synthesized response text. It is populated
	// only when Intent == IntentSynthesized.
	Fallback string
}

// Resolved reports whether the result is a concrete knowledge-base hit.
func (r IntentResult) Resolved() bool {
	return r.Intent >= 0
}

// Synthesized reports whether the result carries fallback text.
func (r IntentResult) Synthesized() bool {
	return r.Intent == IntentSynthesized
}

// Unresolved reports whether no resolution was possible.
func (r IntentResult) Unresolved() bool {
	return r.Intent == IntentUnresolved
}

// Hit builds a result for a knowledge-base match.
func Hit(intent int) IntentResult {
	return IntentResult{Intent: intent}
}

// Synthesize builds a result carrying fallback text.
func Synthesize(text string) IntentResult {
	return IntentResult{Intent: IntentSynthesized, Fallback: text}
}

// Unresolved builds the no-resolution result.
func Unresolved() IntentResult {
	return IntentResult{Intent: IntentUnresolved}
}

// MatchCandidate is an ephemeral fuzzy-phase candidate: one question
// phrasing scored against the normalized utterance.
type MatchCandidate struct {
	// Intent is the knowledge-base index of the phrasing.
	Intent int

	// Phrase is the question phrasing that was scored.
	Phrase string

	// Score is the similarity score in [0, 100].
	Score int
}

// Better reports whether c should rank above other: higher score first,
// longer phrase on a tie.
func (c MatchCandidate) Better(other MatchCandidate) bool {
	if c.Score != other.Score {
		return c.Score > other.Score
	}
	return len(c.Phrase) > len(other.Phrase)
}
