package services

import "github.com/hearthlabs/parley/internal/core/domain"

// tokenPattern constrains one token of a phrase pattern. Zero-valued
// fields are wildcards.
type tokenPattern struct {
	// lemma must equal the token's lemma when set.
	lemma string

	// lowerIn must contain the lower-cased token text when non-empty.
	lowerIn []string

	// pos must equal the token's coarse part-of-speech when set.
	pos string

	// optional lets the matcher skip this element.
	optional bool
}

func (p tokenPattern) matches(tok domain.Token) bool {
	if p.lemma != "" && tok.Lemma != p.lemma {
		return false
	}
	if len(p.lowerIn) > 0 {
		found := false
		for _, want := range p.lowerIn {
			if tok.Lower() == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.pos != "" && tok.POS != p.pos {
		return false
	}
	return true
}

// phraseSpan is a matched token range, start inclusive, end exclusive.
type phraseSpan struct {
	start, end int
}

// matchPhrase scans the token stream for occurrences of the pattern and
// returns the matched spans in document order. Optional elements are
// consumed greedily.
func matchPhrase(tokens []domain.Token, pattern []tokenPattern) []phraseSpan {
	var spans []phraseSpan
	for start := range tokens {
		if end, ok := matchFrom(tokens, pattern, start, 0); ok {
			spans = append(spans, phraseSpan{start: start, end: end})
		}
	}
	return spans
}

func matchFrom(tokens []domain.Token, pattern []tokenPattern, ti, pi int) (int, bool) {
	if pi == len(pattern) {
		return ti, true
	}
	p := pattern[pi]
	if ti < len(tokens) && p.matches(tokens[ti]) {
		if end, ok := matchFrom(tokens, pattern, ti+1, pi+1); ok {
			return end, true
		}
	}
	if p.optional {
		return matchFrom(tokens, pattern, ti, pi+1)
	}
	return 0, false
}
