package services

import (
	"strings"

	"github.com/hearthlabs/parley/internal/core/domain"
)

// Fixed lexicons for the heuristic rules.
var (
	whWords = map[string]bool{
		"who": true, "what": true, "when": true, "where": true,
		"why": true, "how": true, "which": true, "whom": true, "whose": true,
	}

	modalVerbs = map[string]bool{
		"can": true, "could": true, "would": true, "should": true, "will": true,
	}

	commandVerbs = map[string]bool{
		"open": true, "show": true, "tell": true, "find": true,
		"give": true, "go": true, "bring": true,
	}
)

// classify decides question-vs-command for an utterance no knowledge-base
// entry matched. Question rules are checked first; command rules run only
// when no question rule fired.
func classify(ann *domain.Annotation, looseCommandRule bool) domain.Classification {
	if isQuestion(ann) {
		return domain.ClassQuestion
	}
	if isCommand(ann, looseCommandRule) {
		return domain.ClassCommand
	}
	return domain.ClassNeither
}

// isQuestion fires on a trailing question mark, a wh-word, a token
// tagged as a modal auxiliary, or a modal-lexicon word.
func isQuestion(ann *domain.Annotation) bool {
	if strings.HasSuffix(strings.TrimSpace(ann.Text), "?") {
		return true
	}
	for _, tok := range ann.Tokens {
		if whWords[tok.Lower()] {
			return true
		}
	}
	for _, tok := range ann.Tokens {
		if tok.Tag == domain.TagModal && tok.Dep == domain.DepAux {
			return true
		}
	}
	for _, tok := range ann.Tokens {
		if modalVerbs[tok.Lower()] {
			return true
		}
	}
	return false
}

// isCommand fires on a base-form root verb, on any token whose
// dependency is not a nominal subject (the loose rule: near-always true
// for anything longer than a bare subject, kept for compatibility behind
// the looseCommandRule option), on a command-lexicon root verb lemma, or
// on a "please"/"kindly" courtesy marker.
func isCommand(ann *domain.Annotation, looseCommandRule bool) bool {
	if root, ok := ann.Root(); ok && root.Tag == domain.TagBaseVerb {
		return true
	}
	if looseCommandRule {
		for _, tok := range ann.Tokens {
			if tok.Dep != domain.DepSubject {
				return true
			}
		}
	}
	if root, ok := ann.Root(); ok && root.POS == domain.POSVerb && commandVerbs[root.Lemma] {
		return true
	}
	lower := strings.ToLower(ann.Text)
	if strings.Contains(lower, "please") || strings.Contains(lower, "kindly") {
		return true
	}
	return false
}
