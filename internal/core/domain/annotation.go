package domain

import "strings"

// Dependency labels the classifier relies on. The analyzer backend only
// has to distinguish these three; anything else may carry DepOther.
const (
	DepRoot    = "ROOT"
	DepAux     = "aux"
	DepSubject = "nsubj"
	DepOther   = "dep"
)

// Coarse part-of-speech categories used by the extractor's phrase
// patterns.
const (
	POSVerb       = "VERB"
	POSNoun       = "NOUN"
	POSDeterminer = "DET"
	POSPronoun    = "PRON"
	POSOther      = "X"
)

// TagModal is the Penn Treebank tag for modal auxiliaries.
const TagModal = "MD"

// TagBaseVerb is the Penn Treebank tag for base-form verbs, the shape an
// imperative takes.
const TagBaseVerb = "VB"

// Token is one annotated token of an utterance.
type Token struct {
	// Text is the token as it appeared.
	Text string

	// Tag is the fine-grained (Penn Treebank) part-of-speech tag.
	Tag string

	// POS is the coarse part-of-speech category.
	POS string

	// Dep is the grammatical dependency label.
	Dep string

	// Lemma is the base form of the token.
	Lemma string
}

// Lower returns the lower-cased token text.
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}

// Annotation is the linguistic analysis of one utterance.
type Annotation struct {
	// Text is the analyzed input.
	Text string

	// Tokens are the annotated tokens in document order.
	Tokens []Token
}

// Root returns the root token of the annotation, if any.
func (a *Annotation) Root() (Token, bool) {
	for _, tok := range a.Tokens {
		if tok.Dep == DepRoot {
			return tok, true
		}
	}
	return Token{}, false
}

// Entity is a named span of text with its semantic category, e.g.
// ("paris", "GPE") or ("louvre", "ORG"). Labels follow the usual NER
// conventions: GPE, LOC, FAC, ORG, PERSON.
type Entity struct {
	Text  string
	Label string
}

// Entity labels treated as location-flavored by the extractor fallback.
const (
	LabelPlace        = "GPE"
	LabelLocation     = "LOC"
	LabelFacility     = "FAC"
	LabelOrganization = "ORG"
	LabelPerson       = "PERSON"
)
