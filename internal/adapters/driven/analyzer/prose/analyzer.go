// Package prose adapts the prose NLP library to the Analyzer port.
// prose supplies tokenization, Penn Treebank tags, and named-entity
// recognition; lemmas and the dependency labels the classifier needs
// are derived here from the tagged token stream.
package prose

import (
	"context"
	"fmt"
	"strings"
	"sync"

	prose "github.com/jdkato/prose/v2"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/core/ports/driven"
)

// Ensure Analyzer implements the interface.
var _ driven.Analyzer = (*Analyzer)(nil)

// Analyzer is the prose-backed linguistic capability. The underlying
// model is shared and not safe for concurrent use, so every call is
// serialized through a mutex.
type Analyzer struct {
	mu sync.Mutex
}

// NewAnalyzer creates a prose-backed analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Annotate tokenizes and tags the text, then derives lemmas and
// dependency labels.
func (a *Analyzer) Annotate(ctx context.Context, text string) (*domain.Annotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	ann := &domain.Annotation{Text: text}
	for _, tok := range doc.Tokens() {
		ann.Tokens = append(ann.Tokens, domain.Token{
			Text:  tok.Text,
			Tag:   tok.Tag,
			POS:   coarsePOS(tok.Tag),
			Dep:   domain.DepOther,
			Lemma: lemmatize(tok.Text, tok.Tag),
		})
	}
	labelDependencies(ann.Tokens)
	return ann, nil
}

// Entities runs named-entity recognition over the lower-cased text.
func (a *Analyzer) Entities(ctx context.Context, text string) ([]domain.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := prose.NewDocument(strings.ToLower(text),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	var entities []domain.Entity
	for _, ent := range doc.Entities() {
		entities = append(entities, domain.Entity{
			Text:  ent.Text,
			Label: ent.Label,
		})
	}
	return entities, nil
}

// Close releases the model.
func (a *Analyzer) Close() error {
	return nil
}

// coarsePOS maps a Penn Treebank tag to the coarse category the phrase
// patterns use.
func coarsePOS(tag string) string {
	switch {
	case tag == domain.TagModal || strings.HasPrefix(tag, "VB"):
		return domain.POSVerb
	case strings.HasPrefix(tag, "NN"):
		return domain.POSNoun
	case tag == "DT" || tag == "PDT" || tag == "WDT":
		return domain.POSDeterminer
	case tag == "PRP" || tag == "PRP$":
		return domain.POSPronoun
	default:
		return domain.POSOther
	}
}

// labelDependencies assigns the three labels the heuristics read. The
// first non-modal verb is the root; modals before it are auxiliaries;
// the nearest nominal before the root is the subject. A verbless
// fragment gets its first nominal labeled as the subject of an elided
// predicate, so bare nouns don't trip the permissive command rule.
func labelDependencies(tokens []domain.Token) {
	root := -1
	for i, tok := range tokens {
		if tok.POS == domain.POSVerb && tok.Tag != domain.TagModal {
			root = i
			break
		}
	}

	if root < 0 {
		for i, tok := range tokens {
			if nominal(tok) {
				tokens[i].Dep = domain.DepSubject
				break
			}
		}
		return
	}

	tokens[root].Dep = domain.DepRoot
	for i := 0; i < root; i++ {
		if tokens[i].Tag == domain.TagModal {
			tokens[i].Dep = domain.DepAux
		}
	}
	for i := root - 1; i >= 0; i-- {
		if nominal(tokens[i]) {
			tokens[i].Dep = domain.DepSubject
			break
		}
	}
}

func nominal(tok domain.Token) bool {
	return tok.POS == domain.POSNoun || tok.POS == domain.POSPronoun
}
