package services

import (
	"context"
	"strings"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/core/ports/driven"
)

// scorerFunc adapts a function to the Scorer port.
type scorerFunc func(a, b string) int

func (f scorerFunc) Ratio(a, b string) int {
	return f(a, b)
}

// flatScorer returns the same score for every pair.
func flatScorer(score int) driven.Scorer {
	return scorerFunc(func(_, _ string) int { return score })
}

// phraseScorer scores by looking up the knowledge-base phrasing; pairs
// without an entry score zero.
func phraseScorer(scores map[string]int) driven.Scorer {
	return scorerFunc(func(_, phrase string) int { return scores[phrase] })
}

// fakeAnalyzer serves canned annotations and entities keyed by input
// text. Unknown inputs get a naive whitespace tokenization where the
// first token carries the nominal-subject label, so that bare unknown
// words classify as neither question nor command.
type fakeAnalyzer struct {
	annotations  map[string]*domain.Annotation
	entities     map[string][]domain.Entity
	annotateErr  error
	entitiesErr  error
	annotateHits int
	entityHits   int
}

var _ driven.Analyzer = (*fakeAnalyzer)(nil)

func (f *fakeAnalyzer) Annotate(_ context.Context, text string) (*domain.Annotation, error) {
	f.annotateHits++
	if f.annotateErr != nil {
		return nil, f.annotateErr
	}
	if ann, ok := f.annotations[text]; ok {
		return ann, nil
	}

	ann := &domain.Annotation{Text: text}
	for i, word := range strings.Fields(text) {
		dep := domain.DepOther
		if i == 0 {
			dep = domain.DepSubject
		}
		ann.Tokens = append(ann.Tokens, domain.Token{
			Text:  word,
			Tag:   "NN",
			POS:   domain.POSNoun,
			Dep:   dep,
			Lemma: strings.ToLower(word),
		})
	}
	return ann, nil
}

func (f *fakeAnalyzer) Entities(_ context.Context, text string) ([]domain.Entity, error) {
	f.entityHits++
	if f.entitiesErr != nil {
		return nil, f.entitiesErr
	}
	return f.entities[text], nil
}

func (f *fakeAnalyzer) Close() error { return nil }

// mustKB builds a knowledge base where entry i uses pattern patterns[i],
// phrasings questions[i], and a single answer fragment answers[i].
func mustKB(patterns []string, questions [][]string, answers []string) *domain.KnowledgeBase {
	groups := make([][]string, len(answers))
	for i, a := range answers {
		groups[i] = []string{a}
	}
	kb, err := domain.NewKnowledgeBase(patterns, questions, groups)
	if err != nil {
		panic(err)
	}
	return kb
}

// token builds a minimally annotated token.
func token(text, tag, pos, dep, lemma string) domain.Token {
	return domain.Token{Text: text, Tag: tag, POS: pos, Dep: dep, Lemma: lemma}
}

// annotation builds an annotation from pre-built tokens.
func annotation(text string, tokens ...domain.Token) *domain.Annotation {
	return &domain.Annotation{Text: text, Tokens: tokens}
}
