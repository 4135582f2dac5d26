package domain

import "fmt"

// PhrasingsPerIntent is the number of question phrasings stored per
// knowledge-base entry.
const PhrasingsPerIntent = 2

// KnowledgeBase is the immutable parsed store of regex patterns, question
// phrasings, and answer fragments. The three sequences are parallel: the
// shared index is the intent id. It is built once at startup and shared
// read-only by all pipeline invocations, so it needs no locking.
type KnowledgeBase struct {
	patterns  []string
	questions [][]string
	answers   [][]string
}

// NewKnowledgeBase builds a knowledge base from parallel sequences.
// It fails fast when the sequences have unequal lengths, when a question
// group does not hold exactly PhrasingsPerIntent phrasings, or when an
// answer group is empty.
func NewKnowledgeBase(patterns []string, questions [][]string, answers [][]string) (*KnowledgeBase, error) {
	if len(patterns) != len(questions) || len(patterns) != len(answers) {
		return nil, fmt.Errorf("%w: %d patterns, %d question groups, %d answer groups",
			ErrMalformedKnowledgeBase, len(patterns), len(questions), len(answers))
	}
	for i, group := range questions {
		if len(group) != PhrasingsPerIntent {
			return nil, fmt.Errorf("%w: intent %d has %d question phrasings, want %d",
				ErrMalformedKnowledgeBase, i, len(group), PhrasingsPerIntent)
		}
	}
	for i, group := range answers {
		if len(group) == 0 {
			return nil, fmt.Errorf("%w: intent %d has no answer fragments",
				ErrMalformedKnowledgeBase, i)
		}
	}

	return &KnowledgeBase{
		patterns:  patterns,
		questions: questions,
		answers:   answers,
	}, nil
}

// Len returns the number of entries (intents) in the knowledge base.
func (kb *KnowledgeBase) Len() int {
	return len(kb.patterns)
}

// Pattern returns the regex source for the given intent id.
func (kb *KnowledgeBase) Pattern(intent int) string {
	return kb.patterns[intent]
}

// Questions returns the question phrasings for the given intent id.
func (kb *KnowledgeBase) Questions(intent int) []string {
	return kb.questions[intent]
}

// Answers returns the answer fragments for the given intent id.
func (kb *KnowledgeBase) Answers(intent int) []string {
	return kb.answers[intent]
}

// Contains reports whether the intent id indexes a knowledge-base entry.
func (kb *KnowledgeBase) Contains(intent int) bool {
	return intent >= 0 && intent < len(kb.patterns)
}
