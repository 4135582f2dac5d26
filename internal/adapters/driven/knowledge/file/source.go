// Package file loads the knowledge base from a plain-text file and
// watches it for changes.
//
// The format is line-oriented: leading and trailing whitespace is
// trimmed, blank lines are skipped, and the remaining lines are
// consumed in blocks of four. Each block holds one regex pattern, two
// question phrasings, and one answer. A trailing partial block makes
// the whole file invalid.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/core/ports/driven"
)

// linesPerBlock is the size of one knowledge-base entry on disk:
// pattern, two questions, answer.
const linesPerBlock = 1 + domain.PhrasingsPerIntent + 1

// Ensure Source implements the interface.
var _ driven.KnowledgeSource = (*Source)(nil)

// Source reads a knowledge base from a file path.
type Source struct {
	path string
}

// New creates a knowledge source for the given path.
func New(path string) *Source {
	return &Source{path: path}
}

// Path returns the file path this source reads.
func (s *Source) Path() string {
	return s.path
}

// Load parses the file into an immutable knowledge base.
func (s *Source) Load(ctx context.Context) (*domain.KnowledgeBase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening knowledge file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading knowledge file: %w", err)
	}

	return parse(lines)
}

// parse consumes trimmed non-empty lines in blocks of four.
func parse(lines []string) (*domain.KnowledgeBase, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: file has no entries", domain.ErrEmptyKnowledgeBase)
	}
	if len(lines)%linesPerBlock != 0 {
		return nil, fmt.Errorf("%w: %d content lines, want a multiple of %d",
			domain.ErrMalformedKnowledgeBase, len(lines), linesPerBlock)
	}

	n := len(lines) / linesPerBlock
	patterns := make([]string, 0, n)
	questions := make([][]string, 0, n)
	answers := make([][]string, 0, n)
	for i := 0; i < len(lines); i += linesPerBlock {
		patterns = append(patterns, lines[i])
		questions = append(questions, lines[i+1:i+1+domain.PhrasingsPerIntent])
		answers = append(answers, []string{lines[i+linesPerBlock-1]})
	}

	return domain.NewKnowledgeBase(patterns, questions, answers)
}
