package driven

import (
	"context"

	"github.com/hearthlabs/parley/internal/core/domain"
)

// KnowledgeSource loads a knowledge base from an external source.
// The loader owns the source format; the core only sees the parsed,
// validated KnowledgeBase.
type KnowledgeSource interface {
	// Load parses the source and returns an immutable knowledge base.
	// Malformed sources (truncated blocks, unequal sequences) are
	// rejected here, never papered over.
	Load(ctx context.Context) (*domain.KnowledgeBase, error)
}
