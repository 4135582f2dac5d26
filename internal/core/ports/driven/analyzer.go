package driven

import (
	"context"

	"github.com/hearthlabs/parley/internal/core/domain"
)

// Analyzer provides linguistic analysis: tokenization, part-of-speech
// tags, dependency labels, and lemmas via Annotate, and named-entity
// recognition via Entities. Implementations are backed by one loaded
// model instance; such models are typically not safe for concurrent
// invocation, so implementations must serialize access internally.
type Analyzer interface {
	// Annotate tokenizes, tags, labels, and lemmatizes the text.
	Annotate(ctx context.Context, text string) (*domain.Annotation, error)

	// Entities runs named-entity recognition over the lower-cased text
	// and returns entities in document order.
	Entities(ctx context.Context, text string) ([]domain.Entity, error)

	// Close releases the model.
	Close() error
}
