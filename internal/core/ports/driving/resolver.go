package driving

import (
	"context"

	"github.com/hearthlabs/parley/internal/core/domain"
)

// Resolver turns a free-text utterance into a response. Transports
// (console, Discord, MCP) call Understand then Respond and deliver the
// resulting string back to the originating channel.
type Resolver interface {
	// Understand resolves the user's utterance to an intent: a
	// knowledge-base hit, a synthesized fallback, or no resolution.
	Understand(ctx context.Context, utterance string) (domain.IntentResult, error)

	// Respond composes the final response text for a resolved intent.
	Respond(result domain.IntentResult) string
}
