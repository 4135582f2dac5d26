package mcp

import (
	"github.com/hearthlabs/parley/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Resolver resolves utterances and composes responses.
	Resolver driving.Resolver
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Resolver == nil {
		return ErrMissingResolver
	}
	return nil
}
