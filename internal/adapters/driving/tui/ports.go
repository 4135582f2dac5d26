// Package tui provides the interactive chat terminal interface.
// It implements a driving adapter following hexagonal architecture
// principles: the model only talks to the Resolver driving port.
package tui

import (
	"github.com/hearthlabs/parley/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Resolver resolves utterances and composes responses.
	Resolver driving.Resolver

	// Greeting overrides the opening transcript line. Empty selects
	// the default greeting.
	Greeting string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Resolver == nil {
		return ErrMissingResolver
	}
	return nil
}
