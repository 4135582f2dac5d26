// Package driven defines the interfaces the core consumes from the
// outside world: the linguistic analyzer, the similarity scorer, the
// knowledge-base source, configuration, and credentials. Adapters under
// internal/adapters/driven implement them; tests substitute fakes.
package driven
