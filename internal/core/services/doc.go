// Package services implements the intent-resolution pipeline: text
// normalization, staged matching against the knowledge base (anchored
// regex, then fuzzy similarity), heuristic question/command
// classification, entity and location extraction, fallback synthesis,
// and response composition. The only exported surface is the
// ResolverService; the phases are internal helpers.
package services
