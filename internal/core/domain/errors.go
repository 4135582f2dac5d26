package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMalformedKnowledgeBase indicates the parallel pattern, question,
	// and answer sequences do not line up. Construction fails fast rather
	// than letting intents misindex.
	ErrMalformedKnowledgeBase = errors.New("malformed knowledge base")

	// ErrEmptyKnowledgeBase indicates a knowledge base with no entries.
	ErrEmptyKnowledgeBase = errors.New("empty knowledge base")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAnalyzerUnavailable indicates the linguistic analyzer is not
	// configured. Heuristic classification and extraction are disabled.
	ErrAnalyzerUnavailable = errors.New("linguistic analyzer unavailable")

	// ErrScorerUnavailable indicates the similarity scorer is not
	// configured. Fuzzy matching is disabled.
	ErrScorerUnavailable = errors.New("similarity scorer unavailable")

	// ErrTokenNotFound indicates no chat credential could be located.
	ErrTokenNotFound = errors.New("bot token not found")

	// ErrUnknownFallbackPolicy indicates an unrecognised fallback policy name.
	ErrUnknownFallbackPolicy = errors.New("unknown fallback policy")
)
