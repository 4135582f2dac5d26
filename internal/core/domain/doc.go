// Package domain contains the core business entities for Parley.
// These types have no dependencies on external packages and represent
// the vocabulary of the intent-resolution pipeline: the knowledge base,
// utterances, match candidates, linguistic annotations, and results.
package domain
