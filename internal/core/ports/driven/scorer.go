package driven

// Scorer computes a normalized edit-similarity score between two
// strings. Any deterministic edit-distance-based metric satisfies the
// contract as long as identical strings score 100 and unrelated strings
// score near 0.
type Scorer interface {
	// Ratio returns a similarity score in [0, 100].
	Ratio(a, b string) int
}
