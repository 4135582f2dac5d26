package domain

import "fmt"

// Classification is the heuristic verdict for an unmatched utterance.
type Classification int

const (
	// ClassNeither means no question or command rule fired.
	ClassNeither Classification = iota

	// ClassQuestion means a question rule fired.
	ClassQuestion

	// ClassCommand means a command rule fired (and no question rule did).
	ClassCommand
)

// String returns a human-readable label for the classification.
func (c Classification) String() string {
	switch c {
	case ClassQuestion:
		return "question"
	case ClassCommand:
		return "command"
	default:
		return "neither"
	}
}

// FallbackPolicy names when the heuristic phase runs after the fuzzy
// phase misses. The legacy policy reproduces a quirk of the original
// system: an utterance whose best candidate cleared the 50-point
// pre-filter floor but missed the acceptance threshold gets neither a
// knowledge-base answer nor a heuristic fallback.
type FallbackPolicy string

const (
	// FallbackLegacy runs heuristics only when the pre-filter produced
	// zero candidates.
	FallbackLegacy FallbackPolicy = "legacy"

	// FallbackOnThreshold runs heuristics whenever no candidate reached
	// the acceptance threshold.
	FallbackOnThreshold FallbackPolicy = "threshold"
)

// ParseFallbackPolicy maps a config string to a FallbackPolicy.
// The empty string selects the legacy policy.
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch FallbackPolicy(s) {
	case FallbackLegacy, "":
		return FallbackLegacy, nil
	case FallbackOnThreshold:
		return FallbackOnThreshold, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFallbackPolicy, s)
	}
}
