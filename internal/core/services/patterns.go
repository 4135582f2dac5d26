package services

import (
	"regexp"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/logger"
)

// matchPattern tests the normalized utterance against each stored
// pattern in ascending intent order, compiled case-insensitive and
// anchored to the whole string. The first match wins, so knowledge-base
// order determines precedence. A pattern that fails to compile is
// logged and skipped; matching continues with the next intent.
func matchPattern(normalized string, kb *domain.KnowledgeBase) (int, bool) {
	for intent := 0; intent < kb.Len(); intent++ {
		source := kb.Pattern(intent)
		re, err := regexp.Compile("(?i)^" + source + "$")
		if err != nil {
			logger.Warn("intent %d: pattern %q does not compile: %v", intent, source, err)
			continue
		}
		if re.MatchString(normalized) {
			logger.Debug("pattern match: intent %d", intent)
			return intent, true
		}
	}
	return 0, false
}
