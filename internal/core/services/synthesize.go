package services

import (
	"fmt"
	"strings"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/logger"
)

// Fixed URL templates for fallback links.
const (
	searchURLPrefix = "https://www.google.com/search?q="
	mapsURLPrefix   = "https://www.google.com/maps/search/?api=1&query="
)

// Clarification prompts, worded per classification.
const (
	questionClarification = "I'm not sure what you're asking. Can you please clarify?"
	commandClarification  = "I'm not sure what you want me to do. Can you please clarify?"
)

// searchLink builds a web-search URL for the text, encoding spaces as
// plus signs.
func searchLink(text string) string {
	return searchURLPrefix + strings.ReplaceAll(text, " ", "+")
}

// mapLink builds a maps URL for the location, encoding spaces as plus
// signs.
func mapLink(location string) string {
	return mapsURLPrefix + strings.ReplaceAll(location, " ", "+")
}

// synthesize builds the fallback response for an utterance both match
// phases missed. Questions flavored with "where"/"location" get a map
// link when a location can be extracted; otherwise questions and
// commands get search links for their first named entity, or a
// clarification prompt when there is none. Utterances that are neither
// stay unresolved.
func synthesize(normalized string, ann *domain.Annotation, entities []domain.Entity, looseCommandRule bool) domain.IntentResult {
	class := classify(ann, looseCommandRule)
	logger.Debug("classified as %s", class)

	switch class {
	case domain.ClassQuestion:
		if strings.HasPrefix(normalized, "where") || strings.Contains(normalized, "location") {
			if locations := extractLocations(ann, entities); len(locations) > 0 {
				location := locations[0]
				return domain.Synthesize(fmt.Sprintf(
					"It seems like you're asking about %s. Here's a Google Maps link: %s",
					location, mapLink(location)))
			}
		}
		if len(entities) > 0 {
			entity := entities[0]
			return domain.Synthesize(fmt.Sprintf(
				"Sorry, I don't know about %s. You can check these links: %s\n %s",
				entity.Text, searchLink(entity.Text), searchLink(normalized)))
		}
		return domain.Synthesize(questionClarification)

	case domain.ClassCommand:
		if len(entities) > 0 {
			entity := entities[0]
			return domain.Synthesize(fmt.Sprintf(
				"Sorry, I don't know how to do that. You can check this link: %s",
				searchLink(entity.Text)))
		}
		return domain.Synthesize(commandClarification)

	default:
		return domain.Unresolved()
	}
}
