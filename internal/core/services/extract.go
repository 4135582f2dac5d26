package services

import (
	"strings"

	"github.com/hearthlabs/parley/internal/core/domain"
)

// locationPhrase matches "go"-flavored movement toward a place: a
// "go"-lemma verb, a directional preposition, an optional determiner,
// and a noun. The captured location is everything after the preposition.
var locationPhrase = []tokenPattern{
	{lemma: "go"},
	{lowerIn: []string{"to", "into", "toward"}},
	{pos: domain.POSDeterminer, optional: true},
	{pos: domain.POSNoun},
}

// locationCaptureOffset skips the verb and the preposition of a matched
// location phrase.
const locationCaptureOffset = 2

// locationLabels are the entity categories the fallback treats as places.
var locationLabels = map[string]bool{
	domain.LabelPlace:        true,
	domain.LabelLocation:     true,
	domain.LabelFacility:     true,
	domain.LabelOrganization: true,
}

// extractLocations returns candidate location strings for the
// utterance, in order of preference. The linguistic phrase pattern is
// tried first; entities with location-flavored labels are the fallback.
// Only the first candidate is ever consumed downstream.
func extractLocations(ann *domain.Annotation, entities []domain.Entity) []string {
	var locations []string
	for _, span := range matchPhrase(ann.Tokens, locationPhrase) {
		var words []string
		for _, tok := range ann.Tokens[span.start+locationCaptureOffset : span.end] {
			words = append(words, tok.Text)
		}
		locations = append(locations, strings.Join(words, " "))
	}
	if len(locations) > 0 {
		return locations
	}

	for _, ent := range entities {
		if locationLabels[ent.Label] {
			locations = append(locations, ent.Text)
		}
	}
	return locations
}
