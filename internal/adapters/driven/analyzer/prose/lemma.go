package prose

import "strings"

// irregularLemmas covers the verbs the pipeline's lexicons care about
// plus the most common English irregulars.
var irregularLemmas = map[string]string{
	"went": "go", "gone": "go", "goes": "go", "going": "go",
	"gave": "give", "given": "give", "gives": "give", "giving": "give",
	"told": "tell", "tells": "tell", "telling": "tell",
	"showed": "show", "shown": "show", "shows": "show", "showing": "show",
	"found": "find", "finds": "find", "finding": "find",
	"brought": "bring", "brings": "bring", "bringing": "bring",
	"is": "be", "are": "be", "am": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"has": "have", "had": "have", "having": "have",
	"says": "say", "said": "say",
	"made": "make", "makes": "make", "making": "make",
	"took": "take", "taken": "take", "takes": "take", "taking": "take",
	"came": "come", "comes": "come", "coming": "come",
	"got": "get", "gets": "get", "getting": "get",
}

// lemmatize derives the base form of a token. Non-verbs are returned
// lower-cased unchanged; verbs go through the irregular table and then
// plain suffix stripping.
func lemmatize(word, tag string) string {
	lower := strings.ToLower(word)
	if lemma, ok := irregularLemmas[lower]; ok {
		return lemma
	}
	if !strings.HasPrefix(tag, "VB") {
		return lower
	}

	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 4:
		return strings.TrimSuffix(lower, "ies") + "y"
	case strings.HasSuffix(lower, "ing") && len(lower) > 5:
		return undouble(strings.TrimSuffix(lower, "ing"))
	case strings.HasSuffix(lower, "ied") && len(lower) > 4:
		return strings.TrimSuffix(lower, "ied") + "y"
	case strings.HasSuffix(lower, "ed") && len(lower) > 4:
		return undouble(strings.TrimSuffix(lower, "ed"))
	case strings.HasSuffix(lower, "es") && len(lower) > 4:
		return strings.TrimSuffix(lower, "s")
	case strings.HasSuffix(lower, "s") && len(lower) > 3:
		return strings.TrimSuffix(lower, "s")
	default:
		return lower
	}
}

// undouble collapses a doubled final consonant left by suffix
// stripping, as in "stopp" from "stopping".
func undouble(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) {
		return stem[:n-1]
	}
	return stem
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
