package nlp

import (
	"sort"

	"github.com/abadojack/whatlanggo"
)

// UndeterminedLanguage is returned when no comment could be reliably detected.
const UndeterminedLanguage = "und"

// DetectCorpusLanguage returns the ISO 639-1 code most comments are reliably written in.
// Ties go to the lexically smallest code so the result does not depend on map order.
func DetectCorpusLanguage(texts []string) string {
	votes := make(map[string]int)
	for _, text := range texts {
		if text == "" {
			continue
		}
		info := whatlanggo.Detect(text)
		if !info.IsReliable() {
			continue
		}
		if code := info.Lang.Iso6391(); code != "" {
			votes[code]++
		}
	}
	if len(votes) == 0 {
		return UndeterminedLanguage
	}

	codes := make([]string, 0, len(votes))
	for code := range votes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	best := codes[0]
	for _, code := range codes[1:] {
		if votes[code] > votes[best] {
			best = code
		}
	}
	return best
}
