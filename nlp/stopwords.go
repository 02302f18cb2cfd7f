package nlp

import (
	"sort"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/lang/en"
	"github.com/blugelabs/bluge/analysis/token"
)

// StopWordLanguage is the ISO 639-1 code of DefaultStopWords.
const StopWordLanguage = "en"

// StopWordFilter drops tokens that exactly match a stop word and keeps the order of the others.
type StopWordFilter struct {
	words  analysis.TokenMap
	filter *token.StopTokensFilter
}

// DefaultStopWords is the English list shipped with bluge.
func DefaultStopWords() []string {
	words := make([]string, 0, len(en.StopWords()))
	for w := range en.StopWords() {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func NewStopWordFilter(words []string) *StopWordFilter {
	tokenMap := analysis.NewTokenMap()
	for _, w := range words {
		tokenMap[w] = true
	}
	return &StopWordFilter{
		words:  tokenMap,
		filter: token.NewStopTokensFilter(tokenMap),
	}
}

func (f *StopWordFilter) IsStopWord(word string) bool {
	return f.words[word]
}

func (f *StopWordFilter) Filter(tokens []string) []string {
	stream := make(analysis.TokenStream, len(tokens))
	for i, t := range tokens {
		stream[i] = &analysis.Token{Term: []byte(t), PositionIncr: 1}
	}
	kept := f.filter.Filter(stream)
	out := make([]string, 0, len(kept))
	for _, t := range kept {
		out = append(out, string(t.Term))
	}
	return out
}
