package nlp

import (
	"unicode"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/blugelabs/bluge/analysis/tokenizer"
)

type Tokenizes interface {
	Tokenize(text string) []string
}

// Tokenizer cuts text on every run of characters that are neither letters nor digits
// and lowercases what is left.
type Tokenizer struct {
	analyzer *analysis.Analyzer
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		analyzer: &analysis.Analyzer{
			Tokenizer: tokenizer.NewCharacterTokenizer(isAlphanumeric),
			TokenFilters: []analysis.TokenFilter{
				token.NewLowerCaseFilter(),
			},
		},
	}
}

func (t *Tokenizer) Tokenize(text string) []string {
	tokens := make([]string, 0)
	if text == "" {
		return tokens
	}
	for _, tok := range t.analyzer.Analyze([]byte(text)) {
		if len(tok.Term) == 0 {
			continue
		}
		tokens = append(tokens, string(tok.Term))
	}
	return tokens
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
