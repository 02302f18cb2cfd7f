package redaction

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Masker hides configured words (customer names, staff names, order references) in the
// comments shown to the reader. Matching ignores case, accents and punctuation, any run of
// whitespace counts as one space, and only whole words are masked. Digits are kept as they are:
// in customer text "5" is a rating or a quantity, not a letter in disguise.
type Masker struct {
	matcher  *goahocorasick.Machine
	maskChar rune
	log      *slog.Logger
}

// folded is a comment reduced to comparable runes, each one pointing back to the rune
// of the original text it came from.
type folded struct {
	runes  []rune
	source []int
}

// NewMasker builds the automaton. Words that fold to nothing are ignored,
// and an empty list gives a masker that returns texts unchanged.
func NewMasker(words []string, maskChar rune, log *slog.Logger) (*Masker, error) {
	keys := lo.Uniq(lo.FilterMap(words, func(word string, _ int) (string, bool) {
		key := string(fold(word).runes)
		return key, key != ""
	}))

	masker := &Masker{maskChar: maskChar, log: log}
	if len(keys) == 0 {
		return masker, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(lo.Map(keys, func(key string, _ int) []rune { return []rune(key) })); err != nil {
		return nil, err
	}
	masker.matcher = m
	return masker, nil
}

// Mask replaces every character of a matched word in the original text, keeping its length.
// It also returns the dictionary words that were found, in order of appearance.
func (m *Masker) Mask(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	text := fold(original)
	if len(text.runes) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(text.runes, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var found []string
	for _, span := range spans {
		start, end := span.Pos, span.Pos+len(span.Word)
		if start < 0 || end > len(text.source) {
			continue
		}
		first, last := text.source[start], text.source[end-1]
		if !wholeWord(origRunes, first, last) {
			continue
		}
		for i := first; i <= last; i++ {
			origRunes[i] = m.maskChar
		}
		found = append(found, string(span.Word))
	}
	if len(found) > 0 {
		m.log.Debug("Masked words", "count", len(found))
	}
	return string(origRunes), found
}

// MaskAll masks every text and returns new slices.
func (m *Masker) MaskAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i], _ = m.Mask(t)
	}
	return out
}

// fold keeps lowercased, accent-free letters and digits. Whitespace collapses to a single
// space between words, everything else is dropped.
func fold(input string) folded {
	in := []rune(input)
	out := folded{runes: make([]rune, 0, len(in)), source: make([]int, 0, len(in))}
	pendingSpace := -1
	for i, r := range in {
		switch {
		case unicode.IsSpace(r):
			if len(out.runes) > 0 && pendingSpace < 0 {
				pendingSpace = i
			}
		case unicode.Is(unicode.Mn, r):
			// combining accent of an already decomposed letter
		case isWordRune(r):
			if pendingSpace >= 0 {
				out.runes = append(out.runes, ' ')
				out.source = append(out.source, pendingSpace)
				pendingSpace = -1
			}
			out.runes = append(out.runes, baseLetter(r))
			out.source = append(out.source, i)
		}
	}
	return out
}

// baseLetter strips the diacritics of r through its canonical decomposition: "É" gives "e".
func baseLetter(r rune) rune {
	decomposed := []rune(norm.NFD.String(string(r)))
	return unicode.ToLower(decomposed[0])
}

// wholeWord reports whether the runes around [first, last] are not part of a word.
func wholeWord(text []rune, first, last int) bool {
	if first > 0 && isWordRune(text[first-1]) {
		return false
	}
	return last+1 >= len(text) || !isWordRune(text[last+1])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
