package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStopWordFilter_Filter(t *testing.T) {
	filter := NewStopWordFilter(DefaultStopWords())

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "Stop words removed and order kept", input: []string{"the", "service", "is", "a", "delight"}, expected: []string{"service", "delight"}},
		{name: "Nothing to remove", input: []string{"great", "service", "thanks"}, expected: []string{"great", "service", "thanks"}},
		{name: "Only stop words", input: []string{"the", "and", "of"}, expected: []string{}},
		{name: "Empty sequence", input: []string{}, expected: []string{}},
		{name: "Exact match only", input: []string{"theory", "another"}, expected: []string{"theory", "another"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, filter.Filter(tt.input))
		})
	}
}

func TestStopWordFilter_Idempotent(t *testing.T) {
	req := require.New(t)
	filter := NewStopWordFilter(append(DefaultStopWords(), "refund"))
	input := []string{"want", "a", "refund", "for", "the", "broken", "kettle"}

	once := filter.Filter(input)
	twice := filter.Filter(once)
	req.Equal(once, twice)
	req.Equal([]string{"want", "broken", "kettle"}, once)
	req.Len(input, 7)
}

func TestStopWordFilter_CustomList(t *testing.T) {
	req := require.New(t)
	filter := NewStopWordFilter([]string{"meh"})
	req.True(filter.IsStopWord("meh"))
	req.False(filter.IsStopWord("the"))
	req.Equal([]string{"the", "food"}, filter.Filter([]string{"meh", "the", "food"}))
}

func TestDefaultStopWords(t *testing.T) {
	req := require.New(t)
	words := DefaultStopWords()
	req.Contains(words, "the")
	req.Contains(words, "and")
	req.IsIncreasing(words)
}
