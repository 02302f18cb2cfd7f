package redaction

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const maskChar = '*'

func TestMasker_Mask(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	masker, err := NewMasker([]string{"refund", "Refund", "manager", "idiot", "déçu", "John Smith"}, maskChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Single word",
			input:    "I want a refund now",
			expected: "I want a ****** now",
			words:    []string{"refund"},
		},
		{
			name:     "Repeated words keep spacing",
			input:    "refund refund",
			expected: "****** ******",
			words:    []string{"refund", "refund"},
		},
		{
			name:     "Inner punctuation is ignored",
			input:    "a r.e.f.u.n.d please",
			expected: "a *********** please",
			words:    []string{"refund"},
		},
		{
			name:     "Digits stay literal",
			input:    "my r3fund and 5 stars",
			expected: "my r3fund and 5 stars",
			words:    nil,
		},
		{
			name:     "Only whole words",
			input:    "refunded twice by the managers",
			expected: "refunded twice by the managers",
			words:    nil,
		},
		{
			name:     "Possessive still masked",
			input:    "call the manager's office",
			expected: "call the *******'s office",
			words:    []string{"manager"},
		},
		{
			name:     "Uppercase",
			input:    "What an IDIOT",
			expected: "What an *****",
			words:    []string{"idiot"},
		},
		{
			name:     "Accents on both sides",
			input:    "Très déçu, refund!",
			expected: "Très ****, ******!",
			words:    []string{"decu", "refund"},
		},
		{
			name:     "Missing accents still match",
			input:    "tres DECU",
			expected: "tres ****",
			words:    []string{"decu"},
		},
		{
			name:     "Decomposed accents",
			input:    "de\u0301c\u0327u!",
			expected: "******!",
			words:    []string{"decu"},
		},
		{
			name:     "Name across extra whitespace",
			input:    "ask John   Smith today",
			expected: "ask ************ today",
			words:    []string{"john smith"},
		},
		{
			name:     "First name alone is kept",
			input:    "John was kind",
			expected: "John was kind",
			words:    nil,
		},
		{
			name:     "Nothing to mask",
			input:    "Lovely staff",
			expected: "Lovely staff",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := masker.Mask(tt.input)
			req.Equal(tt.expected, content, "test=%s", tt.name)
			req.Equal(tt.words, words)
		})
	}
}

func TestFold(t *testing.T) {
	req := require.New(t)

	text := fold("  Éric,\t Dupont ")
	req.Equal("eric dupont", string(text.runes))
	req.Equal([]int{2, 3, 4, 5, 7, 9, 10, 11, 12, 13, 14}, text.source)
}

func TestMasker_NoWords(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	masker, err := NewMasker(nil, maskChar, log)
	req.NoError(err)
	content, words := masker.Mask("refund please")
	req.Equal("refund please", content)
	req.Nil(words)

	masker, err = NewMasker([]string{"...", ",,,", ""}, maskChar, log)
	req.NoError(err)
	content, _ = masker.Mask("Hello ...")
	req.Equal("Hello ...", content)
}

func TestMasker_MaskAll(t *testing.T) {
	req := require.New(t)
	masker, err := NewMasker([]string{"refund"}, '#', logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	in := []string{"refund", "fine"}
	req.Equal([]string{"######", "fine"}, masker.MaskAll(in))
	req.Equal("refund", in[0])
}
