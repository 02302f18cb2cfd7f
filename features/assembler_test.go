package features

import (
	"comment-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssembler_Assemble(t *testing.T) {
	t.Run("Single column is an identity", func(t *testing.T) {
		req := require.New(t)
		a := NewAssembler(EmbeddingColumn)
		got, err := a.Assemble(map[string][]float64{EmbeddingColumn: {0.1, -0.2}})
		req.NoError(err)
		req.Equal([]float64{0.1, -0.2}, got)
	})

	t.Run("Columns are concatenated in declared order", func(t *testing.T) {
		req := require.New(t)
		a := NewAssembler("b", "a")
		got, err := a.Assemble(map[string][]float64{"a": {1, 2}, "b": {3}})
		req.NoError(err)
		req.Equal([]float64{3, 1, 2}, got)
	})

	t.Run("Missing column", func(t *testing.T) {
		req := require.New(t)
		a := NewAssembler(EmbeddingColumn, "length")
		_, err := a.Assemble(map[string][]float64{EmbeddingColumn: {1}})
		req.True(errors.Is(err, errors.ErrMissingFeatureColumn))
	})

	t.Run("Output does not alias the input", func(t *testing.T) {
		req := require.New(t)
		in := []float64{1, 2}
		got, err := NewAssembler(EmbeddingColumn).Assemble(map[string][]float64{EmbeddingColumn: in})
		req.NoError(err)
		got[0] = 42
		req.Equal(1.0, in[0])
	})
}

func TestAssembler_AssembleAll(t *testing.T) {
	req := require.New(t)
	a := NewAssembler(EmbeddingColumn)
	rows := []map[string][]float64{
		{EmbeddingColumn: {1}},
		{EmbeddingColumn: {2}},
	}
	got, err := a.AssembleAll(rows)
	req.NoError(err)
	req.Equal([][]float64{{1}, {2}}, got)

	_, err = a.AssembleAll([]map[string][]float64{{}})
	req.ErrorIs(err, errors.ErrMissingFeatureColumn)
}
