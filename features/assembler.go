package features

import (
	"comment-lab/errors"
	"fmt"
)

// EmbeddingColumn is the only column the pipeline feeds today.
const EmbeddingColumn = "embedding"

// Assembler concatenates named vector columns, in declared order, into one feature vector.
type Assembler struct {
	columns []string
}

func NewAssembler(columns ...string) *Assembler {
	return &Assembler{columns: columns}
}

func (a *Assembler) Columns() []string {
	return append([]string(nil), a.columns...)
}

func (a *Assembler) Assemble(row map[string][]float64) ([]float64, error) {
	size := 0
	for _, c := range a.columns {
		v, ok := row[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q", errors.ErrMissingFeatureColumn, c)
		}
		size += len(v)
	}
	out := make([]float64, 0, size)
	for _, c := range a.columns {
		out = append(out, row[c]...)
	}
	return out, nil
}

// AssembleAll builds one feature vector per row.
func (a *Assembler) AssembleAll(rows []map[string][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		v, err := a.Assemble(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
