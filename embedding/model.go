package embedding

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Model is a trained embedding, only valid for the run that produced it.
type Model struct {
	vocab   Vocabulary
	vectors [][]float64
	dim     int
	workers int
}

func (m *Model) Dim() int {
	return m.dim
}

func (m *Model) VocabularySize() int {
	return m.vocab.Len()
}

// Empty reports a model without any word, every comment then maps to the zero vector.
func (m *Model) Empty() bool {
	return m.vocab.Len() == 0
}

func (m *Model) Words() []string {
	return m.vocab.Words()
}

func (m *Model) Vector(word string) ([]float64, bool) {
	i, ok := m.vocab.Index(word)
	if !ok {
		return nil, false
	}
	return append([]float64(nil), m.vectors[i]...), true
}

// Transform averages the vectors of the in-vocabulary tokens.
func (m *Model) Transform(tokens []string) []float64 {
	out := make([]float64, m.dim)
	n := 0
	for _, t := range tokens {
		if i, ok := m.vocab.Index(t); ok {
			floats.Add(out, m.vectors[i])
			n++
		}
	}
	if n > 0 {
		floats.Scale(1/float64(n), out)
	}
	return out
}

// TransformAll runs Transform over every document. Output order follows input order.
func (m *Model) TransformAll(ctx context.Context, docs [][]string) ([][]float64, error) {
	out := make([][]float64, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	if m.workers > 0 {
		g.SetLimit(m.workers)
	}
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = m.Transform(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
