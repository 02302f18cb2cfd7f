package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func smallParams() Params {
	p := DefaultParams()
	p.VectorSize = 8
	p.MinCount = 1
	p.Epochs = 3
	return p
}

var reviews = [][]string{
	{"great", "service", "thanks"},
	{"terrible", "awful", "experience"},
	{"great", "staff", "great", "service"},
	{"awful", "delivery", "terrible", "support"},
}

func TestSkipGram_Deterministic(t *testing.T) {
	req := require.New(t)

	first, err := NewSkipGram(smallParams()).Fit(reviews)
	req.NoError(err)
	second, err := NewSkipGram(smallParams()).Fit(reviews)
	req.NoError(err)

	req.Equal(first.Words(), second.Words())
	for _, w := range first.Words() {
		v1, ok := first.Vector(w)
		req.True(ok)
		v2, ok := second.Vector(w)
		req.True(ok)
		req.Equal(v1, v2, "word=%s", w)
		req.Len(v1, 8)
	}
}

func TestSkipGram_SeedChangesVectors(t *testing.T) {
	req := require.New(t)
	p := smallParams()
	first, err := NewSkipGram(p).Fit(reviews)
	req.NoError(err)

	p.Seed = 7
	second, err := NewSkipGram(p).Fit(reviews)
	req.NoError(err)

	req.Equal(first.Words(), second.Words(), "vocabulary does not depend on the seed")
	v1, _ := first.Vector("great")
	v2, _ := second.Vector("great")
	req.NotEqual(v1, v2)
}

func TestSkipGram_MinCount(t *testing.T) {
	req := require.New(t)
	p := smallParams()
	p.MinCount = 2
	model, err := NewSkipGram(p).Fit(reviews)
	req.NoError(err)
	req.ElementsMatch([]string{"great", "service", "terrible", "awful"}, model.Words())
}

func TestSkipGram_EmptyVocabulary(t *testing.T) {
	req := require.New(t)
	model, err := NewSkipGram(DefaultParams()).Fit([][]string{{"only", "once"}})
	req.NoError(err)
	req.True(model.Empty())
	req.Equal(make([]float64, 100), model.Transform([]string{"only", "once"}))
}

func TestSkipGram_InvalidParams(t *testing.T) {
	req := require.New(t)
	p := smallParams()
	p.VectorSize = 0
	_, err := NewSkipGram(p).Fit(reviews)
	req.Error(err)
}

func TestModel_Transform(t *testing.T) {
	req := require.New(t)
	model, err := NewSkipGram(smallParams()).Fit(reviews)
	req.NoError(err)

	great, _ := model.Vector("great")
	service, _ := model.Vector("service")

	t.Run("Mean of in-vocabulary tokens", func(t *testing.T) {
		got := model.Transform([]string{"great", "unknown", "service"})
		for i := range got {
			req.InDelta((great[i]+service[i])/2, got[i], 1e-12)
		}
	})

	t.Run("All tokens out of vocabulary gives the zero vector", func(t *testing.T) {
		req.Equal(make([]float64, 8), model.Transform([]string{"never", "seen"}))
	})

	t.Run("Empty sequence gives the zero vector", func(t *testing.T) {
		req.Equal(make([]float64, 8), model.Transform(nil))
	})
}

func TestModel_TransformAll(t *testing.T) {
	req := require.New(t)
	model, err := NewSkipGram(smallParams()).Fit(reviews)
	req.NoError(err)

	vectors, err := model.TransformAll(context.Background(), reviews)
	req.NoError(err)
	req.Len(vectors, len(reviews))
	for i, doc := range reviews {
		req.Equal(model.Transform(doc), vectors[i])
	}
}

func TestModel_TransformAll_Cancelled(t *testing.T) {
	req := require.New(t)
	model, err := NewSkipGram(smallParams()).Fit(reviews)
	req.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = model.TransformAll(ctx, reviews)
	req.ErrorIs(err, context.Canceled)
}
