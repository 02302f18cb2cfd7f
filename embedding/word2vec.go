package embedding

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	unigramPower   = 0.75
	minLearningPct = 1e-4
	maxExp         = 6.0
)

type Embeds interface {
	Fit(corpus [][]string) (*Model, error)
}

type Params struct {
	VectorSize   int
	MinCount     int
	Window       int
	Negative     int
	Epochs       int
	LearningRate float64
	Seed         int64
	Workers      int
}

func DefaultParams() Params {
	return Params{
		VectorSize:   100,
		MinCount:     5,
		Window:       5,
		Negative:     5,
		Epochs:       5,
		LearningRate: 0.025,
		Seed:         123,
		Workers:      4,
	}
}

// SkipGram trains word vectors with the skip-gram objective and negative sampling.
// Training is sequential and driven by a single seeded source, so the same corpus and
// parameters always give the same vectors.
type SkipGram struct {
	params Params
}

func NewSkipGram(params Params) *SkipGram {
	return &SkipGram{params: params}
}

func (s *SkipGram) Fit(corpus [][]string) (*Model, error) {
	p := s.params
	if p.VectorSize <= 0 || p.Window <= 0 || p.Negative <= 0 || p.Epochs <= 0 || p.LearningRate <= 0 {
		return nil, fmt.Errorf("invalid skip-gram parameters: %+v", p)
	}

	vocab := BuildVocabulary(corpus, p.MinCount)
	rng := rand.New(rand.NewSource(p.Seed))

	syn0 := make([][]float64, vocab.Len())
	syn1 := make([][]float64, vocab.Len())
	for i := range syn0 {
		syn0[i] = make([]float64, p.VectorSize)
		syn1[i] = make([]float64, p.VectorSize)
		for j := range syn0[i] {
			syn0[i][j] = (rng.Float64() - 0.5) / float64(p.VectorSize)
		}
	}

	model := &Model{vocab: vocab, vectors: syn0, dim: p.VectorSize, workers: p.Workers}
	if vocab.Len() == 0 {
		return model, nil
	}

	sentences := make([][]int, 0, len(corpus))
	totalWords := 0
	for _, doc := range corpus {
		ids := vocab.encode(doc)
		if len(ids) > 0 {
			sentences = append(sentences, ids)
			totalWords += len(ids)
		}
	}

	table := newUnigramTable(vocab)
	neu1e := make([]float64, p.VectorSize)
	budget := float64(totalWords*p.Epochs + 1)
	processed := 0

	for epoch := 0; epoch < p.Epochs; epoch++ {
		for _, sentence := range sentences {
			for pos, word := range sentence {
				alpha := p.LearningRate * math.Max(1-float64(processed)/budget, minLearningPct)
				processed++

				shrink := rng.Intn(p.Window)
				for c := pos - p.Window + shrink; c <= pos+p.Window-shrink; c++ {
					if c < 0 || c >= len(sentence) || c == pos {
						continue
					}
					input := syn0[sentence[c]]
					clear(neu1e)
					for d := 0; d <= p.Negative; d++ {
						target, label := word, 1.0
						if d > 0 {
							target, label = table.sample(rng), 0.0
							if target == word {
								continue
							}
						}
						g := (label - sigmoid(floats.Dot(input, syn1[target]))) * alpha
						floats.AddScaled(neu1e, g, syn1[target])
						floats.AddScaled(syn1[target], g, input)
					}
					floats.Add(input, neu1e)
				}
			}
		}
	}
	return model, nil
}

func sigmoid(x float64) float64 {
	switch {
	case x > maxExp:
		return 1
	case x < -maxExp:
		return 0
	default:
		return 1 / (1 + math.Exp(-x))
	}
}

// unigramTable draws negative samples proportionally to count^0.75.
type unigramTable struct {
	cumulative []float64
}

func newUnigramTable(vocab Vocabulary) unigramTable {
	cumulative := make([]float64, vocab.Len())
	total := 0.0
	for i := range cumulative {
		total += math.Pow(float64(vocab.Count(i)), unigramPower)
		cumulative[i] = total
	}
	floats.Scale(1/total, cumulative)
	return unigramTable{cumulative: cumulative}
}

func (t unigramTable) sample(rng *rand.Rand) int {
	i := sort.SearchFloat64s(t.cumulative, rng.Float64())
	if i >= len(t.cumulative) {
		i = len(t.cumulative) - 1
	}
	return i
}
