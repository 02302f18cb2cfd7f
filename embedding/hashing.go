package embedding

import (
	"fmt"
	"hash/fnv"
)

const (
	SkipGramKind = "skipgram"
	HashingKind  = "hashing"
)

// Hashing maps every vocabulary word to a one-hot vector through the hashing trick.
// A comment vector is then the normalized bag of its hashed words. Nothing is trained.
type Hashing struct {
	params Params
}

func NewHashing(params Params) *Hashing {
	return &Hashing{params: params}
}

func (h *Hashing) Fit(corpus [][]string) (*Model, error) {
	if h.params.VectorSize <= 0 {
		return nil, fmt.Errorf("invalid hashing parameters: %+v", h.params)
	}
	vocab := BuildVocabulary(corpus, h.params.MinCount)
	vectors := make([][]float64, vocab.Len())
	for i, word := range vocab.Words() {
		vectors[i] = make([]float64, h.params.VectorSize)
		vectors[i][bucketOf(word, h.params.VectorSize)] = 1.0
	}
	return &Model{vocab: vocab, vectors: vectors, dim: h.params.VectorSize, workers: h.params.Workers}, nil
}

func bucketOf(word string, size int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(word))
	return int(hash.Sum32() % uint32(size))
}

// NewEmbedder picks the embedder by kind, the skip-gram being the default.
func NewEmbedder(kind string, params Params) (Embeds, error) {
	switch kind {
	case "", SkipGramKind:
		return NewSkipGram(params), nil
	case HashingKind:
		return NewHashing(params), nil
	default:
		return nil, fmt.Errorf("unknown embedder %q", kind)
	}
}
