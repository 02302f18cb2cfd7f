package pipeline

import (
	"comment-lab/cluster"
	"comment-lab/domain"
	"comment-lab/embedding"
	"comment-lab/errors"
	"comment-lab/features"
	"comment-lab/nlp"
	"comment-lab/report"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

type Filters interface {
	Filter(tokens []string) []string
}

// Components are the pluggable stages of a run.
type Components struct {
	Tokenizer nlp.Tokenizes
	StopWords Filters
	Embedder  embedding.Embeds
	Assembler *features.Assembler
	Clusterer cluster.Clusters
	Policy    domain.LabelPolicy
}

// Settings hold the reference parameters used by NewDefault.
type Settings struct {
	Embedder      string
	Embedding     embedding.Params
	ClusterCount  int
	MaxIterations int
	ExtraStopWord []string
}

func DefaultSettings() Settings {
	return Settings{
		Embedder:      embedding.SkipGramKind,
		Embedding:     embedding.DefaultParams(),
		ClusterCount:  5,
		MaxIterations: cluster.DefaultMaxIterations,
	}
}

type Result struct {
	Report         domain.Report
	Assignments    []domain.ClusterAssignment
	Clusters       []domain.ClusterStats
	Buckets        map[int]domain.Bucket
	VocabularySize int
	Language       string
	Iterations     int
	Duration       time.Duration
}

// Pipeline turns comments into a report in one forward pass. Each stage gets a fresh collection.
type Pipeline struct {
	log *slog.Logger
	c   Components
}

func New(log *slog.Logger, c Components) *Pipeline {
	return &Pipeline{log: log, c: c}
}

// NewDefault wires the reference stages. The embedding seed also seeds k-means.
func NewDefault(log *slog.Logger, s Settings) (*Pipeline, error) {
	embedder, err := embedding.NewEmbedder(s.Embedder, s.Embedding)
	if err != nil {
		return nil, err
	}
	stopWords := append(nlp.DefaultStopWords(), s.ExtraStopWord...)
	return New(log, Components{
		Tokenizer: nlp.NewTokenizer(),
		StopWords: nlp.NewStopWordFilter(stopWords),
		Embedder:  embedder,
		Assembler: features.NewAssembler(features.EmbeddingColumn),
		Clusterer: cluster.NewKMeans(s.ClusterCount, s.Embedding.Seed, s.MaxIterations),
		Policy:    domain.NewFixedPolicy(),
	}), nil
}

func (p *Pipeline) Run(ctx context.Context, comments []domain.Comment) (Result, error) {
	start := time.Now()
	texts := domain.Texts(comments)

	language := nlp.DetectCorpusLanguage(texts)
	if language != nlp.UndeterminedLanguage && language != nlp.StopWordLanguage {
		p.log.Warn("Corpus language differs from the stop word list",
			"corpus", language, "stop_words", nlp.StopWordLanguage)
	}

	docs := lo.Map(texts, func(text string, _ int) []string {
		return p.c.StopWords.Filter(p.c.Tokenizer.Tokenize(text))
	})

	model, err := p.c.Embedder.Fit(docs)
	if err != nil {
		return Result{}, fmt.Errorf("embedding training failed: %w", err)
	}
	if model.Empty() {
		p.log.Warn("Degenerate embedding, every comment maps to the zero vector",
			"err", errors.ErrEmptyVocabulary, "comments", len(comments))
	}
	p.log.Debug("Embedding trained", "vocabulary", model.VocabularySize(), "dim", model.Dim())

	vectors, err := model.TransformAll(ctx, docs)
	if err != nil {
		return Result{}, fmt.Errorf("embedding inference failed: %w", err)
	}

	rows := lo.Map(vectors, func(v []float64, _ int) map[string][]float64 {
		return map[string][]float64{features.EmbeddingColumn: v}
	})
	featureVectors, err := p.c.Assembler.AssembleAll(rows)
	if err != nil {
		return Result{}, err
	}

	clustering, err := p.c.Clusterer.Cluster(featureVectors)
	if err != nil {
		return Result{}, fmt.Errorf("clustering failed: %w", err)
	}
	if empty := clustering.EmptyClusters(); len(comments) > 0 && len(empty) > 0 {
		p.log.Warn("Degenerate clustering, some clusters are empty", "empty", empty)
	}

	assignments := make([]domain.ClusterAssignment, len(comments))
	for i, c := range comments {
		assignments[i] = domain.ClusterAssignment{CommentID: c.ID, ClusterID: clustering.Assignments[i]}
	}

	stats := clustering.Stats()
	buckets := domain.LabelClusters(p.c.Policy, stats)

	rep, err := report.Build(comments, assignments, buckets)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Report:         rep,
		Assignments:    assignments,
		Clusters:       stats,
		Buckets:        buckets,
		VocabularySize: model.VocabularySize(),
		Language:       language,
		Iterations:     clustering.Iterations,
		Duration:       time.Since(start),
	}
	p.log.Info("Pipeline done",
		"comments", len(comments),
		"vocabulary", result.VocabularySize,
		"iterations", result.Iterations,
		"good", rep.GoodCount(),
		"bad", rep.BadCount(),
		"duration", result.Duration)
	return result, nil
}
