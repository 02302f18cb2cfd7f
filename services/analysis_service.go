package services

import (
	"comment-lab/domain"
	"comment-lab/errors"
	"comment-lab/observability"
	"comment-lab/pipeline"
	"comment-lab/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IAnalysisService interface {
	Analyze(ctx context.Context, request AnalyzeRequest) (Outcome, error)
	History(limit int) ([]repositories.Run, error)
	Search(query string, limit int) ([]repositories.Hit, error)
}

type CommentReader interface {
	ReadComments(path string) ([]domain.Comment, error)
}

type Runner interface {
	Run(ctx context.Context, comments []domain.Comment) (pipeline.Result, error)
}

type AnalyzeRequest struct {
	Path string `validate:"required,max=1024"`
}

type Outcome struct {
	Run    repositories.Run
	Result pipeline.Result
}

// AnalysisService reads a comment file, runs the pipeline and records the run.
// The archive and the index are optional, a nil one is skipped.
type AnalysisService struct {
	log      *slog.Logger
	reader   CommentReader
	pipeline Runner
	reports  repositories.IReportRepository
	index    repositories.ICommentIndex
	stats    observability.Snapshots
	validate *validator.Validate
	now      func() time.Time
}

func NewAnalysisService(
	log *slog.Logger,
	reader CommentReader,
	pipeline Runner,
	reports repositories.IReportRepository,
	index repositories.ICommentIndex,
	stats observability.Snapshots,
) *AnalysisService {
	return &AnalysisService{
		log:      log,
		reader:   reader,
		pipeline: pipeline,
		reports:  reports,
		index:    index,
		stats:    stats,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, request AnalyzeRequest) (Outcome, error) {
	if err := s.validate.Struct(request); err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", errors.ErrIngestion, err)
	}

	comments, err := s.reader.ReadComments(request.Path)
	if err != nil {
		return Outcome{}, err
	}
	s.log.Info("Comments loaded", "path", request.Path, "count", len(comments))

	result, err := s.pipeline.Run(ctx, comments)
	if err != nil {
		return Outcome{}, err
	}

	run := repositories.Run{
		ID:             uuid.New(),
		At:             s.now(),
		Input:          request.Path,
		Language:       result.Language,
		VocabularySize: result.VocabularySize,
		Iterations:     result.Iterations,
		Report:         result.Report,
	}

	if s.reports != nil {
		if err := s.reports.Store(run); err != nil {
			return Outcome{}, fmt.Errorf("unable to archive run %s: %w", run.ID, err)
		}
	}
	if s.index != nil {
		if err := s.index.Index(run.ID, comments, result.Assignments, result.Buckets); err != nil {
			return Outcome{}, fmt.Errorf("unable to index run %s: %w", run.ID, err)
		}
	}

	observability.LogSnapshot(s.log, s.stats, "Run stats")
	return Outcome{Run: run, Result: result}, nil
}

func (s *AnalysisService) History(limit int) ([]repositories.Run, error) {
	if s.reports == nil {
		return nil, errors.ErrArchiveDisabled
	}
	return s.reports.List(limit)
}

// Search needs a positive limit, unlike History where 0 lists every run.
func (s *AnalysisService) Search(query string, limit int) ([]repositories.Hit, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", errors.ErrInvalidLimit, limit)
	}
	if s.index == nil {
		return nil, errors.ErrIndexDisabled
	}
	return s.index.Search(query, limit)
}
