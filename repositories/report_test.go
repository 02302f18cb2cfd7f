package repositories

import (
	"comment-lab/domain"
	"comment-lab/errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newRun(at time.Time, input string) Run {
	return Run{
		ID:             uuid.New(),
		At:             at,
		Input:          input,
		Language:       "en",
		VocabularySize: 42,
		Iterations:     3,
		Report: domain.NewReport(map[int][]string{
			0: {"great service", "love it"},
			1: {"terrible"},
		}, 2, 1),
	}
}

func TestReportRepository_Store_And_Get(t *testing.T) {
	req := require.New(t)
	repo := NewReportRepository(openBadger(t), slog.Default())
	original := newRun(time.Now().UTC(), "comments.csv")

	req.NoError(repo.Store(original))

	fetched, err := repo.Get(original.ID)
	req.NoError(err)
	req.Equal(original.ID, fetched.ID)
	req.True(original.At.Equal(fetched.At))
	req.Equal(original.Input, fetched.Input)
	req.Equal(original.Language, fetched.Language)
	req.Equal(original.VocabularySize, fetched.VocabularySize)
	req.Equal(original.Iterations, fetched.Iterations)
	req.Equal(original.Report.PerClusterComments(), fetched.Report.PerClusterComments())
	req.Equal(2, fetched.Report.GoodCount())
	req.Equal(1, fetched.Report.BadCount())
}

func TestReportRepository_Get_Unknown(t *testing.T) {
	req := require.New(t)
	repo := NewReportRepository(openBadger(t), slog.Default())

	_, err := repo.Get(uuid.New())
	req.Error(err)
	req.True(errors.Is(err, errors.ErrReportNotFound))
}

func TestReportRepository_List(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{name: "Most recent first", limit: 0, expected: []string{"run-5", "run-4", "run-3", "run-2", "run-1"}},
		{name: "Limit is honoured", limit: 2, expected: []string{"run-5", "run-4"}},
		{name: "Limit above count", limit: 10, expected: []string{"run-5", "run-4", "run-3", "run-2", "run-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			repo := NewReportRepository(openBadger(t), slog.Default())
			for i := 1; i <= 5; i++ {
				req.NoError(repo.Store(newRun(now.Add(time.Duration(i)*time.Minute), fmt.Sprintf("run-%d", i))))
			}

			runs, err := repo.List(tt.limit)
			req.NoError(err)
			inputs := make([]string, 0, len(runs))
			for _, r := range runs {
				inputs = append(inputs, r.Input)
			}
			req.Equal(tt.expected, inputs)
		})
	}
}

func TestReportRepository_List_Empty(t *testing.T) {
	req := require.New(t)
	repo := NewReportRepository(openBadger(t), slog.Default())

	runs, err := repo.List(5)
	req.NoError(err)
	req.Empty(runs)
}
