//go:generate go run go.uber.org/mock/mockgen -source=comment_index.go -destination=../mocks/mock_comment_index.go -package=mocks
package repositories

import (
	"comment-lab/domain"
	"comment-lab/errors"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

const (
	fieldRunID     = "run_id"
	fieldCommentID = "comment_id"
	fieldCluster   = "cluster"
	fieldBucket    = "bucket"
	fieldText      = "text"
)

type ICommentIndex interface {
	Index(runID uuid.UUID, comments []domain.Comment, assignments []domain.ClusterAssignment, buckets map[int]domain.Bucket) error
	Search(query string, limit int) ([]Hit, error)
}

type Hit struct {
	RunID     uuid.UUID
	CommentID int
	Cluster   int
	Bucket    string
	Text      string
	Score     float64
}

type CommentIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewCommentIndex(writer *bluge.Writer, log *slog.Logger) *CommentIndex {
	return &CommentIndex{writer: writer, log: log}
}

// Index writes one document per comment, keyed "{run_id}:{comment_id}", in a single batch.
func (c *CommentIndex) Index(runID uuid.UUID, comments []domain.Comment, assignments []domain.ClusterAssignment, buckets map[int]domain.Bucket) error {
	if len(comments) != len(assignments) {
		return fmt.Errorf("%w: %d comments, %d assignments",
			errors.ErrAssignmentMismatch, len(comments), len(assignments))
	}
	batch := bluge.NewBatch()
	for i, comment := range comments {
		cluster := assignments[i].ClusterID
		doc := bluge.NewDocument(fmt.Sprintf("%s:%d", runID, comment.ID)).
			AddField(bluge.NewKeywordField(fieldRunID, runID.String()).StoreValue()).
			AddField(bluge.NewKeywordField(fieldCommentID, strconv.Itoa(comment.ID)).StoreValue()).
			AddField(bluge.NewKeywordField(fieldCluster, strconv.Itoa(cluster)).StoreValue()).
			AddField(bluge.NewKeywordField(fieldBucket, buckets[cluster].String()).StoreValue()).
			AddField(bluge.NewTextField(fieldText, comment.Text).StoreValue())
		batch.Update(doc.ID(), doc)
	}
	if err := c.writer.Batch(batch); err != nil {
		return err
	}
	c.log.Debug("Comments indexed", "run_id", runID, "count", len(comments))
	return nil
}

// Search runs a full-text match on the comment texts, best scores first.
func (c *CommentIndex) Search(query string, limit int) ([]Hit, error) {
	reader, err := c.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	request := bluge.NewTopNSearch(limit, bluge.NewMatchQuery(query).SetField(fieldText))
	iterator, err := reader.Search(context.Background(), request)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := iterator.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			visitErr = hit.set(field, string(value))
			return visitErr == nil
		})
		if err != nil {
			return nil, err
		}
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func (h *Hit) set(field, value string) error {
	var err error
	switch field {
	case fieldRunID:
		h.RunID, err = uuid.Parse(value)
	case fieldCommentID:
		h.CommentID, err = strconv.Atoi(value)
	case fieldCluster:
		h.Cluster, err = strconv.Atoi(value)
	case fieldBucket:
		h.Bucket = value
	case fieldText:
		h.Text = value
	}
	return err
}
