package report

import (
	"comment-lab/domain"
	"comment-lab/errors"
	"fmt"

	"github.com/samber/lo"
)

// Build groups comment texts by cluster, in input order, and counts the Good and Bad comments.
// Every comment must carry exactly one assignment.
func Build(comments []domain.Comment, assignments []domain.ClusterAssignment, buckets map[int]domain.Bucket) (domain.Report, error) {
	if len(comments) != len(assignments) {
		return domain.Report{}, fmt.Errorf("%w: %d comments, %d assignments",
			errors.ErrAssignmentMismatch, len(comments), len(assignments))
	}

	clusterOf := lo.SliceToMap(assignments, func(a domain.ClusterAssignment) (int, int) {
		return a.CommentID, a.ClusterID
	})

	perCluster := make(map[int][]string)
	for _, c := range comments {
		id, ok := clusterOf[c.ID]
		if !ok {
			return domain.Report{}, fmt.Errorf("%w: comment %d has no cluster", errors.ErrAssignmentMismatch, c.ID)
		}
		perCluster[id] = append(perCluster[id], c.Text)
	}

	good := lo.CountBy(assignments, func(a domain.ClusterAssignment) bool {
		return buckets[a.ClusterID] == domain.Good
	})
	bad := lo.CountBy(assignments, func(a domain.ClusterAssignment) bool {
		return buckets[a.ClusterID] == domain.Bad
	})
	return domain.NewReport(perCluster, good, bad), nil
}
