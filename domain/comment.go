package domain

// Comment is one data row of the input file.
// ID is the 0-based index of the row, header excluded.
type Comment struct {
	ID   int
	Text string
}

// ClusterAssignment binds a comment to the cluster k-means put it in.
type ClusterAssignment struct {
	CommentID int
	ClusterID int
}

// Texts returns the comment texts in input order.
func Texts(comments []Comment) []string {
	texts := make([]string, len(comments))
	for i, c := range comments {
		texts[i] = c.Text
	}
	return texts
}
