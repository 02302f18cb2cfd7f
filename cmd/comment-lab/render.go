package main

import (
	"comment-lab/repositories"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

func newPlainTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderHistory(w io.Writer, runs []repositories.Run) {
	table := newPlainTable(w, []string{"Run", "At", "Input", "Language", "Vocabulary", "Clusters", "Good", "Bad"})
	for _, run := range runs {
		table.Append([]string{
			run.ID.String(),
			run.At.Format("2006-01-02 15:04:05"),
			run.Input,
			run.Language,
			strconv.Itoa(run.VocabularySize),
			strconv.Itoa(len(run.Report.ClusterIDs())),
			strconv.Itoa(run.Report.GoodCount()),
			strconv.Itoa(run.Report.BadCount()),
		})
	}
	table.Render()
}

func renderHits(w io.Writer, hits []repositories.Hit) {
	table := newPlainTable(w, []string{"Score", "Run", "Comment", "Cluster", "Bucket", "Text"})
	for _, hit := range hits {
		// First 8 characters of the run id are enough to tell runs apart
		runID := hit.RunID.String()[:8]
		table.Append([]string{
			fmt.Sprintf("%.3f", hit.Score),
			runID,
			strconv.Itoa(hit.CommentID),
			strconv.Itoa(hit.Cluster),
			hit.Bucket,
			hit.Text,
		})
	}
	table.Render()
}
