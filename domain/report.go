package domain

import (
	"sort"
	"strings"
)

const commentSeparator = ", "

// Row is one line of the per-cluster table.
type Row struct {
	Prediction int
	Comments   string
}

// Report is the aggregated outcome of one run. It is never modified once built.
type Report struct {
	perCluster map[int][]string
	goodCount  int
	badCount   int
}

// NewReport copies its inputs so the caller keeps no handle on the report internals.
func NewReport(perCluster map[int][]string, goodCount, badCount int) Report {
	return Report{
		perCluster: copyClusters(perCluster),
		goodCount:  goodCount,
		badCount:   badCount,
	}
}

func (r Report) PerClusterComments() map[int][]string {
	return copyClusters(r.perCluster)
}

func (r Report) GoodCount() int {
	return r.goodCount
}

func (r Report) BadCount() int {
	return r.badCount
}

// Total is the number of comments spread over all clusters.
func (r Report) Total() int {
	total := 0
	for _, texts := range r.perCluster {
		total += len(texts)
	}
	return total
}

// ClusterIDs returns the non-empty cluster ids in ascending order.
func (r Report) ClusterIDs() []int {
	ids := make([]int, 0, len(r.perCluster))
	for id := range r.perCluster {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Counts is the two-series dataset rendered as the bar chart.
func (r Report) Counts() map[string]int {
	return map[string]int{
		Good.String(): r.goodCount,
		Bad.String():  r.badCount,
	}
}

// Rows is the tabular dataset, one row per non-empty cluster.
func (r Report) Rows() []Row {
	rows := make([]Row, 0, len(r.perCluster))
	for _, id := range r.ClusterIDs() {
		rows = append(rows, Row{
			Prediction: id,
			Comments:   strings.Join(r.perCluster[id], commentSeparator),
		})
	}
	return rows
}

func copyClusters(in map[int][]string) map[int][]string {
	out := make(map[int][]string, len(in))
	for id, texts := range in {
		out[id] = append([]string(nil), texts...)
	}
	return out
}
