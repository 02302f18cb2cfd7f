package domain

type Bucket int

const (
	Other Bucket = iota
	Good
	Bad
)

func (b Bucket) String() string {
	switch b {
	case Good:
		return "Good"
	case Bad:
		return "Bad"
	default:
		return "Other"
	}
}

// ClusterStats is what a LabelPolicy may look at to decide a bucket.
type ClusterStats struct {
	ID       int
	Size     int
	Centroid []float64
}

type LabelPolicy interface {
	Label(stats ClusterStats) Bucket
}

// FixedPolicy maps hard-coded cluster ids to buckets.
// Nothing checks that the Good or Bad cluster actually carries that sentiment:
// k-means numbers clusters by initialization order, not by meaning.
type FixedPolicy struct {
	Good int
	Bad  int
}

// NewFixedPolicy returns the reference convention: cluster 0 is Good, cluster 1 is Bad.
func NewFixedPolicy() FixedPolicy {
	return FixedPolicy{Good: 0, Bad: 1}
}

func (p FixedPolicy) Label(stats ClusterStats) Bucket {
	switch stats.ID {
	case p.Good:
		return Good
	case p.Bad:
		return Bad
	default:
		return Other
	}
}

// LabelClusters applies the policy to every cluster, empty ones included.
func LabelClusters(policy LabelPolicy, stats []ClusterStats) map[int]Bucket {
	buckets := make(map[int]Bucket, len(stats))
	for _, s := range stats {
		buckets[s.ID] = policy.Label(s)
	}
	return buckets
}
