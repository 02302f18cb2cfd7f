package cluster

import (
	"comment-lab/domain"
	"comment-lab/errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const DefaultMaxIterations = 20

type Clusters interface {
	Cluster(vectors [][]float64) (Result, error)
}

type Result struct {
	Assignments []int
	Centroids   [][]float64
	Sizes       []int
	Iterations  int
}

// EmptyClusters lists the cluster ids no vector was assigned to.
func (r Result) EmptyClusters() []int {
	var empty []int
	for id, size := range r.Sizes {
		if size == 0 {
			empty = append(empty, id)
		}
	}
	return empty
}

func (r Result) Stats() []domain.ClusterStats {
	stats := make([]domain.ClusterStats, len(r.Sizes))
	for id, size := range r.Sizes {
		stats[id] = domain.ClusterStats{ID: id, Size: size}
		if id < len(r.Centroids) {
			stats[id].Centroid = append([]float64(nil), r.Centroids[id]...)
		}
	}
	return stats
}

// KMeans is Lloyd's algorithm with a seeded k-means++ initialization.
// Distances are Euclidean and a point equally close to several centroids goes to the lowest id.
type KMeans struct {
	k             int
	seed          int64
	maxIterations int
}

func NewKMeans(k int, seed int64, maxIterations int) *KMeans {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &KMeans{k: k, seed: seed, maxIterations: maxIterations}
}

func (km *KMeans) Cluster(vectors [][]float64) (Result, error) {
	if km.k <= 0 {
		return Result{}, errors.ErrInvalidClusterCount
	}
	n := len(vectors)
	result := Result{Assignments: make([]int, n), Sizes: make([]int, km.k)}
	if n == 0 {
		return result, nil
	}

	d := len(vectors[0])
	for i, v := range vectors {
		if len(v) != d {
			return Result{}, fmt.Errorf("vector %d has dimension %d, expected %d", i, len(v), d)
		}
	}
	if d == 0 {
		result.Sizes[0] = n
		result.Centroids = make([][]float64, km.k)
		return result, nil
	}

	data := mat.NewDense(n, d, nil)
	for i, v := range vectors {
		data.SetRow(i, v)
	}

	rng := rand.New(rand.NewSource(km.seed))
	centroids := initializeCentroids(data, km.k, rng)

	assignments := result.Assignments
	for i := range assignments {
		assignments[i] = -1
	}
	for iter := 0; iter < km.maxIterations; iter++ {
		result.Iterations = iter + 1
		if !assignPoints(data, centroids, assignments) {
			break
		}
		updateCentroids(data, centroids, assignments)
	}

	result.Centroids = make([][]float64, km.k)
	for c := 0; c < km.k; c++ {
		result.Centroids[c] = mat.Row(nil, c, centroids)
	}
	for _, c := range assignments {
		result.Sizes[c]++
	}
	return result, nil
}

// initializeCentroids picks the first centroid uniformly and the next ones with a probability
// proportional to the squared distance to the closest centroid already chosen.
// Once every distinct point is a centroid, the remaining ones duplicate an existing point
// and stay empty because ties go to the lowest id.
func initializeCentroids(data *mat.Dense, k int, rng *rand.Rand) *mat.Dense {
	n, d := data.Dims()
	centroids := mat.NewDense(k, d, nil)
	centroids.SetRow(0, data.RawRowView(rng.Intn(n)))

	weights := make([]float64, n)
	for c := 1; c < k; c++ {
		total := 0.0
		for i := 0; i < n; i++ {
			point := data.RawRowView(i)
			best := math.Inf(1)
			for j := 0; j < c; j++ {
				dist := floats.Distance(point, centroids.RawRowView(j), 2)
				best = math.Min(best, dist*dist)
			}
			weights[i] = best
			total += best
		}

		if total == 0 {
			centroids.SetRow(c, data.RawRowView(rng.Intn(n)))
			continue
		}

		target := rng.Float64() * total
		chosen := -1
		cumulative := 0.0
		for i, w := range weights {
			cumulative += w
			if w > 0 {
				chosen = i
			}
			if cumulative > target {
				break
			}
		}
		centroids.SetRow(c, data.RawRowView(chosen))
	}
	return centroids
}

// assignPoints moves each point to its closest centroid and reports whether anything moved.
func assignPoints(data, centroids *mat.Dense, assignments []int) bool {
	n, _ := data.Dims()
	k, _ := centroids.Dims()
	changed := false
	for i := 0; i < n; i++ {
		point := data.RawRowView(i)
		best, bestDist := 0, math.Inf(1)
		for c := 0; c < k; c++ {
			if dist := floats.Distance(point, centroids.RawRowView(c), 2); dist < bestDist {
				best, bestDist = c, dist
			}
		}
		if assignments[i] != best {
			assignments[i] = best
			changed = true
		}
	}
	return changed
}

// updateCentroids moves each centroid to the mean of its points. Empty clusters keep theirs.
func updateCentroids(data, centroids *mat.Dense, assignments []int) {
	k, d := centroids.Dims()
	sums := mat.NewDense(k, d, nil)
	counts := make([]int, k)
	for i, c := range assignments {
		floats.Add(sums.RawRowView(c), data.RawRowView(i))
		counts[c]++
	}
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		row := sums.RawRowView(c)
		floats.Scale(1/float64(counts[c]), row)
		centroids.SetRow(c, row)
	}
}
