package cluster

import (
	"fmt"
	"log/slog"
	"math"
)

// Result is the outcome of a KMeans call.
type Result struct {
	// Means holds K centroids in label order.
	Means Points
	// Labels holds the cluster index of every input point, in input order.
	Labels []int
	// Counts holds the number of points assigned to each cluster in the
	// final iteration.
	Counts []int
}

// KMeans clusters points into k groups with a deterministic
// farthest-point initialization and a fixed number of iterations.
//
// The same ordered input always yields the same centroids and labels.
// A cluster that receives no points in an iteration has its centroid
// reset to the origin; it only recovers if a later assignment step gives
// it points again.
func KMeans(points Points, k, iterations int, opts ...Option) (*Result, error) {
	if err := checkInput(points, k, iterations); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	means := farthestPointSeeds(points, k)
	labels := make([]int, points.Len())
	counts := make([]int, k)

	for it := 0; it < iterations; it++ {
		assign(points, means, labels, counts)
		updateMeans(points, labels, counts, means)
		logIteration(cfg.logger, "k-means", it, counts)
	}

	return &Result{
		Means:  means,
		Labels: labels,
		Counts: counts,
	}, nil
}

// checkInput validates the preconditions shared by both variants.
func checkInput(points Points, k, iterations int) error {
	if err := points.Validate(); err != nil {
		return err
	}
	if k <= 0 {
		return fmt.Errorf("%w: cluster count must be positive, got %d", ErrShapeMismatch, k)
	}
	if iterations <= 0 {
		return fmt.Errorf("%w: iteration budget must be positive, got %d", ErrShapeMismatch, iterations)
	}
	if points.Len() == 0 {
		return fmt.Errorf("%w: no points to cluster", ErrEmptyInput)
	}
	return nil
}

// farthestPointSeeds picks the middle point as the first seed, then
// repeatedly adds the point whose nearest existing seed is farthest away.
// Among equally distant candidates the later point wins. The finished
// seed list is reversed.
func farthestPointSeeds(points Points, k int) Points {
	n := points.Len()
	seeds := NewPoints(k, points.Dim)
	copy(seeds.At(0), points.At(n/2))

	for i := 1; i < k; i++ {
		farthest := 0
		var farthestDist float32
		for j := 0; j < n; j++ {
			p := points.At(j)
			nearest := float32(math.MaxFloat32)
			for c := 0; c < i; c++ {
				if d := Distance(p, seeds.At(c)); d <= nearest {
					nearest = d
				}
			}
			if nearest >= farthestDist {
				farthest, farthestDist = j, nearest
			}
		}
		copy(seeds.At(i), points.At(farthest))
	}

	for i, j := 0, k-1; i < j; i, j = i+1, j-1 {
		a, b := seeds.At(i), seeds.At(j)
		for d := range a {
			a[d], b[d] = b[d], a[d]
		}
	}
	return seeds
}

// assign labels every point with its nearest centroid and fills counts.
// A later centroid only displaces the current best when strictly closer.
func assign(points, means Points, labels, counts []int) {
	clear(counts)
	k := means.Len()
	for i := range labels {
		p := points.At(i)
		best := 0
		bestDist := float32(math.MaxFloat32)
		for c := 0; c < k; c++ {
			if d := Distance(p, means.At(c)); d < bestDist {
				best, bestDist = c, d
			}
		}
		labels[i] = best
		counts[best]++
	}
}

// updateMeans recomputes every centroid as the mean of its points by
// accumulating each point scaled by 1/count. Empty clusters become zero.
func updateMeans(points Points, labels, counts []int, means Points) {
	weights := make([]float32, len(counts))
	for c, n := range counts {
		if n > 0 {
			weights[c] = 1 / float32(n)
		}
	}

	clear(means.Data)
	for i, l := range labels {
		m := means.At(l)
		w := weights[l]
		for d, v := range points.At(i) {
			m[d] += v * w
		}
	}
}

func logIteration(logger *slog.Logger, variant string, it int, counts []int) {
	logger.Debug("cluster iteration",
		slog.String("variant", variant),
		slog.Int("iteration", it),
		slog.Any("populations", counts))
}
