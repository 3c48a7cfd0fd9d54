package cluster

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
)

// StdResult is the outcome of a KMeansStd call.
type StdResult struct {
	Result
	// Std holds the per-channel dispersion of each cluster, same shape
	// as Means.
	Std Points
}

// KMeansStd clusters points into k groups and also estimates the spread
// of every cluster.
//
// Centroids start at uniform random positions inside the per-channel
// range of the input, drawn from the configured Source, so repeated calls
// on the same input may differ. Assignment and mean updates match KMeans.
// After each update the dispersion is recomputed as described on
// Dispersion.
func KMeansStd(points Points, k, iterations int, opts ...Option) (*StdResult, error) {
	if err := checkInput(points, k, iterations); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	lo, hi := points.Bounds()
	cfg.logger.Debug("cluster input range",
		slog.Any("min", lo),
		slog.Any("max", hi))

	means := randomSeeds(cfg.source, k, lo, hi)
	std := NewPoints(k, points.Dim)
	labels := make([]int, points.Len())
	counts := make([]int, k)

	for it := 0; it < iterations; it++ {
		assign(points, means, labels, counts)
		updateMeans(points, labels, counts, means)
		dispersion(points, means, labels, std)
		logIteration(cfg.logger, "k-means-std", it, counts)
	}

	return &StdResult{
		Result: Result{
			Means:  means,
			Labels: labels,
			Counts: counts,
		},
		Std: std,
	}, nil
}

// randomSeeds draws k centroids channel by channel, cluster by cluster,
// uniformly within [lo, hi].
func randomSeeds(src Source, k int, lo, hi []float32) Points {
	seeds := NewPoints(k, len(lo))
	for c := 0; c < k; c++ {
		s := seeds.At(c)
		for d := range s {
			s[d] = lo[d] + src.Float32()*(hi[d]-lo[d])
		}
	}
	return seeds
}

// Assign returns the label of the nearest mean for every point, with
// ties going to the lowest index.
func Assign(points, means Points) ([]int, error) {
	if err := points.Validate(); err != nil {
		return nil, err
	}
	if err := means.Validate(); err != nil {
		return nil, err
	}
	if means.Dim != points.Dim {
		return nil, fmt.Errorf("%w: means have dimension %d, points %d",
			ErrShapeMismatch, means.Dim, points.Dim)
	}
	if means.Len() == 0 {
		return nil, fmt.Errorf("%w: no means to assign to", ErrEmptyInput)
	}
	labels := make([]int, points.Len())
	assign(points, means, labels, make([]int, means.Len()))
	return labels, nil
}

// Dispersion computes the per-channel standard deviation of every
// cluster around its mean. Squared deviations are divided by the total
// number of points, not the cluster's own count, so clusters of
// different sizes stay comparable.
func Dispersion(points, means Points, labels []int) (Points, error) {
	if err := ValidateLabels(points, means, labels); err != nil {
		return Points{}, err
	}
	std := NewPoints(means.Len(), means.Dim)
	dispersion(points, means, labels, std)
	return std, nil
}

func dispersion(points, means Points, labels []int, std Points) {
	clear(std.Data)
	if len(labels) == 0 {
		return
	}
	w := 1 / float32(len(labels))
	for i, l := range labels {
		m, s := means.At(l), std.At(l)
		for d, v := range points.At(i) {
			diff := v - m[d]
			s[d] += diff * diff * w
		}
	}
	for i, v := range std.Data {
		std.Data[i] = math32.Sqrt(v)
	}
}

// ValidateLabels checks that points, means and labels agree in shape and
// that every label names an existing mean.
func ValidateLabels(points, means Points, labels []int) error {
	if err := points.Validate(); err != nil {
		return err
	}
	if err := means.Validate(); err != nil {
		return err
	}
	if means.Dim != points.Dim {
		return fmt.Errorf("%w: means have dimension %d, points %d",
			ErrShapeMismatch, means.Dim, points.Dim)
	}
	if len(labels) != points.Len() {
		return fmt.Errorf("%w: %d labels for %d points",
			ErrShapeMismatch, len(labels), points.Len())
	}
	for i, l := range labels {
		if l < 0 || l >= means.Len() {
			return fmt.Errorf("%w: label %d of point %d outside %d clusters",
				ErrShapeMismatch, l, i, means.Len())
		}
	}
	return nil
}
