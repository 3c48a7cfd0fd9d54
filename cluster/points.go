// Package cluster summarizes a population of fixed-dimension float
// vectors as a small set of centroids using k-means.
//
// The package knows nothing about color: points are plain float32
// vectors and the distance is squared Euclidean.
package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch reports inputs of inconsistent dimension or length.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrEmptyInput reports a clustering call with no points.
	ErrEmptyInput = errors.New("empty input")
)

// Points is a flat, row-major set of vectors that all share Dim channels.
// Point i occupies Data[i*Dim : (i+1)*Dim].
type Points struct {
	Dim  int
	Data []float32
}

// NewPoints allocates n zero vectors of dimension dim.
func NewPoints(n, dim int) Points {
	return Points{Dim: dim, Data: make([]float32, n*dim)}
}

// FromVec4 copies a slice of 4-channel vectors into a Points set.
func FromVec4(vs [][4]float32) Points {
	p := NewPoints(len(vs), 4)
	for i, v := range vs {
		copy(p.Data[i*4:], v[:])
	}
	return p
}

// Len returns the number of vectors.
func (p Points) Len() int {
	if p.Dim <= 0 {
		return 0
	}
	return len(p.Data) / p.Dim
}

// At returns vector i as a slice aliasing the underlying storage.
func (p Points) At(i int) []float32 {
	return p.Data[i*p.Dim : (i+1)*p.Dim : (i+1)*p.Dim]
}

// Vec4 returns vector i as an array. Channels beyond Dim are zero.
func (p Points) Vec4(i int) [4]float32 {
	var v [4]float32
	copy(v[:], p.At(i))
	return v
}

// Clone returns a deep copy.
func (p Points) Clone() Points {
	data := make([]float32, len(p.Data))
	copy(data, p.Data)
	return Points{Dim: p.Dim, Data: data}
}

// Validate checks the shape invariant: a positive dimension and storage
// that holds a whole number of vectors.
func (p Points) Validate() error {
	if p.Dim <= 0 {
		return fmt.Errorf("%w: dimension %d", ErrShapeMismatch, p.Dim)
	}
	if len(p.Data)%p.Dim != 0 {
		return fmt.Errorf("%w: %d values is not a multiple of dimension %d",
			ErrShapeMismatch, len(p.Data), p.Dim)
	}
	return nil
}

// Distance is the squared Euclidean distance between a and b. No square
// root is taken; callers only compare distances.
func Distance(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Bounds folds over every point and returns the per-channel minimum and
// maximum.
func (p Points) Bounds() (lo, hi []float32) {
	lo = make([]float32, p.Dim)
	hi = make([]float32, p.Dim)
	if p.Len() == 0 {
		return lo, hi
	}
	copy(lo, p.At(0))
	copy(hi, p.At(0))
	for i := 1; i < p.Len(); i++ {
		for d, v := range p.At(i) {
			if v < lo[d] {
				lo[d] = v
			}
			if v > hi[d] {
				hi[d] = v
			}
		}
	}
	return lo, hi
}
