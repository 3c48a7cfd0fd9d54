package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, float32(0), Distance([]float32{1, 2, 3}, []float32{1, 2, 3}))
	// squared, never rooted
	assert.Equal(t, float32(25), Distance([]float32{0, 0}, []float32{3, 4}))
	assert.Equal(t, float32(3), Distance([]float32{0, 0, 0, 1}, []float32{1, 1, 1, 1}))
}

func TestPointsAccessors(t *testing.T) {
	p := FromVec4([][4]float32{{1, 2, 3, 4}, {5, 6, 7, 8}})
	require.NoError(t, p.Validate())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []float32{5, 6, 7, 8}, p.At(1))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, p.Vec4(0))

	c := p.Clone()
	c.At(0)[0] = 99
	assert.Equal(t, float32(1), p.At(0)[0], "clone must not alias")
}

func TestPointsAtDoesNotOverrun(t *testing.T) {
	p := FromVec4([][4]float32{{1, 2, 3, 4}, {5, 6, 7, 8}})
	v := append(p.At(0), 42)
	assert.Equal(t, float32(5), p.At(1)[0])
	assert.Len(t, v, 5)
}

func TestPointsValidate(t *testing.T) {
	assert.ErrorIs(t, Points{Dim: 0}.Validate(), ErrShapeMismatch)
	assert.ErrorIs(t, Points{Dim: 3, Data: make([]float32, 7)}.Validate(), ErrShapeMismatch)
	assert.NoError(t, Points{Dim: 3}.Validate())
	assert.Equal(t, 0, Points{}.Len())
}

func TestPointsBounds(t *testing.T) {
	p := Points{Dim: 2, Data: []float32{1, 5, -2, 7, 3, 6}}
	lo, hi := p.Bounds()
	assert.Equal(t, []float32{-2, 5}, lo)
	assert.Equal(t, []float32{3, 7}, hi)
}
