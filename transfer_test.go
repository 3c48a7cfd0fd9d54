package colorxfer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/colorxfer/cluster"
	"github.com/wbrown/colorxfer/colorspace"
)

func bufferOf(width int, pixels ...[4]uint8) Buffer {
	b := NewBuffer(width, len(pixels)/width)
	for i, p := range pixels {
		b.SetPixel(i, p)
	}
	return b
}

var (
	red  = [4]uint8{255, 0, 0, 255}
	blue = [4]uint8{0, 0, 255, 255}
	gray = [4]uint8{128, 128, 128, 255}
)

func assertPixelNear(t *testing.T, want, got [4]uint8, delta float64) {
	t.Helper()
	for c := range want {
		assert.InDelta(t, want[c], got[c], delta, "channel %d of %v", c, got)
	}
}

func TestNewDefaults(t *testing.T) {
	tr := New()
	assert.Equal(t, colorspace.XYZ, tr.Space)
	assert.Equal(t, uint8(200), tr.AlphaThreshold)
	assert.Equal(t, 3, tr.SourceClusters)
	assert.Equal(t, 2, tr.DestClusters)
	assert.Equal(t, 10, tr.Iterations)
	assert.Equal(t, 20, tr.StdIterations)
}

func TestNewOptions(t *testing.T) {
	tr := New(
		WithSpace(colorspace.Lab),
		WithAlphaThreshold(1),
		WithSourceClusters(5),
		WithDestClusters(4),
		WithIterations(7),
		WithStdIterations(9),
		WithLogger(nil),
	)
	assert.Equal(t, colorspace.Lab, tr.Space)
	assert.Equal(t, uint8(1), tr.AlphaThreshold)
	assert.Equal(t, 5, tr.SourceClusters)
	assert.Equal(t, 4, tr.DestClusters)
	assert.Equal(t, 7, tr.Iterations)
	assert.Equal(t, 9, tr.StdIterations)
	assert.NotNil(t, tr.logger)
}

func TestDecodeThresholdsAlpha(t *testing.T) {
	tr := New(WithSpace(colorspace.RGB))
	b := bufferOf(2, [4]uint8{255, 0, 0, 255}, [4]uint8{255, 255, 255, 199})

	points, err := tr.Decode(b)
	require.NoError(t, err)
	require.Equal(t, 2, points.Len())
	assert.Equal(t, [4]float32{1, 0, 0, 1}, points.Vec4(0))
	assert.Equal(t, [4]float32{0, 0, 0, 0}, points.Vec4(1))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	pixels := [][4]uint8{
		{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
		{12, 200, 99, 255}, {255, 255, 255, 255}, {0, 0, 0, 0},
	}
	src := bufferOf(3, pixels...)

	for _, space := range []colorspace.Space{colorspace.RGB, colorspace.HSV, colorspace.XYZ, colorspace.Lab} {
		t.Run(space.String(), func(t *testing.T) {
			tr := New(WithSpace(space))
			points, err := tr.Decode(src)
			require.NoError(t, err)

			out, err := tr.Encode(points, src.Width)
			require.NoError(t, err)
			require.Equal(t, src.Width, out.Width)
			require.Equal(t, src.Height, out.Height)
			for i := range pixels {
				// Truncation may lose one step after a float round trip.
				assertPixelNear(t, src.Pixel(i), out.Pixel(i), 1)
			}
		})
	}
}

func TestDecodeInvalidBuffer(t *testing.T) {
	_, err := New().Decode(Buffer{Width: 2, Height: 1, Pix: make([]byte, 4)})
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)
}

func TestEncodeShapeErrors(t *testing.T) {
	tr := New()

	_, err := tr.Encode(cluster.NewPoints(6, 3), 3)
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)

	_, err = tr.Encode(cluster.NewPoints(6, 4), 4)
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)

	_, err = tr.Encode(cluster.NewPoints(6, 4), 0)
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)
}

func TestMeanShiftEndToEnd(t *testing.T) {
	src := bufferOf(2, red, blue)
	dst := bufferOf(2, gray, gray)
	tr := New(WithSourceClusters(1), WithDestClusters(1))

	outs, err := tr.MeanShift(src, dst)
	require.NoError(t, err)
	require.Len(t, outs, 1)

	// The only destination cluster mean is replaced by the source mean,
	// which in XYZ is the mean of red and blue.
	out := outs[0]
	assert.Equal(t, dst.Width, out.Width)
	assert.Equal(t, dst.Height, out.Height)
	for i := 0; i < out.Len(); i++ {
		assertPixelNear(t, [4]uint8{127, 0, 127, 255}, out.Pixel(i), 1)
	}
	assert.Equal(t, [4]uint8{128, 128, 128, 255}, dst.Pixel(0), "destination must not be modified")
}

func TestMeanShiftOnePerSourceCluster(t *testing.T) {
	src := bufferOf(3, red, red, blue)
	dst := bufferOf(2, gray, [4]uint8{100, 100, 100, 255})
	tr := New(WithSpace(colorspace.RGB), WithSourceClusters(2), WithDestClusters(1))

	outs, err := tr.MeanShift(src, dst)
	require.NoError(t, err)
	require.Len(t, outs, 2)

	// Seeds come out reversed: cluster 0 starts at the last farthest
	// point (blue), cluster 1 at the middle point (red). The gray pixel
	// sits 14/255 above the destination mean in every color channel.
	assertPixelNear(t, [4]uint8{14, 14, 255, 255}, outs[0].Pixel(0), 1)
	assertPixelNear(t, [4]uint8{255, 14, 14, 255}, outs[1].Pixel(0), 1)
	assertPixelNear(t, [4]uint8{0, 0, 241, 255}, outs[0].Pixel(1), 1)
}

func TestMeanShiftKeepsAlpha(t *testing.T) {
	src := bufferOf(2, red, blue)
	dst := bufferOf(2, [4]uint8{128, 128, 128, 255}, [4]uint8{10, 10, 10, 230})
	tr := New(WithSpace(colorspace.RGB), WithSourceClusters(1), WithDestClusters(2))

	outs, err := tr.MeanShift(src, dst)
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, uint8(255), outs[0].Pixel(0)[3])
	assert.Equal(t, uint8(230), outs[0].Pixel(1)[3])
}

func TestMeanShiftErrors(t *testing.T) {
	tr := New()
	_, err := tr.MeanShift(NewBuffer(0, 0), bufferOf(1, gray))
	assert.ErrorIs(t, err, cluster.ErrEmptyInput)

	_, err = tr.MeanShift(bufferOf(1, red), Buffer{Width: 1, Height: 1})
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)

	_, err = New(WithSourceClusters(0)).MeanShift(bufferOf(1, red), bufferOf(1, gray))
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)
}

func TestPalette(t *testing.T) {
	src := bufferOf(3, red, red, blue)
	tr := New(WithSourceClusters(2))

	swatches, err := tr.Palette(src)
	require.NoError(t, err)
	require.Len(t, swatches, 2)

	// Farthest-point seeds start at the middle pixel and are reversed,
	// so blue comes first.
	assertPixelNear(t, blue, swatches[0].Color, 1)
	assert.Equal(t, 1, swatches[0].Population)
	assertPixelNear(t, red, swatches[1].Color, 1)
	assert.Equal(t, 2, swatches[1].Population)
}

func TestPaletteDeterministic(t *testing.T) {
	src := bufferOf(4, red, gray, blue, [4]uint8{0, 200, 0, 255},
		gray, red, [4]uint8{30, 30, 30, 255}, blue)
	tr := New()

	first, err := tr.Palette(src)
	require.NoError(t, err)
	second, err := tr.Palette(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMatchStatisticsDegenerateDestination(t *testing.T) {
	src := bufferOf(2, red, blue)
	dst := bufferOf(2, gray, gray)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := New(WithSourceClusters(1), WithSeed(7), WithLogger(logger))

	outs, err := tr.MatchStatistics(src, dst)
	require.NoError(t, err)
	require.Len(t, outs, 1)

	// A flat destination has no spread, so every channel lands on the
	// source mean.
	for i := 0; i < outs[0].Len(); i++ {
		assertPixelNear(t, [4]uint8{127, 0, 127, 255}, outs[0].Pixel(i), 1)
	}
	assert.Contains(t, logs.String(), "destination dispersion is degenerate")
	assert.Contains(t, logs.String(), "channels=3")
}

func TestMatchStatisticsReproducibleWithSeed(t *testing.T) {
	src := bufferOf(4, red, gray, blue, [4]uint8{0, 200, 0, 255},
		gray, red, [4]uint8{30, 30, 30, 255}, blue)
	dst := bufferOf(2, [4]uint8{200, 180, 20, 255}, [4]uint8{20, 40, 200, 255},
		[4]uint8{90, 90, 90, 255}, [4]uint8{250, 250, 250, 255})

	first, err := New(WithSeed(42)).MatchStatistics(src, dst)
	require.NoError(t, err)
	second, err := New(WithSeed(42)).MatchStatistics(src, dst)
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestShiftPoints(t *testing.T) {
	points := cluster.FromVec4([][4]float32{{0.5, 0.5, 0.5, 1}, {0.2, 0.2, 0.2, 0.5}})
	means := cluster.FromVec4([][4]float32{{0.5, 0.5, 0.5, 1}, {0.1, 0.1, 0.1, 0.5}})
	target := []float32{0.9, 0.1, 0.3, 0}

	out, err := ShiftPoints(points, means, []int{0, 1}, target)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0.9, 0.1, 0.3, 1}, out.At(0), 1e-6)
	assert.InDeltaSlice(t, []float32{1.0, 0.2, 0.4, 0.5}, out.At(1), 1e-6)
	assert.Equal(t, float32(0.5), points.At(0)[0], "input must not be modified")
}

func TestShiftPointsShapeErrors(t *testing.T) {
	points := cluster.NewPoints(2, 4)
	means := cluster.NewPoints(1, 4)

	_, err := ShiftPoints(points, means, []int{0}, make([]float32, 4))
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)

	_, err = ShiftPoints(points, means, []int{0, 1}, make([]float32, 4))
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)

	_, err = ShiftPoints(points, means, []int{0, 0}, make([]float32, 3))
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)
}

func TestMatchPoints(t *testing.T) {
	points := cluster.FromVec4([][4]float32{{0.4, 0.6, 0.5, 0.8}})
	dstMean := []float32{0.5, 0.5, 0.5, 1}
	dstStd := []float32{0.1, 0.2, 0, 0}
	srcMean := []float32{0.3, 0.3, 0.7, 1}
	srcStd := []float32{0.2, 0.1, 0.4, 0}

	out, err := MatchPoints(points, dstMean, dstStd, srcMean, srcStd)
	require.NoError(t, err)
	// (0.4-0.5)*0.2/0.1+0.3, (0.6-0.5)*0.1/0.2+0.3, degenerate -> 0.7, alpha kept.
	assert.InDeltaSlice(t, []float32{0.1, 0.35, 0.7, 0.8}, out.At(0), 1e-6)
}

func TestMatchPointsShapeErrors(t *testing.T) {
	points := cluster.NewPoints(2, 4)
	four := make([]float32, 4)

	_, err := MatchPoints(points, four, four, four, make([]float32, 3))
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)

	_, err = MatchPoints(cluster.Points{Dim: 4, Data: make([]float32, 5)}, four, four, four, four)
	assert.ErrorIs(t, err, cluster.ErrShapeMismatch)
}
