package colorxfer

import (
	"fmt"
	"log/slog"

	"github.com/wbrown/colorxfer/cluster"
	"github.com/wbrown/colorxfer/colorspace"
)

// MinDispersion is the destination spread at or below which statistics
// matching maps a channel straight to the source mean.
const MinDispersion = 1e-6

// Transferer clusters pixel populations and recombines their statistics.
// A Transferer holding a random source is not safe for concurrent use.
type Transferer struct {
	Space          colorspace.Space
	AlphaThreshold uint8
	SourceClusters int
	DestClusters   int
	Iterations     int
	StdIterations  int

	logger *slog.Logger
	source cluster.Source
}

// New creates a Transferer with the given options.
// Defaults: XYZ space, alpha threshold 200, 3 source and 2 destination
// clusters, 10 k-means iterations and 20 for the dispersion variant.
func New(opts ...Option) *Transferer {
	t := &Transferer{
		Space:          colorspace.XYZ,
		AlphaThreshold: 200,
		SourceClusters: 3,
		DestClusters:   2,
		Iterations:     10,
		StdIterations:  20,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transferer) clusterOptions() []cluster.Option {
	opts := []cluster.Option{cluster.WithLogger(t.logger)}
	if t.source != nil {
		opts = append(opts, cluster.WithSource(t.source))
	}
	return opts
}

// Decode thresholds alpha, normalizes and converts every pixel of b into
// the configured space.
func (t *Transferer) Decode(b Buffer) (cluster.Points, error) {
	if err := b.Validate(); err != nil {
		return cluster.Points{}, err
	}
	points := cluster.NewPoints(b.Len(), 4)
	for i := 0; i < b.Len(); i++ {
		px := colorspace.ThresholdAlpha(b.Pixel(i), t.AlphaThreshold)
		v := t.Space.FromRGBA(colorspace.BytesToFloats(px))
		copy(points.At(i), v[:])
	}
	return points, nil
}

// Encode converts 4-channel points in the configured space back to an
// RGBA buffer of the given width.
func (t *Transferer) Encode(points cluster.Points, width int) (Buffer, error) {
	if err := points.Validate(); err != nil {
		return Buffer{}, err
	}
	if points.Dim != 4 {
		return Buffer{}, fmt.Errorf("%w: need 4 channels, got %d", cluster.ErrShapeMismatch, points.Dim)
	}
	n := points.Len()
	if width <= 0 || n%width != 0 {
		return Buffer{}, fmt.Errorf("%w: %d pixels do not fill rows of width %d",
			cluster.ErrShapeMismatch, n, width)
	}

	buf := NewBuffer(width, n/width)
	for i := 0; i < n; i++ {
		rgba := t.Space.ToRGBA(points.Vec4(i))
		buf.SetPixel(i, colorspace.FloatsToBytes(rgba))
	}
	return buf, nil
}

// Palette finds SourceClusters dominant colors of src and returns them
// in cluster order together with their populations.
func (t *Transferer) Palette(src Buffer) ([]Swatch, error) {
	points, err := t.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}
	res, err := cluster.KMeans(points, t.SourceClusters, t.Iterations, t.clusterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("cluster source: %w", err)
	}

	swatches := make([]Swatch, res.Means.Len())
	for c := range swatches {
		rgba := t.Space.ToRGBA(res.Means.Vec4(c))
		swatches[c] = Swatch{
			Color:      colorspace.FloatsToBytes(rgba),
			Population: res.Counts[c],
		}
	}
	t.logger.Info("palette extracted",
		slog.String("space", t.Space.String()),
		slog.Int("clusters", len(swatches)),
		slog.Int("pixels", src.Len()))
	return swatches, nil
}

// MeanShift returns one recolored copy of dst per source cluster. In
// variant c every destination pixel is moved by the difference between
// source mean c and the mean of the destination cluster it belongs to.
// Alpha is left untouched.
func (t *Transferer) MeanShift(src, dst Buffer) ([]Buffer, error) {
	srcPoints, err := t.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}
	dstPoints, err := t.Decode(dst)
	if err != nil {
		return nil, fmt.Errorf("decode destination: %w", err)
	}

	srcRes, err := cluster.KMeans(srcPoints, t.SourceClusters, t.Iterations, t.clusterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("cluster source: %w", err)
	}
	dstRes, err := cluster.KMeans(dstPoints, t.DestClusters, t.Iterations, t.clusterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("cluster destination: %w", err)
	}

	outputs := make([]Buffer, 0, srcRes.Means.Len())
	for c := 0; c < srcRes.Means.Len(); c++ {
		shifted, err := ShiftPoints(dstPoints, dstRes.Means, dstRes.Labels, srcRes.Means.At(c))
		if err != nil {
			return nil, fmt.Errorf("shift variant %d: %w", c, err)
		}
		out, err := t.Encode(shifted, dst.Width)
		if err != nil {
			return nil, fmt.Errorf("encode variant %d: %w", c, err)
		}
		outputs = append(outputs, out)
	}
	t.logger.Info("mean-shift transfer done",
		slog.String("space", t.Space.String()),
		slog.Int("variants", len(outputs)))
	return outputs, nil
}

// MatchStatistics returns one recolored copy of dst per source cluster.
// The destination is summarized as a single cluster; in variant c each
// pixel's color channels are rescaled from the destination's mean and
// spread to those of source cluster c. Alpha is left untouched.
func (t *Transferer) MatchStatistics(src, dst Buffer) ([]Buffer, error) {
	srcPoints, err := t.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}
	dstPoints, err := t.Decode(dst)
	if err != nil {
		return nil, fmt.Errorf("decode destination: %w", err)
	}

	srcRes, err := cluster.KMeansStd(srcPoints, t.SourceClusters, t.StdIterations, t.clusterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("cluster source: %w", err)
	}
	dstRes, err := cluster.KMeansStd(dstPoints, 1, t.StdIterations, t.clusterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("cluster destination: %w", err)
	}
	dstMean, dstStd := dstRes.Means.At(0), dstRes.Std.At(0)

	if n := degenerateChannels(dstStd); n > 0 {
		t.logger.Debug("destination dispersion is degenerate, using source means",
			slog.Int("channels", n))
	}

	outputs := make([]Buffer, 0, srcRes.Means.Len())
	for c := 0; c < srcRes.Means.Len(); c++ {
		matched, err := MatchPoints(dstPoints, dstMean, dstStd, srcRes.Means.At(c), srcRes.Std.At(c))
		if err != nil {
			return nil, fmt.Errorf("match variant %d: %w", c, err)
		}
		out, err := t.Encode(matched, dst.Width)
		if err != nil {
			return nil, fmt.Errorf("encode variant %d: %w", c, err)
		}
		outputs = append(outputs, out)
	}
	t.logger.Info("statistics transfer done",
		slog.String("space", t.Space.String()),
		slog.Int("variants", len(outputs)))
	return outputs, nil
}

// colorChannels is the number of leading channels a transfer rewrites;
// anything after them (alpha) passes through.
func colorChannels(dim int) int {
	return min(dim, 3)
}

func degenerateChannels(std []float32) int {
	n := 0
	for _, s := range std[:colorChannels(len(std))] {
		if s <= MinDispersion {
			n++
		}
	}
	return n
}

// ShiftPoints returns a copy of points where the color channels of each
// point are replaced by p - means[label] + target.
func ShiftPoints(points, means cluster.Points, labels []int, target []float32) (cluster.Points, error) {
	if err := cluster.ValidateLabels(points, means, labels); err != nil {
		return cluster.Points{}, err
	}
	if len(target) != points.Dim {
		return cluster.Points{}, fmt.Errorf("%w: target has %d channels, points %d",
			cluster.ErrShapeMismatch, len(target), points.Dim)
	}

	out := points.Clone()
	channels := colorChannels(points.Dim)
	for i, l := range labels {
		p, m := out.At(i), means.At(l)
		for d := 0; d < channels; d++ {
			p[d] = p[d] - m[d] + target[d]
		}
	}
	return out, nil
}

// MatchPoints returns a copy of points whose color channels are mapped
// as (v - dstMean) * srcStd / dstStd + srcMean. A channel whose dstStd
// is at most MinDispersion maps to srcMean.
func MatchPoints(points cluster.Points, dstMean, dstStd, srcMean, srcStd []float32) (cluster.Points, error) {
	if err := points.Validate(); err != nil {
		return cluster.Points{}, err
	}
	for _, v := range [][]float32{dstMean, dstStd, srcMean, srcStd} {
		if len(v) != points.Dim {
			return cluster.Points{}, fmt.Errorf("%w: statistics have %d channels, points %d",
				cluster.ErrShapeMismatch, len(v), points.Dim)
		}
	}

	out := points.Clone()
	channels := colorChannels(points.Dim)
	for i := 0; i < out.Len(); i++ {
		p := out.At(i)
		for d := 0; d < channels; d++ {
			if dstStd[d] <= MinDispersion {
				p[d] = srcMean[d]
				continue
			}
			p[d] = (p[d]-dstMean[d])*srcStd[d]/dstStd[d] + srcMean[d]
		}
	}
	return out, nil
}
