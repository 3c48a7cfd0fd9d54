package colorspace

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestThresholdAlpha(t *testing.T) {
	assert.Equal(t, [4]uint8{0, 0, 0, 0}, ThresholdAlpha([4]uint8{10, 20, 30, 150}, 200))
	assert.Equal(t, [4]uint8{10, 20, 30, 210}, ThresholdAlpha([4]uint8{10, 20, 30, 210}, 200))
	// the threshold itself passes
	assert.Equal(t, [4]uint8{1, 2, 3, 127}, ThresholdAlpha([4]uint8{1, 2, 3, 127}, 127))
	assert.Equal(t, [4]uint8{}, ThresholdAlpha([4]uint8{1, 2, 3, 126}, 127))
	// a zero threshold never suppresses anything
	assert.Equal(t, [4]uint8{9, 9, 9, 0}, ThresholdAlpha([4]uint8{9, 9, 9, 0}, 0))
}

func TestBytesToFloats(t *testing.T) {
	f := BytesToFloats([4]uint8{0, 255, 51, 102})
	assert.Equal(t, float32(0), f[0])
	assert.Equal(t, float32(1), f[1])
	assert.InDelta(t, 0.2, f[2], 1e-6)
	assert.InDelta(t, 0.4, f[3], 1e-6)
}

func TestFloatsToBytesTruncates(t *testing.T) {
	// 0.999*255 = 254.745, truncated rather than rounded
	assert.Equal(t, [4]uint8{254, 255, 0, 127}, FloatsToBytes([4]float32{0.999, 1, 0, 0.5}))
}

func TestFloatsToBytesSaturates(t *testing.T) {
	got := FloatsToBytes([4]float32{-0.5, 2, math32.NaN(), math32.Inf(1)})
	assert.Equal(t, [4]uint8{0, 255, 0, 255}, got)
}

func TestBytesRoundTripWithinOneStep(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := uint8(v)
		got := FloatsToBytes(BytesToFloats([4]uint8{b, b, b, b}))
		for c := 0; c < 4; c++ {
			if int(b)-int(got[c]) > 1 || got[c] > b {
				t.Fatalf("byte %d came back as %d", b, got[c])
			}
		}
	}
}
