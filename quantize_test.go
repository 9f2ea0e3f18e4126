package gbcam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantizeSample(t *testing.T) {
	tables := []struct {
		v    int
		want byte
	}{
		{0, 0x00},
		{63, 0x00},
		{64, 0x40},
		{127, 0x40},
		{128, 0x80},
		{191, 0x80},
		{192, 0xc0},
		{255, 0xc0},
	}
	for _, table := range tables {
		assert.Equal(t, table.want, quantizeSample(table.v, 64, 128, 192), "%d", table.v)
	}
}

func TestQuantizeUnorderedThresholds(t *testing.T) {
	// Out of order thresholds are legal and only skew the result
	assert.Equal(t, byte(0x40), quantizeSample(150, 100, 200, 50))
	assert.Equal(t, byte(0xc0), quantizeSample(250, 100, 200, 50))
}

func TestQuantizeCrop(t *testing.T) {
	m := UniformMatrix(64, 128, 192)

	s := fillFrame(-128)
	for x := 0; x < sensorW; x++ {
		for _, y := range []int{0, 1, 2, 3, 116, 117, 118, 119} {
			s.set(x, y, 127)
		}
	}

	levels := quantize(s, &m)
	assert.Len(t, levels, pictureW*pictureH)
	for _, l := range levels {
		if !assert.Equal(t, byte(0x00), l) {
			break
		}
	}

	s.set(3, 4, 0)
	s.set(3, 115, 0)
	levels = quantize(s, &m)
	assert.Equal(t, byte(0x80), levels[3])
	assert.Equal(t, byte(0x80), levels[(pictureH-1)*pictureW+3])
}

func TestQuantizeDither(t *testing.T) {
	var m Matrix
	for i := 0; i < 16; i++ {
		m[i*3], m[i*3+1], m[i*3+2] = byte(i*16), byte(i*16+1), byte(i*16+2)
	}

	// Sample 40 sits at 40 + 128 = 168, below the thresholds of cells 11
	// to 15 and above those of cells 0 to 10
	levels := quantize(fillFrame(40), &m)
	for y := 0; y < pictureH; y++ {
		for x := 0; x < pictureW; x++ {
			want := byte(0xc0)
			if cell := (y&3)*4 + x&3; cell > 10 {
				want = 0x00
			}
			assert.Equal(t, want, levels[y*pictureW+x])
		}
	}
}
