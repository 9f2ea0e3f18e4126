package gbcam

// Quantized levels, the four shades the controller writes
const (
	level0 = 0x00
	level1 = 0x40
	level2 = 0x80
	level3 = 0xC0
)

func quantizeSample(v int, t0, t1, t2 byte) byte {
	switch {
	case v < int(t0):
		return level0
	case v < int(t1):
		return level1
	case v < int(t2):
		return level2
	}
	return level3
}

// quantize crops the extra sensor rows and dithers the visible area against
// m, returning 128x112 levels in row-major order.
func quantize(s *sampleFrame, m *Matrix) []byte {
	levels := make([]byte, pictureW*pictureH)
	top := (sensorH - pictureH) / 2
	for y := 0; y < pictureH; y++ {
		for x := 0; x < pictureW; x++ {
			t0, t1, t2 := m.Thresholds(x, y)
			levels[y*pictureW+x] = quantizeSample(s.at(x, y+top)+128, t0, t1, t2)
		}
	}
	return levels
}
