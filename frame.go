package gbcam

import (
	"github.com/bodgit/gbcam/image"
)

const (
	sensorW  = image.Width
	sensorH  = image.Height
	pictureW = image.Width
	pictureH = image.VisibleHeight
)

func clamp(min, value, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// sampleFrame is a sensor sized grid of signed samples stored row-major.
type sampleFrame struct {
	pix []int
}

func newSampleFrame() *sampleFrame {
	return &sampleFrame{
		pix: make([]int, sensorW*sensorH),
	}
}

// at returns the sample at x, y with both coordinates clamped to the frame
// so edge pixels read themselves in place of missing neighbors.
func (f *sampleFrame) at(x, y int) int {
	return f.pix[clamp(0, y, sensorH-1)*sensorW+clamp(0, x, sensorW-1)]
}

func (f *sampleFrame) set(x, y, v int) {
	f.pix[y*sensorW+x] = v
}
