package gbcam

import (
	"github.com/bodgit/gbcam/image"
)

// adaptVoltage rescales an intensity from the 5.0 V rail to the 3.1 V range
// the sensor output swings over.
func adaptVoltage(v int) int {
	return clamp(0, 128+((v-128)*5)/8, 255)
}

func applyExposure(v int, exposure uint16) int {
	return clamp(0, (v*int(exposure))/0x100, 255)
}

// frontEnd converts a raw frame into signed sensor samples in [-128, 127].
func frontEnd(f *image.RawFrame, exposure uint16, invert bool) *sampleFrame {
	s := newSampleFrame()
	for i, v := range f.Pix {
		u := applyExposure(adaptVoltage(int(v)), exposure)
		if invert {
			u = 255 - u
		}
		s.pix[i] = u - 128
	}
	return s
}
