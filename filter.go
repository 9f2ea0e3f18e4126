package gbcam

import "fmt"

// Filter modes, N<<3 | VH<<1 | E3
const (
	ModeVertical   uint8 = 0x0
	ModeDegenerate uint8 = 0x1
	ModeHorizontal uint8 = 0x2
	ModeTwoD       uint8 = 0xE
)

// filter is one of the sensor's spatial filter topologies. apply always
// writes into a new frame and never modifies in.
type filter interface {
	apply(in *sampleFrame) *sampleFrame
}

// vertical1D combines each pixel with the pixel below it, adding the ones
// selected by p and subtracting the ones selected by m
type vertical1D struct {
	p, m uint8
}

func (f vertical1D) combine(px, succ int) int {
	var v int
	if f.p&polarityPixel != 0 {
		v += px
	}
	if f.p&polaritySuccessor != 0 {
		v += succ
	}
	if f.m&polarityPixel != 0 {
		v -= px
	}
	if f.m&polaritySuccessor != 0 {
		v -= succ
	}
	return clamp(-128, v, 127)
}

func (f vertical1D) apply(in *sampleFrame) *sampleFrame {
	out := newSampleFrame()
	for y := 0; y < sensorH; y++ {
		for x := 0; x < sensorW; x++ {
			out.set(x, y, f.combine(in.at(x, y), in.at(x, y+1)))
		}
	}
	return out
}

// horizontalEnhanced sharpens along each row, P + (2P - W - E) * gain, then
// runs the 1-D vertical combination over the result
type horizontalEnhanced struct {
	quarters int
	vertical vertical1D
}

func (f horizontalEnhanced) apply(in *sampleFrame) *sampleFrame {
	tmp := newSampleFrame()
	for y := 0; y < sensorH; y++ {
		for x := 0; x < sensorW; x++ {
			px := in.at(x, y)
			d := 2*px - in.at(x-1, y) - in.at(x+1, y)
			// The intermediate is clamped as unsigned, negative samples
			// flatten to zero
			tmp.set(x, y, clamp(0, (4*px+d*f.quarters)/4, 255))
		}
	}
	return f.vertical.apply(tmp)
}

// twoDEnhanced is a 4-neighbor Laplacian sharpen, P + (4P - N - S - E - W) * gain
type twoDEnhanced struct {
	quarters int
}

func (f twoDEnhanced) apply(in *sampleFrame) *sampleFrame {
	out := newSampleFrame()
	for y := 0; y < sensorH; y++ {
		for x := 0; x < sensorW; x++ {
			px := in.at(x, y)
			d := 4*px - in.at(x, y-1) - in.at(x, y+1) - in.at(x-1, y) - in.at(x+1, y)
			out.set(x, y, clamp(-128, (4*px+d*f.quarters)/4, 127))
		}
	}
	return out
}

// degenerate zeroes the whole frame. Undocumented in the sensor datasheet;
// only confirmed on a single cartridge.
type degenerate struct{}

func (degenerate) apply(in *sampleFrame) *sampleFrame {
	return newSampleFrame()
}

// passThrough copies the frame unfiltered for modes with no known behavior
type passThrough struct {
	mode uint8
}

func (passThrough) apply(in *sampleFrame) *sampleFrame {
	out := newSampleFrame()
	copy(out.pix, in.pix)
	return out
}

func newFilter(p Params) filter {
	switch mode := p.Mode(); mode {
	case ModeVertical:
		return vertical1D{p.P, p.M}
	case ModeHorizontal:
		return horizontalEnhanced{p.EdgeQuarters, vertical1D{p.P, p.M}}
	case ModeTwoD:
		return twoDEnhanced{p.EdgeQuarters}
	case ModeDegenerate:
		return degenerate{}
	default:
		return passThrough{mode}
	}
}

// Warning reports a register combination the sensor model does not support.
// The picture is still produced, without filtering.
type Warning struct {
	Mode      uint8
	Registers [NumRegisters]byte
}

func (w *Warning) String() string {
	r := w.Registers
	return fmt.Sprintf("unsupported filter mode: 0x%X, registers %02X %02X %02X %02X %02X %02X", w.Mode, r[0], r[1], r[2], r[3], r[4], r[5])
}
