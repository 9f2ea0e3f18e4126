package gbcam

import (
	"errors"
	"fmt"
)

const (
	// NumRegisters is the number of scalar control registers.
	NumRegisters = 6
	// MatrixSize is the size of the threshold matrix that follows them.
	MatrixSize = 48
	// RegisterBlockSize is the size of the full register block.
	RegisterBlockSize = NumRegisters + MatrixSize
)

var errBadRegisters = errors.New("gbcam: wrong register block size")

// Matrix holds sixteen cells of three thresholds, indexed by (y%4)*4 + x%4.
type Matrix [MatrixSize]byte

// Thresholds returns the three thresholds used for the pixel at x, y.
func (m *Matrix) Thresholds(x, y int) (byte, byte, byte) {
	base := ((y&3)<<2 + x&3) * 3
	return m[base], m[base+1], m[base+2]
}

// Registers is the control register block written by the cartridge before
// a capture.
type Registers struct {
	Reg    [NumRegisters]byte
	Matrix Matrix
}

// DefaultRegisters returns a neutral register block: vertical 1-D filtering
// with only the pixel subtracted, unity exposure and the low light matrix.
func DefaultRegisters() *Registers {
	return &Registers{
		Reg:    [NumRegisters]byte{0x00, 0x00, 0x01, 0x00, 0x00, 0x00},
		Matrix: LowLightMatrix,
	}
}

// SetExposure stores e in registers 2 and 3.
func (r *Registers) SetExposure(e uint16) {
	r.Reg[2] = byte(e >> 8)
	r.Reg[3] = byte(e)
}

// MarshalBinary returns the 54 byte register block as mapped at 0xA000.
func (r *Registers) MarshalBinary() ([]byte, error) {
	b := make([]byte, RegisterBlockSize)
	copy(b, r.Reg[:])
	copy(b[NumRegisters:], r.Matrix[:])
	return b, nil
}

// UnmarshalBinary decodes a 54 byte register block.
func (r *Registers) UnmarshalBinary(b []byte) error {
	if len(b) != RegisterBlockSize {
		return errBadRegisters
	}
	copy(r.Reg[:], b)
	copy(r.Matrix[:], b[NumRegisters:])
	return nil
}

func (r *Registers) String() string {
	return fmt.Sprintf("%02X %02X %02X %02X %02X %02X", r.Reg[0], r.Reg[1], r.Reg[2], r.Reg[3], r.Reg[4], r.Reg[5])
}

// Polarity bits of the 1-D filter. Bit 0 selects the pixel and bit 1 its
// vertical successor.
const (
	polarityPixel     = 1 << 0
	polaritySuccessor = 1 << 1
)

var polarityLUT = [4]struct{ p, m uint8 }{
	{0x00, 0x01},
	{0x01, 0x00},
	{0x01, 0x02},
	{0x01, 0x02},
}

// Edge enhancement gains in quarters: 0.50, 0.75, 1.00, 1.25, 2.00, 3.00,
// 4.00 and 5.00. Every gain is a multiple of 0.25 so the filter stays in
// integer arithmetic.
var edgeQuartersLUT = [8]int{2, 3, 4, 5, 8, 12, 16, 20}

// Params are the pipeline parameters decoded from the registers.
type Params struct {
	P, M     uint8 // Polarity masks
	N        bool
	VH       uint8
	Exposure uint16

	// EdgeQuarters is the edge enhancement gain multiplied by four
	EdgeQuarters int
	E3           bool
	Invert       bool
}

// Decode unpacks the scalar registers. Every bit pattern is valid.
func (r *Registers) Decode() Params {
	pol := polarityLUT[(r.Reg[0]>>1)&3]
	return Params{
		P:            pol.p,
		M:            pol.m,
		N:            r.Reg[1]&0x80 != 0,
		VH:           (r.Reg[1] >> 5) & 3,
		Exposure:     uint16(r.Reg[2])<<8 | uint16(r.Reg[3]),
		EdgeQuarters: edgeQuartersLUT[(r.Reg[4]>>4)&7],
		E3:           r.Reg[4]&0x80 != 0,
		Invert:       r.Reg[4]&0x08 != 0,
	}
}

// EdgeGain returns the edge enhancement gain.
func (p Params) EdgeGain() float64 {
	return float64(p.EdgeQuarters) / 4
}

// Mode returns the 4-bit filter mode, N<<3 | VH<<1 | E3.
func (p Params) Mode() uint8 {
	var mode uint8
	if p.N {
		mode |= 1 << 3
	}
	mode |= p.VH << 1
	if p.E3 {
		mode |= 1
	}
	return mode
}

// Clocks returns the number of CPU clocks the capture takes before the
// cartridge reports it as finished.
func (p Params) Clocks() int {
	c := 32446 + 16*int(p.Exposure)
	if !p.N {
		c += 512
	}
	return 4 * c
}
