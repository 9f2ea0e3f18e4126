/*
Package image implements reading and writing raw Game Boy Camera sensor
frames.

The sensor is 128 pixels wide and 120 pixels high; 112 rows are visible and
four extra rows are read out above and below them. A raw frame is stored as
15360 bytes of unsigned light intensity, one byte per pixel in row-major
order with no header.
*/
package image

const (
	// Width is the number of sensor columns.
	Width         = 128
	// Height is the number of sensor rows, including the extra rows.
	Height        = VisibleHeight + ExtraRows
	// VisibleHeight is the number of rows that reach the picture.
	VisibleHeight = 112
	// ExtraRows is the number of rows trimmed, split evenly above and below.
	ExtraRows     = 8
	// FrameSize is the size in bytes of a raw frame.
	FrameSize     = Width * Height
)

// RawFrame is a captured grid of light intensities.
type RawFrame struct {
	Pix []uint8
}

// NewRawFrame returns a black frame.
func NewRawFrame() *RawFrame {
	return &RawFrame{
		Pix: make([]uint8, FrameSize),
	}
}

// Fill returns a frame where every pixel has intensity v.
func Fill(v uint8) *RawFrame {
	f := NewRawFrame()
	for i := range f.Pix {
		f.Pix[i] = v
	}
	return f
}

// At returns the intensity at column x and row y.
func (f *RawFrame) At(x, y int) uint8 {
	return f.Pix[y*Width+x]
}

// Set sets the intensity at column x and row y.
func (f *RawFrame) Set(x, y int, v uint8) {
	f.Pix[y*Width+x] = v
}
