package gbcam

import (
	"errors"

	"github.com/bodgit/gbcam/image"
	"github.com/bodgit/gbcam/tile"
)

// TileBufferSize is the size of the packed picture.
const TileBufferSize = tile.Size

var (
	errBadFrame  = errors.New("gbcam: wrong frame size")
	errBadBuffer = errors.New("gbcam: wrong tile buffer size")
)

// Process develops the raw frame f with the register block r into the tile
// buffer dst, which must be TileBufferSize bytes. Inputs are not modified.
//
// A non-nil Warning is returned if the filter mode selected by r is not
// supported; dst then holds the unfiltered picture.
func Process(dst []byte, f *image.RawFrame, r *Registers) (*Warning, error) {
	if f == nil || len(f.Pix) != image.FrameSize {
		return nil, errBadFrame
	}
	if len(dst) != TileBufferSize {
		return nil, errBadBuffer
	}

	p := r.Decode()

	s := frontEnd(f, p.Exposure, p.Invert)

	var w *Warning
	flt := newFilter(p)
	if pt, ok := flt.(passThrough); ok {
		w = &Warning{
			Mode:      pt.mode,
			Registers: r.Reg,
		}
	}
	s = flt.apply(s)

	if err := tile.Pack(dst, quantize(s, &r.Matrix)); err != nil {
		return nil, err
	}

	return w, nil
}
