package tile

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"
)

var (
	errBadBuffer = errors.New("tile: wrong buffer size")
	errBadLevels = errors.New("tile: wrong number of levels")
)

// Set bits for color index c of the pixel at x, y. The buffer must already
// be cleared.
func setPixel(b []byte, x, y int, c byte) {
	tile := (y>>3)*tileX + x>>3
	row := b[tile*tileBytes+(y&7)*2:]
	bit := byte(1) << (7 - uint(x&7))
	if c&1 != 0 {
		row[0] |= bit
	}
	if c&2 != 0 {
		row[1] |= bit
	}
}

func pack(b []byte, index func(x, y int) byte) {
	for i := range b {
		b[i] = 0
	}
	for y := 0; y < PixelY; y++ {
		for x := 0; x < PixelX; x++ {
			setPixel(b, x, y, index(x, y))
		}
	}
}

// Pack writes the quantized levels, 128x112 values of 0x00, 0x40, 0x80 or
// 0xC0 in row-major order, into b. The darkest level becomes color index 3.
func Pack(b []byte, levels []byte) error {
	if len(b) != Size {
		return errBadBuffer
	}
	if len(levels) != PixelX*PixelY {
		return errBadLevels
	}
	pack(b, func(x, y int) byte {
		return 3 - levels[y*PixelX+x]>>6
	})
	return nil
}

func luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

// Map each palette entry to a color index. A full four color palette is
// ranked brightest first, anything else uses the nearest shade.
func shades(p color.Palette) []byte {
	idx := make([]byte, len(p))
	if len(p) == numColors {
		order := []int{0, 1, 2, 3}
		sort.SliceStable(order, func(i, j int) bool {
			return luminance(p[order[i]]) > luminance(p[order[j]])
		})
		for rank, i := range order {
			idx[i] = byte(rank)
		}
		return idx
	}
	for i, c := range p {
		idx[i] = byte(Palette.Index(color.Gray{Y: luminance(c)}))
	}
	return idx
}

// Encode writes the Image m to w in Game Boy tile format. Images with more
// than four colors are reduced with a median cut quantizer first.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() != PixelX || b.Dy() != PixelY {
		return errors.New("tile: image is wrong size")
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > numColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, numColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	idx := shades(pm.Palette)

	buf := make([]byte, Size)
	pack(buf, func(x, y int) byte {
		return idx[pm.ColorIndexAt(b.Min.X+x, b.Min.Y+y)]
	})

	_, err := w.Write(buf)
	return err
}
