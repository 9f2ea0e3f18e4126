package tile

import (
	"errors"
	"image"
	"io"
)

var (
	errNotEnough = errors.New("tile: not enough image data")
	errTooMuch   = errors.New("tile: too much image data")
)

type decoder struct {
	rows  int
	image *image.Paletted
	tmp   [Size + 1]byte
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	n, err := io.ReadFull(r, d.tmp[:])
	switch err {
	case nil:
		return errTooMuch
	case io.EOF, io.ErrUnexpectedEOF:
	default:
		return err
	}

	switch n {
	case Size:
		d.rows = tileY
	case ThumbnailSize:
		d.rows = 2
	default:
		return errNotEnough
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, PixelX, d.rows*tileHeight), Palette)

	for y := 0; y < d.rows*tileHeight; y++ {
		for x := 0; x < PixelX; x++ {
			d.image.SetColorIndex(x, y, colorIndex(d.tmp[:n], x, y))
		}
	}

	return nil
}

func colorIndex(b []byte, x, y int) uint8 {
	tile := (y>>3)*tileX + x>>3
	row := b[tile*tileBytes+(y&7)*2:]
	shift := 7 - uint(x&7)
	return (row[0]>>shift)&1 | ((row[1]>>shift)&1)<<1
}

// Decode reads a picture or a thumbnail from r and returns it as an
// image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a picture or
// thumbnail without decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Palette,
		Width:      PixelX,
		Height:     d.rows * tileHeight,
	}, nil
}
