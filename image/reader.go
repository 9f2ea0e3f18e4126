package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"

	"golang.org/x/image/draw"
)

var (
	errNotEnough = errors.New("image: not enough sensor data")
	errTooMuch   = errors.New("image: too much sensor data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads a raw sensor frame from r.
func Decode(r io.Reader) (*RawFrame, error) {
	f := NewRawFrame()
	if err := readFull(r, f.Pix); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, errNotEnough
	}

	var tmp [1]byte
	if n, err := r.Read(tmp[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTooMuch
	}

	return f, nil
}

// Return the largest rectangle centered in r with the aspect ratio of the
// sensor
func cropToSensor(r image.Rectangle) image.Rectangle {
	dx, dy := r.Dx(), r.Dy()
	switch {
	case dx*Height > dy*Width: // Too wide
		w := dy * Width / Height
		r.Min.X += (dx - w) / 2
		r.Max.X = r.Min.X + w
	case dx*Height < dy*Width: // Too tall
		h := dx * Height / Width
		r.Min.Y += (dy - h) / 2
		r.Max.Y = r.Min.Y + h
	}
	return r
}

// FromImage converts m into a raw frame as if it had been focused onto the
// sensor. The largest centered area of m matching the sensor aspect ratio is
// scaled to 128 by 120 and converted to luminance.
func FromImage(m image.Image) *RawFrame {
	dst := image.NewGray(image.Rect(0, 0, Width, Height))

	src := cropToSensor(m.Bounds())
	if src.Dx() == Width && src.Dy() == Height {
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				dst.Set(x, y, color.GrayModel.Convert(m.At(src.Min.X+x, src.Min.Y+y)))
			}
		}
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), m, src, draw.Src, nil)
	}

	return &RawFrame{
		Pix: dst.Pix,
	}
}

// Load reads a capture from r. Input of exactly FrameSize bytes is taken as
// a raw sensor frame, anything else is decoded with image.Decode using the
// registered formats and converted with FromImage.
func Load(r io.Reader) (*RawFrame, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(b) == FrameSize {
		return Decode(bytes.NewReader(b))
	}
	m, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return FromImage(m), nil
}
