package image

import (
	"errors"
	"image"
	"io"
)

// Encode writes f to w as a raw sensor frame.
func Encode(w io.Writer, f *RawFrame) error {
	if len(f.Pix) != FrameSize {
		return errors.New("image: frame is wrong size")
	}
	_, err := w.Write(f.Pix)
	return err
}

// Gray returns a copy of f as a grayscale image, including the extra rows.
func (f *RawFrame) Gray() *image.Gray {
	m := image.NewGray(image.Rect(0, 0, Width, Height))
	copy(m.Pix, f.Pix)
	return m
}
