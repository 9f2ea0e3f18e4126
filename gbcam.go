/*
Package gbcam reproduces the image pipeline of the Game Boy Camera sensor
chip.

A capture is a 128 by 120 grid of light intensities. It is rescaled to
sensor voltages, filtered according to the control registers, dithered down
to four levels with the 4x4 threshold matrix and finally packed into the
2 bits per pixel tile layout the cartridge writes to its RAM.
*/
package gbcam

import (
	"crypto/sha1"
	"errors"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/gbcam/image"
)

// Camera develops captures and optionally archives them.
type Camera struct {
	db     *CaptureDB
	logger *log.Logger
}

// New returns a Camera. db may be nil if captures are not archived.
func New(db *CaptureDB, logger *log.Logger) *Camera {
	return &Camera{
		db:     db,
		logger: logger,
	}
}

// Develop runs the pipeline over f with the register block r and returns
// the packed tile buffer. An unsupported filter mode is logged and the
// unfiltered picture is returned.
func (c *Camera) Develop(f *image.RawFrame, r *Registers) ([]byte, error) {
	b := make([]byte, TileBufferSize)
	w, err := Process(b, f, r)
	if err != nil {
		return nil, err
	}
	if w != nil {
		c.logger.Println(w)
	}
	return b, nil
}

// DevelopFile loads a capture from file, develops it and, if the Camera has
// an archive, stores the result. The returned identifier is empty without an
// archive.
func (c *Camera) DevelopFile(file string, r *Registers) (string, []byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	h := sha1.New()
	frame, err := image.Load(io.TeeReader(f, h))
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", file, err)
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	b, err := c.Develop(frame, r)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", file, err)
	}

	c.logger.Printf("Developed \"%s\" in %d clocks\n", file, r.Decode().Clocks())

	if c.db == nil {
		return "", b, nil
	}

	id, err := c.db.AddCapture(filepath.Base(file), sha, r, b)
	if err != nil {
		return "", nil, err
	}

	return id, b, nil
}

// Capture returns the archived capture with identifier id.
func (c *Camera) Capture(id string) (*Capture, error) {
	if c.db == nil {
		return nil, errors.New("gbcam: no capture archive")
	}
	capture, err := c.db.FindCapture(id)
	if err != nil {
		return nil, err
	}
	if capture == nil {
		return nil, fmt.Errorf("gbcam: no capture with id %s", id)
	}
	return capture, nil
}
