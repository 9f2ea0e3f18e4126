/*
Package sram implements the first bank of Game Boy Camera cartridge RAM as
seen after a capture.

The bank is 8 KiB. The cartridge writes the developed picture, 4096 bytes of
tile data, at offset 0x100; the remaining bytes belong to the cartridge
software and are carried through untouched.
*/
package sram

import (
	"errors"

	"github.com/bodgit/gbcam/tile"
)

const (
	// BankSize is the size in bytes of one RAM bank
	BankSize = 0x2000

	// PictureOffset is where the developed picture starts within the bank
	PictureOffset = 0x100
)

var (
	errBadBank    = errors.New("sram: wrong bank size")
	errBadPicture = errors.New("sram: wrong picture size")
)

// Bank is a RAM bank image. It implements the encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler interfaces.
type Bank struct {
	b [BankSize]byte
}

// New returns an empty bank
func New() *Bank {
	return &Bank{}
}

// SetPicture copies the tile buffer p into the picture area
func (b *Bank) SetPicture(p []byte) error {
	if len(p) != tile.Size {
		return errBadPicture
	}
	copy(b.b[PictureOffset:], p)
	return nil
}

// Picture returns a copy of the tile buffer in the picture area
func (b *Bank) Picture() []byte {
	p := make([]byte, tile.Size)
	copy(p, b.b[PictureOffset:])
	return p
}

// MarshalBinary returns the raw bank
func (b *Bank) MarshalBinary() ([]byte, error) {
	out := make([]byte, BankSize)
	copy(out, b.b[:])
	return out, nil
}

// UnmarshalBinary replaces the bank contents with data
func (b *Bank) UnmarshalBinary(data []byte) error {
	if len(data) != BankSize {
		return errBadBank
	}
	copy(b.b[:], data)
	return nil
}
