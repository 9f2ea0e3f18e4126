/*
Package tile implements the Game Boy 2 bits per pixel tile format as written
by the Game Boy Camera.

A picture is 128 by 112 pixels exactly which is split into fourteen rows of
sixteen 8 by 8 tiles stored in raster order. Each tile is 16 bytes; every
pixel row is a byte of the low bit of each color index followed by a byte of
the high bit, with the leftmost pixel in the most significant bit. Color index
0 is white and 3 is black.
*/
package tile

import "image/color"

const (
	tileWidth  = 8
	tileHeight = tileWidth
	tileBytes  = tileHeight * 2
	tileX      = 16
	tileY      = 14
	numTiles   = tileX * tileY
	numColors  = 4

	// PixelX is the width of a picture.
	PixelX        = tileWidth * tileX
	// PixelY is the height of a picture.
	PixelY        = tileHeight * tileY
	// Size is the size in bytes of a picture.
	Size          = numTiles * tileBytes
	// ThumbnailSize is the size in bytes of a two tile row thumbnail.
	ThumbnailSize = tileX * 2 * tileBytes
)

// Palette holds the shades of color index 0 to 3.
var Palette = color.Palette{
	color.Gray{Y: 255},
	color.Gray{Y: 168},
	color.Gray{Y: 80},
	color.Gray{Y: 0},
}
