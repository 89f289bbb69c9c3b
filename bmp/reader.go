// Package bmp reads the subset of the 24-bit uncompressed Windows BMP
// format produced by common encoders: a little-endian header carrying the
// pixel data offset, width, and height, followed by bottom-up BGR rows
// padded to a 4-byte boundary (spec.md §6).
package bmp

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/mjkern/bmpjpeg/colorspace"
	"github.com/mjkern/bmpjpeg/errs"
	"github.com/mjkern/bmpjpeg/pixelgrid"
)

const (
	dataOffsetFieldOffset = 10
	widthFieldOffset      = 18
	heightFieldOffset     = 22
)

// Image is a decoded BMP, exposing its pixels top-down, left-to-right,
// and in RGB order.
type Image struct {
	Width, Height int
	Pixels        *pixelgrid.Plane[colorspace.RGB]
}

// PixelAmount returns the total pixel count.
func (img *Image) PixelAmount() int {
	return img.Width * img.Height
}

func readLE32(r io.ReadSeeker, offset int64) (int32, error) {
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return 0, errs.IOf("seeking to offset %d: %v", offset, err)
	}
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errs.IOf("reading 4 bytes at offset %d: %v", offset, err)
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

// Load decodes a BMP from r, which must support seeking back to the
// header fields and forward to the pixel data.
func Load(r io.ReadSeeker) (*Image, error) {
	dataOffset, err := readLE32(r, dataOffsetFieldOffset)
	if err != nil {
		return nil, err
	}
	width, err := readLE32(r, widthFieldOffset)
	if err != nil {
		return nil, err
	}
	height, err := readLE32(r, heightFieldOffset)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, errs.InvalidInputf("bmp dimensions must be positive, got %dx%d", width, height)
	}

	if _, err := r.Seek(int64(dataOffset), io.SeekStart); err != nil {
		return nil, errs.IOf("seeking to pixel data at offset %d: %v", dataOffset, err)
	}

	pixels := pixelgrid.New[colorspace.RGB](int(width), int(height))

	rowBytes := int(width) * 3
	padding := (4 - rowBytes%4) % 4
	row := make([]byte, rowBytes)
	pad := make([]byte, padding)

	// BMP pixel rows are stored bottom-to-top; read from the last row of
	// the plane backwards to present pixels top-down.
	for y := int(height) - 1; y >= 0; y-- {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, errs.IOf("reading pixel row %d: %v", y, err)
		}
		for x := 0; x < int(width); x++ {
			b, g, rr := row[x*3], row[x*3+1], row[x*3+2]
			pixels.Set(y, x, colorspace.RGB{R: rr, G: g, B: b})
		}
		if padding > 0 {
			if _, err := io.ReadFull(r, pad); err != nil {
				return nil, errs.IOf("reading row padding: %v", err)
			}
		}
	}

	return &Image{Width: int(width), Height: int(height), Pixels: pixels}, nil
}

// Open opens path and decodes it as a BMP.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.IOf("opening bmp file %q: %v", path, err)
	}
	defer f.Close()
	return Load(f)
}
