package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// IMG format errors.
var (
	ErrTruncatedIMGData          = errors.New("truncated IMG data")
	ErrUnsupportedIMGCompression = errors.New("unsupported IMG compression")
)

const (
	imgHeaderSize = 12

	// imgFlagPalette marks an image that carries its own 768-byte palette
	// after the pixel data.
	imgFlagPalette = 0x0100

	// imgCompressionMask selects the compression bits of the flags word.
	imgCompressionMask = 0x00FF
)

// IMG is a single palette-indexed image.
type IMG struct {
	XOffset int
	YOffset int
	Width   int
	Height  int
	Flags   uint16
	Pixels  []byte   // palette indices, row-major
	Palette *Palette // embedded palette, nil if the image uses the shared one
}

// ParseIMG parses an uncompressed IMG: a 12-byte header (x offset, y offset,
// width, height, flags, data length) followed by width*height indices.
func ParseIMG(data []byte) (*IMG, error) {
	if len(data) < imgHeaderSize {
		return nil, ErrTruncatedIMGData
	}

	img := &IMG{
		XOffset: int(binary.LittleEndian.Uint16(data[0:2])),
		YOffset: int(binary.LittleEndian.Uint16(data[2:4])),
		Width:   int(binary.LittleEndian.Uint16(data[4:6])),
		Height:  int(binary.LittleEndian.Uint16(data[6:8])),
		Flags:   binary.LittleEndian.Uint16(data[8:10]),
	}

	if compression := img.Flags & imgCompressionMask; compression != 0 {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedIMGCompression, compression)
	}

	pixelCount := img.Width * img.Height
	end := imgHeaderSize + pixelCount
	if len(data) < end {
		return nil, fmt.Errorf("%w: reading %d pixel indices", ErrTruncatedIMGData, pixelCount)
	}

	img.Pixels = make([]byte, pixelCount)
	copy(img.Pixels, data[imgHeaderSize:end])

	if img.Flags&imgFlagPalette != 0 {
		if len(data) < end+256*3 {
			return nil, fmt.Errorf("%w: reading embedded palette", ErrTruncatedIMGData)
		}
		img.Palette = parseRGBPalette(data[end : end+256*3])
	}

	return img, nil
}

// ParseIMGFile parses an IMG file from disk.
func ParseIMGFile(path string) (*IMG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading IMG file: %w", err)
	}
	return ParseIMG(data)
}

// At returns the palette index at (x, y).
func (img *IMG) At(x, y int) uint8 {
	return img.Pixels[y*img.Width+x]
}
