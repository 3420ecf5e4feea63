package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// COL format errors.
var (
	ErrTruncatedCOLData  = errors.New("truncated COL data")
	ErrInvalidCOLLength  = errors.New("invalid COL length field")
	ErrInvalidCOLVersion = errors.New("invalid COL version")
)

const (
	colHeaderSize = 8
	colFileSize   = colHeaderSize + 256*3
	colVersion    = 0xB123
)

// Color is an RGBA palette color.
type Color struct {
	R, G, B, A uint8
}

// ARGB packs the color as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Palette is a 256-color palette.
type Palette struct {
	Colors [256]Color
}

// ParseCOL parses a COL palette: a little-endian length (always 776), a
// version word, then 256 RGB triplets. Index 0 is transparent.
func ParseCOL(data []byte) (*Palette, error) {
	if len(data) < colFileSize {
		return nil, ErrTruncatedCOLData
	}

	length := binary.LittleEndian.Uint32(data[0:4])
	if length != colFileSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCOLLength, length)
	}

	version := binary.LittleEndian.Uint32(data[4:8])
	if version != colVersion {
		return nil, fmt.Errorf("%w: 0x%x", ErrInvalidCOLVersion, version)
	}

	return parseRGBPalette(data[colHeaderSize:colFileSize]), nil
}

// ParseCOLFile parses a COL palette from disk.
func ParseCOLFile(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading COL file: %w", err)
	}
	return ParseCOL(data)
}

// parseRGBPalette parses 256 RGB colors from 768 bytes.
func parseRGBPalette(data []byte) *Palette {
	p := &Palette{}
	for i := 0; i < 256; i++ {
		offset := i * 3
		p.Colors[i] = Color{
			R: data[offset],
			G: data[offset+1],
			B: data[offset+2],
			A: 255,
		}
	}
	p.Colors[0].A = 0
	return p
}
