package assets

import (
	"hash/fnv"
	"strings"

	"github.com/Faultbox/arena-sky/internal/sky"
	"github.com/Faultbox/arena-sky/pkg/formats"
)

// syntheticFrames is the frame count for multi-frame placeholders, enough
// for every moon phase.
const syntheticFrames = 32

var _ sky.Assets = Synthetic{}

// Synthetic serves placeholder images derived from the identifier, for
// inspecting sky layouts without game data.
type Synthetic struct{}

// LoadImage returns a 16x16 image filled with a color derived from id.
func (Synthetic) LoadImage(id string) (sky.Buffer2D, error) {
	return syntheticImage(id, 0), nil
}

// LoadImageFrames returns one placeholder per moon phase for multi-frame
// names, otherwise a single frame.
func (Synthetic) LoadImageFrames(id string) ([]sky.Buffer2D, error) {
	count := 1
	if strings.HasSuffix(sky.NormalizeIdentifier(id), ".DFA") {
		count = syntheticFrames
	}

	frames := make([]sky.Buffer2D, count)
	for i := range frames {
		frames[i] = syntheticImage(id, i)
	}
	return frames, nil
}

// LoadDefaultPalette returns a grayscale palette with transparent index 0.
func (Synthetic) LoadDefaultPalette() (*formats.Palette, error) {
	p := &formats.Palette{}
	for i := range p.Colors {
		v := uint8(i)
		p.Colors[i] = formats.Color{R: v, G: v, B: v, A: 255}
	}
	p.Colors[0].A = 0
	return p, nil
}

func syntheticImage(id string, frame int) sky.Buffer2D {
	h := fnv.New32a()
	h.Write([]byte(sky.NormalizeIdentifier(id)))
	base := uint8(h.Sum32())

	buf := sky.NewBuffer2D(16, 16)
	for i := range buf.Pixels {
		buf.Pixels[i] = base + uint8(frame)
	}
	return buf
}
