// Package sky generates and animates the distant sky seen from a city:
// horizon mountains, clouds, the animated distant landmass, moons, stars
// and the sun. Generation is deterministic for a given location, weather
// and day.
package sky

import (
	"errors"
	"fmt"

	"github.com/Faultbox/arena-sky/pkg/formats"
)

// Configuration faults.
var (
	ErrNotACity           = errors.New("location is not a city")
	ErrUnknownClimate     = errors.New("unknown climate")
	ErrUnknownMoonKind    = errors.New("unknown moon kind")
	ErrUnknownStarDensity = errors.New("unknown star density")
	ErrBadTemplate        = errors.New("filename template cannot hold variant")
	ErrMissingFrame       = errors.New("missing animation frame")
	ErrInvalidParams      = errors.New("invalid generation parameters")
)

// Assets loads images and palettes on behalf of generation. Identifiers are
// already upper-cased when they reach the loader.
type Assets interface {
	LoadImage(id string) (Buffer2D, error)
	LoadImageFrames(id string) ([]Buffer2D, error)
	LoadDefaultPalette() (*formats.Palette, error)
}

// DistantSky owns every generated sky object and the images they reference.
// After generation only the animated land frame timers change, through Tick.
type DistantSky struct {
	store *TextureStore

	landObjects     []LandObject
	animLandObjects []AnimatedLandObject
	airObjects      []AirObject
	moonObjects     []MoonObject
	starObjects     []StarObject

	sunTextureIndex int
	hasSun          bool
}

func newDistantSky() *DistantSky {
	return &DistantSky{store: NewTextureStore()}
}

// Textures exposes the store for read-only iteration.
func (s *DistantSky) Textures() *TextureStore {
	return s.store
}

// LandObjectCount returns the number of mountains.
func (s *DistantSky) LandObjectCount() int { return len(s.landObjects) }

// AnimatedLandObjectCount returns the number of animated landmasses (0 or 1).
func (s *DistantSky) AnimatedLandObjectCount() int { return len(s.animLandObjects) }

// AirObjectCount returns the number of clouds.
func (s *DistantSky) AirObjectCount() int { return len(s.airObjects) }

// MoonObjectCount returns the number of moons.
func (s *DistantSky) MoonObjectCount() int { return len(s.moonObjects) }

// StarObjectCount returns the number of stars, counting each constellation point.
func (s *DistantSky) StarObjectCount() int { return len(s.starObjects) }

// LandObject returns mountain i.
func (s *DistantSky) LandObject(i int) LandObject {
	checkIndex("land object", i, len(s.landObjects))
	return s.landObjects[i]
}

// AnimatedLandObject returns a copy of animated landmass i.
func (s *DistantSky) AnimatedLandObject(i int) AnimatedLandObject {
	checkIndex("animated land object", i, len(s.animLandObjects))
	return s.animLandObjects[i]
}

// SetAnimatedLandFrameTime changes the frame time of animated landmass i.
func (s *DistantSky) SetAnimatedLandFrameTime(i int, frameTime float64) {
	checkIndex("animated land object", i, len(s.animLandObjects))
	s.animLandObjects[i].SetFrameTime(frameTime)
}

// AirObject returns cloud i.
func (s *DistantSky) AirObject(i int) AirObject {
	checkIndex("air object", i, len(s.airObjects))
	return s.airObjects[i]
}

// MoonObject returns moon i.
func (s *DistantSky) MoonObject(i int) MoonObject {
	checkIndex("moon object", i, len(s.moonObjects))
	return s.moonObjects[i]
}

// StarObject returns star i.
func (s *DistantSky) StarObject(i int) StarObject {
	checkIndex("star object", i, len(s.starObjects))
	return s.starObjects[i]
}

// HasSun reports whether the sun was generated.
func (s *DistantSky) HasSun() bool {
	return s.hasSun
}

// SunTextureIndex returns the sun's texture. Panics if there is no sun.
func (s *DistantSky) SunTextureIndex() int {
	if !s.hasSun {
		panic("sky: no sun in this sky")
	}
	return s.sunTextureIndex
}

// Texture returns the pixels of texture i.
func (s *DistantSky) Texture(i int) Buffer2D {
	return s.store.Texture(i).Pixels
}

// TextureSetCount returns the number of frames in texture set i.
func (s *DistantSky) TextureSetCount(i int) int {
	return len(s.store.TextureSet(i).Frames)
}

// TextureSetFrame returns frame f of texture set i.
func (s *DistantSky) TextureSetFrame(i, f int) Buffer2D {
	frames := s.store.TextureSet(i).Frames
	checkIndex("texture set frame", f, len(frames))
	return frames[f]
}

// Tick advances the animated land by dt seconds.
func (s *DistantSky) Tick(dt float64) {
	for i := range s.animLandObjects {
		anim := &s.animLandObjects[i]
		anim.Update(dt, s.TextureSetCount(anim.TextureSetIndex))
	}
}

// Star density settings.
const (
	StarDensityClassic  = 0
	StarDensityModerate = 1
	StarDensityHigh     = 2
)

// StarCountFromDensity maps a star density setting to a star count.
func StarCountFromDensity(density int) (int, error) {
	switch density {
	case StarDensityClassic:
		return 40, nil
	case StarDensityModerate:
		return 1000, nil
	case StarDensityHigh:
		return 8000, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownStarDensity, density)
	}
}
