package sky

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/arena-sky/pkg/math"
)

// DefaultFrameTime is the seconds per frame of animated distant land.
const DefaultFrameTime = 1.0 / 18.0

// LandObject is a mountain on the horizon.
type LandObject struct {
	TextureIndex int
	AngleRadians float64
}

// AirObject is a cloud. Height is in [0, 1).
type AirObject struct {
	TextureIndex int
	AngleRadians float64
	Height       float64
}

// AnimatedLandObject is the animated landmass on the horizon. Only its frame
// timer changes after generation.
type AnimatedLandObject struct {
	TextureSetIndex int
	AngleRadians    float64

	targetFrameTime  float64
	currentFrameTime float64
	frameIndex       int
}

// NewAnimatedLandObject creates an object at frame 0. frameTime must be positive.
func NewAnimatedLandObject(setIndex int, angleRadians, frameTime float64) AnimatedLandObject {
	checkFrameTime(frameTime)
	return AnimatedLandObject{
		TextureSetIndex: setIndex,
		AngleRadians:    angleRadians,
		targetFrameTime: frameTime,
	}
}

// FrameTime returns the seconds each frame is shown.
func (a AnimatedLandObject) FrameTime() float64 {
	return a.targetFrameTime
}

// SetFrameTime changes the seconds per frame. Panics if frameTime <= 0.
func (a *AnimatedLandObject) SetFrameTime(frameTime float64) {
	checkFrameTime(frameTime)
	a.targetFrameTime = frameTime
}

// CurrentFrameTime returns the time accumulated toward the next frame.
func (a AnimatedLandObject) CurrentFrameTime() float64 {
	return a.currentFrameTime
}

// FrameIndex returns the frame currently shown.
func (a AnimatedLandObject) FrameIndex() int {
	return a.frameIndex
}

// Update advances the animation by dt seconds over a set of frameCount frames.
// Nothing happens for an empty set or a negative or non-finite dt.
func (a *AnimatedLandObject) Update(dt float64, frameCount int) {
	if frameCount <= 0 || !(dt >= 0) || gomath.IsInf(dt, 1) {
		return
	}

	a.currentFrameTime += dt
	for a.currentFrameTime >= a.targetFrameTime {
		a.currentFrameTime -= a.targetFrameTime
		a.frameIndex = (a.frameIndex + 1) % frameCount
	}
}

func checkFrameTime(frameTime float64) {
	if !(frameTime > 0) {
		panic(fmt.Sprintf("sky: frame time must be positive, got %v", frameTime))
	}
}

// MoonKind identifies one of the two moons.
type MoonKind int

const (
	MoonFirst MoonKind = iota
	MoonSecond
)

func (k MoonKind) String() string {
	switch k {
	case MoonFirst:
		return "first"
	case MoonSecond:
		return "second"
	default:
		return fmt.Sprintf("moon(%d)", int(k))
	}
}

// MoonObject is a moon with its phase baked into its texture.
type MoonObject struct {
	TextureIndex int
	PhasePercent float64 // [0, 1)
	Kind         MoonKind
}

// StarKind tells which payload a StarObject carries.
type StarKind int

const (
	StarSmall StarKind = iota
	StarLarge
)

func (k StarKind) String() string {
	if k == StarSmall {
		return "small"
	}
	return "large"
}

// SmallStar is one point of a constellation.
type SmallStar struct {
	Color uint32 // 0xAARRGGBB
}

// LargeStar is a star or planet drawn from an image.
type LargeStar struct {
	TextureIndex int
}

// StarObject is either a small or a large star, both with a unit direction.
type StarObject struct {
	kind      StarKind
	direction math.Vec3
	small     SmallStar
	large     LargeStar
}

// NewSmallStar creates a constellation point.
func NewSmallStar(color uint32, direction math.Vec3) StarObject {
	return StarObject{kind: StarSmall, direction: direction, small: SmallStar{Color: color}}
}

// NewLargeStar creates an image star.
func NewLargeStar(textureIndex int, direction math.Vec3) StarObject {
	return StarObject{kind: StarLarge, direction: direction, large: LargeStar{TextureIndex: textureIndex}}
}

// Kind returns the star variant.
func (s StarObject) Kind() StarKind {
	return s.kind
}

// Direction returns the unit direction toward the star.
func (s StarObject) Direction() math.Vec3 {
	return s.direction
}

// Small returns the small-star payload. Panics for large stars.
func (s StarObject) Small() SmallStar {
	if s.kind != StarSmall {
		panic("sky: Small called on a large star")
	}
	return s.small
}

// Large returns the large-star payload. Panics for small stars.
func (s StarObject) Large() LargeStar {
	if s.kind != StarLarge {
		panic("sky: Large called on a small star")
	}
	return s.large
}
