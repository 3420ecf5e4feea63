package sky

import (
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/arena-sky/internal/game/world"
	"github.com/Faultbox/arena-sky/internal/logger"
	"github.com/Faultbox/arena-sky/internal/skydata"
	"github.com/Faultbox/arena-sky/pkg/math"
	"github.com/Faultbox/arena-sky/pkg/random"
)

// Params are the inputs that fully determine a distant sky.
type Params struct {
	Location  world.LocationDefinition
	Province  world.ProvinceDefinition
	Weather   world.WeatherType
	Day       int
	StarCount int
}

// mountainTraits says where the variant digits go in a mountain template.
type mountainTraits struct {
	filenameIndex int // into skydata.Table.DistantMountainFilenames
	position      int
	variation     int
	maxDigits     int
}

var mountainTraitsByClimate = map[world.ClimateType]mountainTraits{
	world.ClimateTemperate: {filenameIndex: 2, position: 4, variation: 10, maxDigits: 2},
	world.ClimateDesert:    {filenameIndex: 1, position: 6, variation: 4, maxDigits: 1},
	world.ClimateMountain:  {filenameIndex: 0, position: 6, variation: 11, maxDigits: 2},
}

const (
	animLandNearDistance = 80
	animLandMidDistance  = 150

	// animMultiFrameMarker marks filenames holding several frames.
	animMultiFrameMarker = ".DFA"

	moonPhaseCount        = 32
	secondMoonPhaseOffset = 14

	// Sub-star offsets are in pixels of a 320-wide view spanning 90 degrees.
	identityDim          = 320.0
	identityAngleRadians = 90.0 * gomath.Pi / 180.0
)

// Generate builds the distant sky for p using the legacy sequence source.
func Generate(p Params, table *skydata.Table, assets Assets) (*DistantSky, error) {
	return GenerateWithSource(random.NewArena(random.DefaultSeed), p, table, assets)
}

// GenerateWithSource is Generate with a caller-supplied source. The source is
// reseeded from the location before any draw.
func GenerateWithSource(src random.Source, p Params, table *skydata.Table, assets Assets) (*DistantSky, error) {
	if !p.Location.IsCity() {
		return nil, fmt.Errorf("%w: %q", ErrNotACity, p.Location.Name)
	}
	if p.Day < 0 {
		return nil, fmt.Errorf("%w: negative day %d", ErrInvalidParams, p.Day)
	}
	if p.StarCount < 0 {
		return nil, fmt.Errorf("%w: negative star count %d", ErrInvalidParams, p.StarCount)
	}

	city := p.Location.City
	traits, ok := mountainTraitsByClimate[city.Climate]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClimate, int(city.Climate))
	}

	mountainTemplate, err := table.MountainFilename(traits.filenameIndex)
	if err != nil {
		return nil, err
	}

	clearSky := p.Weather.IsClear()
	plan := drawSkyPlan(src, city.DistantSkySeed, traits.variation, clearSky, p.Day, p.StarCount)

	s := newDistantSky()

	if err := s.placeStatics(plan.mountains, mountainTemplate, traits.position, traits.maxDigits, false, assets); err != nil {
		return nil, fmt.Errorf("placing mountains: %w", err)
	}

	if clearSky {
		if err := s.placeStatics(plan.clouds, table.CloudFilename, cloudPosition, cloudMaxDigits, true, assets); err != nil {
			return nil, fmt.Errorf("placing clouds: %w", err)
		}
	}

	if p.Province.AnimatedDistantLand {
		if err := s.placeAnimatedLand(world.LocalCityPoint(city.CitySeed), table, assets); err != nil {
			return nil, fmt.Errorf("placing animated land: %w", err)
		}
	}

	if clearSky {
		for _, kind := range []MoonKind{MoonFirst, MoonSecond} {
			if err := s.addMoon(kind, p.Day, table, assets); err != nil {
				return nil, fmt.Errorf("adding %s moon: %w", kind, err)
			}
		}

		if err := s.addStars(plan.stars, table.StarFilename, assets); err != nil {
			return nil, fmt.Errorf("adding stars: %w", err)
		}

		if err := s.addSun(table.SunFilename, assets); err != nil {
			return nil, fmt.Errorf("adding sun: %w", err)
		}
	}

	logger.Debug("distant sky generated",
		zap.String("location", p.Location.Name),
		zap.Stringer("climate", city.Climate),
		zap.Stringer("weather", p.Weather),
		zap.Int("day", p.Day),
		zap.Int("land", len(s.landObjects)),
		zap.Int("air", len(s.airObjects)),
		zap.Int("animLand", len(s.animLandObjects)),
		zap.Int("moons", len(s.moonObjects)),
		zap.Int("stars", len(s.starObjects)),
		zap.Int("textures", s.store.TextureCount()),
		zap.Bool("sun", s.hasSun),
	)

	return s, nil
}

func (s *DistantSky) placeStatics(placements []staticPlacement, template string, position, maxDigits int, airborne bool, assets Assets) error {
	for _, p := range placements {
		filename, err := variantFilename(template, position, maxDigits, p.variant)
		if err != nil {
			return err
		}

		index, err := s.store.TextureIndex(filename, assets.LoadImage)
		if err != nil {
			return err
		}

		angle := LegacyAngleToRadians(p.angleUnit)
		if airborne {
			height := float64(p.heightUnit) / heightLimit
			s.airObjects = append(s.airObjects, AirObject{TextureIndex: index, AngleRadians: angle, Height: height})
		} else {
			s.landObjects = append(s.landObjects, LandObject{TextureIndex: index, AngleRadians: angle})
		}
	}
	return nil
}

// variantFilename writes the variant's decimal digits right-aligned into the
// maxDigits-wide field at position, keeping leading template characters.
func variantFilename(template string, position, maxDigits, variant int) (string, error) {
	digits := strconv.Itoa(variant)
	if len(digits) > maxDigits {
		return "", fmt.Errorf("%w: variant %d wider than %d digits", ErrBadTemplate, variant, maxDigits)
	}

	start := position + maxDigits - len(digits)
	if position < 0 || start+len(digits) > len(template) {
		return "", fmt.Errorf("%w: %q has no digit field at %d", ErrBadTemplate, template, position)
	}

	name := []byte(template)
	copy(name[start:], digits)
	return NormalizeIdentifier(string(name)), nil
}

// animatedLandVariant picks the animation for a map distance.
func animatedLandVariant(distance int) int {
	switch {
	case distance < animLandNearDistance:
		return 0
	case distance < animLandMidDistance:
		return 1
	default:
		return 2
	}
}

func (s *DistantSky) placeAnimatedLand(cityPoint math.Int2, table *skydata.Table, assets Assets) error {
	landPoint := world.AnimatedLandPoint
	distance := math.MapDistance(cityPoint, landPoint)

	angle := normalizeAngle(gomath.Atan2(
		float64(cityPoint.Y-landPoint.Y),
		float64(landPoint.X-cityPoint.X)))

	filename, err := table.AnimatedLandFilename(animatedLandVariant(distance))
	if err != nil {
		return err
	}

	setIndex, err := s.store.TextureSetIndex(filename, func(id string) ([]Buffer2D, error) {
		if strings.Contains(id, animMultiFrameMarker) {
			return assets.LoadImageFrames(id)
		}
		frame, err := assets.LoadImage(id)
		if err != nil {
			return nil, err
		}
		return []Buffer2D{frame}, nil
	})
	if err != nil {
		return err
	}

	s.animLandObjects = append(s.animLandObjects, NewAnimatedLandObject(setIndex, angle, DefaultFrameTime))
	return nil
}

// moonPhase returns the phase frame for a moon on the given day.
func moonPhase(kind MoonKind, day int) (int, error) {
	switch kind {
	case MoonFirst:
		return day % moonPhaseCount, nil
	case MoonSecond:
		return (day + secondMoonPhaseOffset) % moonPhaseCount, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMoonKind, int(kind))
	}
}

func (s *DistantSky) addMoon(kind MoonKind, day int, table *skydata.Table, assets Assets) error {
	phase, err := moonPhase(kind, day)
	if err != nil {
		return err
	}

	filename, err := table.MoonFilename(int(kind))
	if err != nil {
		return err
	}

	// Only the frame for today's phase is kept; moons do not animate.
	index, err := s.store.TextureIndex(filename, func(id string) (Buffer2D, error) {
		frames, err := assets.LoadImageFrames(id)
		if err != nil {
			return Buffer2D{}, err
		}
		if phase >= len(frames) {
			return Buffer2D{}, fmt.Errorf("%w: phase %d of %d", ErrMissingFrame, phase, len(frames))
		}
		return frames[phase], nil
	})
	if err != nil {
		return err
	}

	s.moonObjects = append(s.moonObjects, MoonObject{
		TextureIndex: index,
		PhasePercent: float64(phase) / moonPhaseCount,
		Kind:         kind,
	})
	return nil
}

func (s *DistantSky) addSun(filename string, assets Assets) error {
	index, err := s.store.TextureIndex(filename, assets.LoadImage)
	if err != nil {
		return err
	}
	s.sunTextureIndex = index
	s.hasSun = true
	return nil
}
