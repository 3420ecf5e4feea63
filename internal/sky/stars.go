package sky

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Faultbox/arena-sky/pkg/formats"
	"github.com/Faultbox/arena-sky/pkg/math"
)

// sortStarRecords orders stars by ascending kind, keeping generation order
// among equal kinds. Constellations (kind -1) come first.
func sortStarRecords(stars []starRecord) {
	slices.SortStableFunc(stars, func(a, b starRecord) int {
		return int(a.kind) - int(b.kind)
	})
}

// direction returns the unit vector toward the star's legacy position.
func (r starRecord) direction() math.Vec3 {
	return math.Vec3{X: float64(r.x), Y: float64(r.y), Z: float64(r.z)}.Normalize()
}

// subStarDirection rotates a constellation's base direction by a sub-star's
// pixel offset: first about the X axis by dx, then about the Y axis by dy.
func subStarDirection(base math.Vec3, sub subStar) math.Vec3 {
	dxRadians := (float64(sub.dx) / identityDim) * identityAngleRadians
	dyRadians := (float64(sub.dy) / identityDim) * identityAngleRadians

	return math.RotateY(dyRadians).Mul(math.RotateX(dxRadians)).TransformDirection(base)
}

// largeStarFilename replaces the first '1' of the template with kind+1.
func largeStarFilename(template string, kind int8) (string, error) {
	i := strings.IndexByte(template, '1')
	if i < 0 {
		return "", fmt.Errorf("%w: star template %q has no numeral", ErrBadTemplate, template)
	}
	name := template[:i] + strconv.Itoa(int(kind)+1) + template[i+1:]
	return NormalizeIdentifier(name), nil
}

func (s *DistantSky) addStars(stars []starRecord, template string, assets Assets) error {
	sortStarRecords(stars)

	palette, err := assets.LoadDefaultPalette()
	if err != nil {
		return fmt.Errorf("loading default palette: %w", err)
	}

	for _, star := range stars {
		base := star.direction()

		if star.kind == noStarKind {
			for _, sub := range star.subStars {
				s.starObjects = append(s.starObjects, NewSmallStar(starColor(palette, sub.color), subStarDirection(base, sub)))
			}
			continue
		}

		filename, err := largeStarFilename(template, star.kind)
		if err != nil {
			return err
		}
		index, err := s.store.TextureIndex(filename, assets.LoadImage)
		if err != nil {
			return err
		}
		s.starObjects = append(s.starObjects, NewLargeStar(index, base))
	}
	return nil
}

func starColor(palette *formats.Palette, index uint8) uint32 {
	return palette.Colors[index].ARGB()
}
