package sky

import (
	"github.com/Faultbox/arena-sky/pkg/random"
)

// Every call to Next in this file is part of the legacy draw protocol: the
// order, count and reseed points must not change or saved seeds stop
// reproducing the same sky.

const (
	mountainCountBase  = 2
	mountainCountRange = 4

	cloudCount     = 7
	cloudPosition  = 5
	cloudVariation = 17
	cloudMaxDigits = 2

	heightLimit = 64

	// starSeed makes the starfield identical everywhere.
	starSeed uint32 = 0x12345679

	// noStarKind marks a constellation in a starRecord.
	noStarKind int8 = -1
	planetBase      = 5
	planetCount     = 3
	largeStarKinds  = 8
)

// staticPlacement is the draws for one mountain or cloud.
type staticPlacement struct {
	variant    int // 1..variation
	heightUnit int // [0, heightLimit); zero for land
	angleUnit  int // [0, uniqueAngles)
}

// subStar is one point of a constellation, offset from its parent.
type subStar struct {
	dx, dy int8
	color  uint8 // default palette index
}

// starRecord is a star in legacy form before conversion.
type starRecord struct {
	x, y, z  int16
	subStars []subStar
	kind     int8 // noStarKind for constellations, else [0, largeStarKinds)
}

// drawPlan is the full sequence of draws for one generation run.
type drawPlan struct {
	mountains []staticPlacement
	clouds    []staticPlacement
	stars     []starRecord
}

// drawSkyPlan consumes the source in the legacy order:
//
//	seed(skySeed)
//	mountain count, then per mountain: variant, angle
//	if clear: seed(currentSeed + day%32), per cloud: variant, height, angle
//	if clear: seed(starSeed), per star: x, y, z, selector, then sub-stars or kind
func drawSkyPlan(src random.Source, skySeed uint32, mountainVariation int, clearSky bool, day, starCount int) drawPlan {
	var plan drawPlan

	src.Seed(skySeed)
	count := mountainCountBase + int(src.Next())%mountainCountRange
	plan.mountains = drawStatics(src, count, mountainVariation, false)

	if !clearSky {
		return plan
	}

	src.Seed(src.CurrentSeed() + uint32(day%32))
	plan.clouds = drawStatics(src, cloudCount, cloudVariation, true)

	src.Seed(starSeed)
	plan.stars = drawStars(src, starCount)

	return plan
}

func drawStatics(src random.Source, count, variation int, airborne bool) []staticPlacement {
	placements := make([]staticPlacement, 0, count)
	for i := 0; i < count; i++ {
		var p staticPlacement

		p.variant = int(src.Next()) % variation
		if p.variant == 0 {
			p.variant = variation
		}

		if airborne {
			p.heightUnit = int(src.Next()) % heightLimit
		}

		p.angleUnit = int(src.Next()) % uniqueAngles
		placements = append(placements, p)
	}
	return placements
}

func drawStars(src random.Source, count int) []starRecord {
	stars := make([]starRecord, 0, count)
	var planets [planetCount]bool

	for i := 0; i < count; i++ {
		star := starRecord{
			x:    drawCoord(src),
			y:    drawCoord(src),
			z:    drawCoord(src),
			kind: noStarKind,
		}

		if src.Next()%4 != 0 {
			n := 2 + int(src.Next()%4)
			star.subStars = make([]subStar, 0, n)
			for j := 0; j < n; j++ {
				// Arithmetic shift on the signed value keeps the sign.
				dx := int8(int16(src.Next()) >> 9)
				dy := int8(int16(src.Next()) >> 9)
				color := uint8(src.Next()%10) + 64
				star.subStars = append(star.subStars, subStar{dx: dx, dy: dy, color: color})
			}
		} else {
			var kind int8
			for {
				kind = int8(src.Next() % largeStarKinds)
				if kind < planetBase || !planets[kind-planetBase] {
					break
				}
			}
			if kind >= planetBase {
				planets[kind-planetBase] = true
			}
			star.kind = kind
		}

		stars = append(stars, star)
	}
	return stars
}

// drawCoord returns a coordinate in (-0x1000, 0x1000), negated when bit 1 is set.
func drawCoord(src random.Source) int16 {
	d := int16((0x800 + int(src.Next())) & 0x0FFF)
	if d&2 != 0 {
		return -d
	}
	return d
}
