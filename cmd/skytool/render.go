package main

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Faultbox/arena-sky/internal/config"
	"github.com/Faultbox/arena-sky/internal/sky"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B2CBF"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9D4EDD"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cellStyle   = lipgloss.NewStyle().Width(14)
)

func degrees(r float64) string {
	return fmt.Sprintf("%6.1f°", r*180/gomath.Pi)
}

func row(cells ...string) string {
	styled := make([]string, len(cells))
	for i, c := range cells {
		styled[i] = cellStyle.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, styled...)
}

func headerRow(cells ...string) string {
	return headerStyle.Render(row(cells...))
}

func field(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func renderSky(s *sky.DistantSky, cfg *config.Config, maxStars int) string {
	textures := s.Textures()
	id := func(i int) string { return textures.Texture(i).Identifier }

	var b strings.Builder
	b.WriteString(titleStyle.Render("Distant sky: "+cfg.Sim.Location.Name) + "\n")
	b.WriteString(field("Climate", cfg.Sim.Location.Climate) + "\n")
	b.WriteString(field("Weather", cfg.Sim.Weather) + "\n")
	b.WriteString(field("Day", fmt.Sprint(cfg.Sim.Day)) + "\n")
	b.WriteString(field("Textures", fmt.Sprintf("%d (+%d sets)", textures.TextureCount(), textures.TextureSetCount())) + "\n")
	b.WriteString(field("Digest", s.Digest()) + "\n\n")

	b.WriteString(headerRow("Mountain", "Texture", "Angle") + "\n")
	for i := 0; i < s.LandObjectCount(); i++ {
		o := s.LandObject(i)
		b.WriteString(row(fmt.Sprint(i), id(o.TextureIndex), degrees(o.AngleRadians)) + "\n")
	}

	if s.AirObjectCount() > 0 {
		b.WriteString("\n" + headerRow("Cloud", "Texture", "Angle", "Height") + "\n")
		for i := 0; i < s.AirObjectCount(); i++ {
			o := s.AirObject(i)
			b.WriteString(row(fmt.Sprint(i), id(o.TextureIndex), degrees(o.AngleRadians), fmt.Sprintf("%.3f", o.Height)) + "\n")
		}
	}

	if s.AnimatedLandObjectCount() > 0 {
		b.WriteString("\n" + headerRow("Animated", "Texture set", "Angle", "Frames") + "\n")
		for i := 0; i < s.AnimatedLandObjectCount(); i++ {
			o := s.AnimatedLandObject(i)
			set := textures.TextureSet(o.TextureSetIndex)
			b.WriteString(row(fmt.Sprint(i), set.Identifier, degrees(o.AngleRadians), fmt.Sprint(len(set.Frames))) + "\n")
		}
	}

	if s.MoonObjectCount() > 0 {
		b.WriteString("\n" + headerRow("Moon", "Texture", "Phase") + "\n")
		for i := 0; i < s.MoonObjectCount(); i++ {
			o := s.MoonObject(i)
			b.WriteString(row(o.Kind.String(), id(o.TextureIndex), fmt.Sprintf("%.0f%%", o.PhasePercent*100)) + "\n")
		}
	}

	if n := s.StarObjectCount(); n > 0 {
		b.WriteString("\n" + headerRow("Star", "Kind", "Payload", "Direction") + "\n")
		shown := n
		if maxStars > 0 && maxStars < n {
			shown = maxStars
		}
		for i := 0; i < shown; i++ {
			star := s.StarObject(i)
			d := star.Direction()
			var payload string
			if star.Kind() == sky.StarSmall {
				payload = fmt.Sprintf("#%08X", star.Small().Color)
			} else {
				payload = id(star.Large().TextureIndex)
			}
			b.WriteString(row(fmt.Sprint(i), star.Kind().String(), payload,
				fmt.Sprintf("%+.2f %+.2f %+.2f", d.X, d.Y, d.Z)) + "\n")
		}
		if shown < n {
			b.WriteString(dimStyle.Render(fmt.Sprintf("... %d more", n-shown)) + "\n")
		}
	}

	if s.HasSun() {
		b.WriteString("\n" + field("Sun", id(s.SunTextureIndex())) + "\n")
	}

	return b.String()
}

func renderSnapshot(path string, snap sky.Snapshot) string {
	small, large := 0, 0
	for _, s := range snap.Stars {
		if s.Color != nil {
			small++
		} else {
			large++
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Snapshot: "+path) + "\n")
	b.WriteString(field("Digest", snap.Digest) + "\n")
	b.WriteString(field("Textures", fmt.Sprint(len(snap.Textures))) + "\n")
	b.WriteString(field("Mountains", fmt.Sprint(len(snap.Land))) + "\n")
	b.WriteString(field("Clouds", fmt.Sprint(len(snap.Air))) + "\n")
	b.WriteString(field("Animated", fmt.Sprint(len(snap.AnimatedLand))) + "\n")
	b.WriteString(field("Moons", fmt.Sprint(len(snap.Moons))) + "\n")
	b.WriteString(field("Stars", fmt.Sprintf("%d small, %d large", small, large)) + "\n")
	b.WriteString(field("Sun", fmt.Sprint(snap.SunTexture != nil)) + "\n")
	return b.String()
}

func renderDensities() string {
	names := []string{"classic", "moderate", "high"}

	var b strings.Builder
	b.WriteString(headerRow("Setting", "Name", "Stars") + "\n")
	for density, name := range names {
		count, err := sky.StarCountFromDensity(density)
		if err != nil {
			continue
		}
		b.WriteString(row(fmt.Sprint(density), name, fmt.Sprint(count)) + "\n")
	}
	return b.String()
}
