// Package config handles simulator configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/arena-sky/internal/game/world"
	"github.com/Faultbox/arena-sky/internal/sky"
)

// Config holds all settings.
type Config struct {
	Sky     SkyConfig     `yaml:"sky"`
	Assets  AssetsConfig  `yaml:"assets"`
	Sim     SimConfig     `yaml:"sim"`
	Logging LoggingConfig `yaml:"logging"`
}

// SkyConfig holds generation settings.
type SkyConfig struct {
	StarDensity int    `yaml:"star_density"` // 0 classic, 1 moderate, 2 high
	DataFile    string `yaml:"data_file"`    // filename table; empty uses the built-in one
}

// AssetsConfig holds game data locations.
type AssetsConfig struct {
	Dirs    []string `yaml:"dirs"`    // extracted asset directories, last wins
	Palette string   `yaml:"palette"` // COL file for star colors
}

// SimConfig holds the simulated scene and loop settings.
type SimConfig struct {
	Location  LocationConfig `yaml:"location"`
	Weather   string         `yaml:"weather"`
	Day       int            `yaml:"day"`
	Frames    int            `yaml:"frames"`     // 0 runs until interrupted
	FrameRate int            `yaml:"frame_rate"` // ticks per simulated second
	DayFrames int            `yaml:"day_frames"` // advance the day every N frames, 0 never
}

// LocationConfig describes the city the sky is seen from.
type LocationConfig struct {
	Name                string `yaml:"name"`
	Climate             string `yaml:"climate"`
	CitySeed            uint32 `yaml:"city_seed"`
	DistantSkySeed      uint32 `yaml:"distant_sky_seed"`
	Province            string `yaml:"province"`
	AnimatedDistantLand bool   `yaml:"animated_distant_land"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sky: SkyConfig{
			StarDensity: sky.StarDensityClassic,
		},
		Assets: AssetsConfig{
			Dirs:    []string{"ARENA"},
			Palette: "PAL.COL",
		},
		Sim: SimConfig{
			Location: LocationConfig{
				Name:           "Imperial City",
				Climate:        "temperate",
				CitySeed:       0x00870045,
				DistantSkySeed: 0x2F1E0D8C,
				Province:       "Imperial Province",
			},
			Weather:   "clear",
			Day:       0,
			Frames:    600,
			FrameRate: 60,
			DayFrames: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that every setting can be used.
func (c *Config) Validate() error {
	if _, err := sky.StarCountFromDensity(c.Sky.StarDensity); err != nil {
		return fmt.Errorf("sky.star_density: %w", err)
	}
	if _, err := world.ParseWeather(c.Sim.Weather); err != nil {
		return fmt.Errorf("sim.weather: %w", err)
	}
	if _, _, err := c.Sim.Location.Definitions(); err != nil {
		return fmt.Errorf("sim.location: %w", err)
	}
	if c.Sim.Day < 0 {
		return fmt.Errorf("sim.day: must not be negative, got %d", c.Sim.Day)
	}
	if c.Sim.Frames < 0 {
		return fmt.Errorf("sim.frames: must not be negative, got %d", c.Sim.Frames)
	}
	if c.Sim.FrameRate <= 0 {
		return fmt.Errorf("sim.frame_rate: must be positive, got %d", c.Sim.FrameRate)
	}
	if c.Sim.DayFrames < 0 {
		return fmt.Errorf("sim.day_frames: must not be negative, got %d", c.Sim.DayFrames)
	}
	return nil
}

// Definitions converts the location settings to world definitions.
func (l LocationConfig) Definitions() (world.LocationDefinition, world.ProvinceDefinition, error) {
	climate, err := world.ParseClimate(l.Climate)
	if err != nil {
		return world.LocationDefinition{}, world.ProvinceDefinition{}, err
	}

	loc := world.NewCity(l.Name, world.CityDefinition{
		Climate:        climate,
		CitySeed:       l.CitySeed,
		DistantSkySeed: l.DistantSkySeed,
	})
	province := world.ProvinceDefinition{
		Name:                l.Province,
		AnimatedDistantLand: l.AnimatedDistantLand,
	}
	return loc, province, nil
}
