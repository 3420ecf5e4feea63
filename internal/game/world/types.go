package world

import (
	"fmt"
	"strings"
)

// ClimateType classifies a city and selects its horizon imagery.
type ClimateType int

const (
	ClimateTemperate ClimateType = iota
	ClimateDesert
	ClimateMountain
)

var climateNames = map[ClimateType]string{
	ClimateTemperate: "temperate",
	ClimateDesert:    "desert",
	ClimateMountain:  "mountain",
}

func (c ClimateType) String() string {
	if name, ok := climateNames[c]; ok {
		return name
	}
	return fmt.Sprintf("climate(%d)", int(c))
}

// ParseClimate converts a climate name to a ClimateType.
func ParseClimate(s string) (ClimateType, error) {
	for c, name := range climateNames {
		if strings.EqualFold(s, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown climate %q", s)
}

// WeatherType is the current weather at a location.
type WeatherType int

const (
	WeatherClear WeatherType = iota
	WeatherOvercast
	WeatherRain
	WeatherSnow
	WeatherSnowOvercast
	WeatherRain2
	WeatherOvercast2
	WeatherSnowOvercast2
)

var weatherNames = []string{
	"clear",
	"overcast",
	"rain",
	"snow",
	"snow_overcast",
	"rain2",
	"overcast2",
	"snow_overcast2",
}

func (w WeatherType) String() string {
	if int(w) >= 0 && int(w) < len(weatherNames) {
		return weatherNames[w]
	}
	return fmt.Sprintf("weather(%d)", int(w))
}

// IsClear reports whether the sky is unobstructed. Clouds, moons, stars and
// the sun are only generated under clear weather.
func (w WeatherType) IsClear() bool {
	return w == WeatherClear
}

// ParseWeather converts a weather name to a WeatherType.
func ParseWeather(s string) (WeatherType, error) {
	for i, name := range weatherNames {
		if strings.EqualFold(s, name) {
			return WeatherType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weather %q", s)
}

// LocationType distinguishes cities from dungeons and wilderness.
type LocationType int

const (
	LocationCity LocationType = iota
	LocationDungeon
	LocationMainQuestDungeon
)

// CityDefinition holds the city-only part of a location.
type CityDefinition struct {
	Climate        ClimateType
	CitySeed       uint32
	DistantSkySeed uint32
}

// LocationDefinition describes a map location.
type LocationDefinition struct {
	Name string
	Type LocationType
	City *CityDefinition // nil unless Type is LocationCity
}

// NewCity creates a city location definition.
func NewCity(name string, city CityDefinition) LocationDefinition {
	return LocationDefinition{
		Name: name,
		Type: LocationCity,
		City: &city,
	}
}

// IsCity reports whether the location has a city definition.
func (l LocationDefinition) IsCity() bool {
	return l.Type == LocationCity && l.City != nil
}

// ProvinceDefinition describes the province containing a location.
type ProvinceDefinition struct {
	Name string
	// AnimatedDistantLand is set for the province whose horizon shows the
	// animated landmass.
	AnimatedDistantLand bool
}
