// Package world holds location, province and weather state for the current scene.
package world

import (
	"github.com/Faultbox/arena-sky/pkg/math"
)

// AnimatedLandPoint is the province-map position of the animated distant land.
var AnimatedLandPoint = math.Int2{X: 132, Y: 52}

// LocalCityPoint derives a city's province-map point from its city seed.
func LocalCityPoint(citySeed uint32) math.Int2 {
	return math.Int2{X: int(citySeed >> 16), Y: int(citySeed & 0xFFFF)}
}

// Scene is everything the distant sky depends on.
type Scene struct {
	Location LocationDefinition
	Province ProvinceDefinition
	Weather  WeatherType
	Day      int
}

// Manager tracks the current scene and whether the sky must be regenerated.
type Manager struct {
	current Scene
	loaded  bool
	dirty   bool
}

// NewManager creates a new world manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current scene.
func (m *Manager) Current() Scene {
	return m.current
}

// Loaded reports whether a location has been entered.
func (m *Manager) Loaded() bool {
	return m.loaded
}

// EnterLocation replaces the location and province.
func (m *Manager) EnterLocation(loc LocationDefinition, province ProvinceDefinition) {
	m.current.Location = loc
	m.current.Province = province
	m.loaded = true
	m.dirty = true
}

// SetWeather changes the weather. Returns true if it differs from the current one.
func (m *Manager) SetWeather(w WeatherType) bool {
	if m.current.Weather == w {
		return false
	}
	m.current.Weather = w
	m.dirty = true
	return true
}

// SetDay changes the day count. Returns true if it differs from the current one.
func (m *Manager) SetDay(day int) bool {
	if m.current.Day == day {
		return false
	}
	m.current.Day = day
	m.dirty = true
	return true
}

// AdvanceDay moves to the next day.
func (m *Manager) AdvanceDay() {
	m.SetDay(m.current.Day + 1)
}

// TakeDirty reports whether the scene changed since the last call and clears the flag.
func (m *Manager) TakeDirty() bool {
	d := m.dirty
	m.dirty = false
	return d
}
