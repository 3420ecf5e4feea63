package world

import (
	"testing"

	"github.com/Faultbox/arena-sky/pkg/math"
)

func TestLocalCityPoint(t *testing.T) {
	got := LocalCityPoint(0x0064_003C)
	want := math.Int2{X: 100, Y: 60}
	if got != want {
		t.Errorf("LocalCityPoint: got %v, want %v", got, want)
	}
}

func TestParseWeather(t *testing.T) {
	tests := []struct {
		in      string
		want    WeatherType
		wantErr bool
	}{
		{"clear", WeatherClear, false},
		{"CLEAR", WeatherClear, false},
		{"snow_overcast", WeatherSnowOvercast, false},
		{"fog", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWeather(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWeather(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseWeather(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseClimate(t *testing.T) {
	c, err := ParseClimate("Desert")
	if err != nil || c != ClimateDesert {
		t.Errorf("ParseClimate(Desert) = %v, %v", c, err)
	}
	if _, err := ParseClimate("tundra"); err == nil {
		t.Error("expected error for unknown climate")
	}
	if s := ClimateType(9).String(); s != "climate(9)" {
		t.Errorf("unknown climate String: got %q", s)
	}
}

func TestWeatherIsClear(t *testing.T) {
	if !WeatherClear.IsClear() {
		t.Error("clear weather should be clear")
	}
	if WeatherRain.IsClear() || WeatherOvercast2.IsClear() {
		t.Error("rain and overcast should not be clear")
	}
}

func TestManagerDirtyTracking(t *testing.T) {
	m := NewManager()
	if m.Loaded() {
		t.Fatal("new manager should not be loaded")
	}

	m.EnterLocation(NewCity("Test", CityDefinition{Climate: ClimateTemperate}), ProvinceDefinition{})
	if !m.TakeDirty() {
		t.Error("entering a location should mark the scene dirty")
	}
	if m.TakeDirty() {
		t.Error("TakeDirty should clear the flag")
	}

	if m.SetWeather(WeatherClear) {
		t.Error("setting the same weather should report no change")
	}
	if m.TakeDirty() {
		t.Error("unchanged weather should not mark dirty")
	}

	if !m.SetWeather(WeatherRain) || !m.TakeDirty() {
		t.Error("weather change should mark dirty")
	}

	m.AdvanceDay()
	if m.Current().Day != 1 || !m.TakeDirty() {
		t.Errorf("AdvanceDay: day=%d", m.Current().Day)
	}
}

func TestNewCity(t *testing.T) {
	loc := NewCity("Imperial City", CityDefinition{Climate: ClimateMountain, CitySeed: 7})
	if !loc.IsCity() {
		t.Error("NewCity should produce a city")
	}
	dungeon := LocationDefinition{Name: "Labyrinth", Type: LocationDungeon}
	if dungeon.IsCity() {
		t.Error("dungeon should not be a city")
	}
}
