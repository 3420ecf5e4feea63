package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/arena-sky/internal/game/world"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test sky defaults
	if cfg.Sky.StarDensity != 0 {
		t.Errorf("expected classic star density, got %d", cfg.Sky.StarDensity)
	}
	if cfg.Sky.DataFile != "" {
		t.Errorf("expected built-in sky data, got %s", cfg.Sky.DataFile)
	}

	// Test asset defaults
	if len(cfg.Assets.Dirs) != 1 || cfg.Assets.Dirs[0] != "ARENA" {
		t.Errorf("expected asset dirs [ARENA], got %v", cfg.Assets.Dirs)
	}
	if cfg.Assets.Palette != "PAL.COL" {
		t.Errorf("expected palette PAL.COL, got %s", cfg.Assets.Palette)
	}

	// Test sim defaults
	if cfg.Sim.Weather != "clear" {
		t.Errorf("expected clear weather, got %s", cfg.Sim.Weather)
	}
	if cfg.Sim.FrameRate != 60 {
		t.Errorf("expected frame rate 60, got %d", cfg.Sim.FrameRate)
	}
	if cfg.Sim.Frames != 600 {
		t.Errorf("expected 600 frames, got %d", cfg.Sim.Frames)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
sky:
  star_density: 2
  data_file: "sky.yaml"

assets:
  dirs: ["/opt/arena", "/opt/mods"]
  palette: "NIGHT.COL"

sim:
  location:
    name: "Sentinel"
    climate: desert
    city_seed: 0x00A0003C
    distant_sky_seed: 12345
    province: "Hammerfell"
    animated_distant_land: true
  weather: rain
  day: 17
  frames: 120
  frame_rate: 30
  day_frames: 10

logging:
  level: "debug"
  log_file: "sky.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sky.StarDensity != 2 {
		t.Errorf("expected star density 2, got %d", cfg.Sky.StarDensity)
	}
	if cfg.Sky.DataFile != "sky.yaml" {
		t.Errorf("expected data file sky.yaml, got %s", cfg.Sky.DataFile)
	}
	if len(cfg.Assets.Dirs) != 2 || cfg.Assets.Dirs[1] != "/opt/mods" {
		t.Errorf("unexpected asset dirs %v", cfg.Assets.Dirs)
	}
	if cfg.Assets.Palette != "NIGHT.COL" {
		t.Errorf("expected palette NIGHT.COL, got %s", cfg.Assets.Palette)
	}

	loc := cfg.Sim.Location
	if loc.Name != "Sentinel" || loc.Climate != "desert" || loc.Province != "Hammerfell" {
		t.Errorf("unexpected location %+v", loc)
	}
	if loc.CitySeed != 0x00A0003C {
		t.Errorf("expected city seed 0xA0003C, got %#x", loc.CitySeed)
	}
	if loc.DistantSkySeed != 12345 {
		t.Errorf("expected sky seed 12345, got %d", loc.DistantSkySeed)
	}
	if !loc.AnimatedDistantLand {
		t.Error("expected animated distant land")
	}

	if cfg.Sim.Weather != "rain" || cfg.Sim.Day != 17 || cfg.Sim.Frames != 120 {
		t.Errorf("unexpected sim %+v", cfg.Sim)
	}
	if cfg.Sim.FrameRate != 30 || cfg.Sim.DayFrames != 10 {
		t.Errorf("unexpected loop settings %+v", cfg.Sim)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sky.log" {
		t.Errorf("expected log file 'sky.log', got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config is invalid: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
sim:
  frames: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"star density", func(c *Config) { c.Sky.StarDensity = 3 }, "sky.star_density"},
		{"weather", func(c *Config) { c.Sim.Weather = "fog" }, "sim.weather"},
		{"climate", func(c *Config) { c.Sim.Location.Climate = "arctic" }, "sim.location"},
		{"day", func(c *Config) { c.Sim.Day = -1 }, "sim.day"},
		{"frames", func(c *Config) { c.Sim.Frames = -1 }, "sim.frames"},
		{"frame rate", func(c *Config) { c.Sim.FrameRate = 0 }, "sim.frame_rate"},
		{"day frames", func(c *Config) { c.Sim.DayFrames = -2 }, "sim.day_frames"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.HasPrefix(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestLocationDefinitions(t *testing.T) {
	cfg := Default()
	cfg.Sim.Location.AnimatedDistantLand = true

	loc, province, err := cfg.Sim.Location.Definitions()
	if err != nil {
		t.Fatalf("Definitions failed: %v", err)
	}
	if !loc.IsCity() {
		t.Fatal("expected a city")
	}
	if loc.City.Climate != world.ClimateTemperate {
		t.Errorf("expected temperate, got %s", loc.City.Climate)
	}
	if loc.City.DistantSkySeed != cfg.Sim.Location.DistantSkySeed {
		t.Errorf("sky seed not carried over")
	}
	if !province.AnimatedDistantLand || province.Name != "Imperial Province" {
		t.Errorf("unexpected province %+v", province)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if filepath.Base(dir) != "arena-sky" {
		t.Errorf("ConfigDir should end in arena-sky, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// Only the working directory is under our control; skip if the user
	// has a real config installed.
	if _, err := os.Stat(filepath.Join(ConfigDir(), "config.yaml")); err == nil {
		t.Skip("user config present")
	}

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("sim:\n  day: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return f
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "no flags",
			verify: func(t *testing.T, cfg *Config) {
				def := Default()
				if cfg.Sim.Day != def.Sim.Day || cfg.Sim.Frames != def.Sim.Frames || cfg.Sky.StarDensity != def.Sky.StarDensity {
					t.Errorf("unset flags changed the config: %+v", cfg.Sim)
				}
			},
		},
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "assets flag",
			args: []string{"-assets", "/a, /b,"},
			verify: func(t *testing.T, cfg *Config) {
				if len(cfg.Assets.Dirs) != 2 || cfg.Assets.Dirs[0] != "/a" || cfg.Assets.Dirs[1] != "/b" {
					t.Errorf("expected [/a /b], got %v", cfg.Assets.Dirs)
				}
			},
		},
		{
			name: "scene flags",
			args: []string{"-stars", "1", "-day", "4", "-weather", "snow", "-frames", "0"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Sky.StarDensity != 1 {
					t.Errorf("expected density 1, got %d", cfg.Sky.StarDensity)
				}
				if cfg.Sim.Day != 4 || cfg.Sim.Weather != "snow" || cfg.Sim.Frames != 0 {
					t.Errorf("unexpected sim %+v", cfg.Sim)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			parseFlags(t, tt.args...).apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
sim:
  day: 9
  frames: 50
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(parseFlags(t, "-config", configPath, "-frames", "75"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Frames should be from flag (75), not file (50)
	if cfg.Sim.Frames != 75 {
		t.Errorf("expected 75 frames from flag, got %d", cfg.Sim.Frames)
	}

	// Day should be from file (9) since no flag override
	if cfg.Sim.Day != 9 {
		t.Errorf("expected day 9 from file, got %d", cfg.Sim.Day)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(parseFlags(t, "-config", "/dev/null", "-weather", "fog"))
	if err == nil {
		t.Error("expected invalid weather to be rejected")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Sim.Day = 31
	cfg.Sim.Location.Climate = "mountain"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.Sim.Day != 31 || loaded.Sim.Location.Climate != "mountain" {
		t.Errorf("round trip lost values: %+v", loaded.Sim)
	}
}
