package config

import (
	"flag"
	"strings"
)

// Flags are the command-line overrides. Zero values mean "not set".
type Flags struct {
	Config  string
	Debug   bool
	Assets  string
	Stars   int
	Day     int
	Weather string
	Frames  int
}

// RegisterFlags binds the override flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Assets, "assets", "", "Comma-separated asset directories")
	fs.IntVar(&f.Stars, "stars", -1, "Star density (0 classic, 1 moderate, 2 high)")
	fs.IntVar(&f.Day, "day", -1, "Day count")
	fs.StringVar(&f.Weather, "weather", "", "Weather (clear, overcast, rain, snow, ...)")
	fs.IntVar(&f.Frames, "frames", -1, "Frames to simulate, 0 runs until interrupted")
	return f
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.Config
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Assets != "" {
		cfg.Assets.Dirs = splitList(f.Assets)
	}
	if f.Stars >= 0 {
		cfg.Sky.StarDensity = f.Stars
	}
	if f.Day >= 0 {
		cfg.Sim.Day = f.Day
	}
	if f.Weather != "" {
		cfg.Sim.Weather = f.Weather
	}
	if f.Frames >= 0 {
		cfg.Sim.Frames = f.Frames
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
