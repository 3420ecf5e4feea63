// skytool is a CLI utility for inspecting generated distant skies.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/arena-sky/internal/assets"
	"github.com/Faultbox/arena-sky/internal/config"
	"github.com/Faultbox/arena-sky/internal/game/world"
	"github.com/Faultbox/arena-sky/internal/logger"
	"github.com/Faultbox/arena-sky/internal/sky"
	"github.com/Faultbox/arena-sky/internal/skydata"
)

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Faults are reported through the logger, so it exists before any command runs.
	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	command := os.Args[1]
	err := run(command, os.Args[2:])
	if errors.Is(err, errUsage) {
		printUsage()
	}
	if err != nil {
		logger.Error("skytool failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// run dispatches a single command.
func run(command string, args []string) error {
	switch command {
	case "gen", "g":
		return cmdGen(args)
	case "digest":
		return cmdDigest(args)
	case "dump":
		return cmdDump(args)
	case "inspect":
		return cmdInspect(args)
	case "density":
		return cmdDensity(args)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func printUsage() {
	fmt.Println(`skytool - distant sky inspection utility

Usage:
  skytool <command> [options]

Commands:
  gen [flags]                  Generate a sky and print its objects
  digest [flags]               Print the SHA-256 digest of a generated sky
  dump -o <file> [flags]       Write a zstd-compressed JSON snapshot
  inspect <file>               Summarize a snapshot written by dump
  density                      List star density settings

Scene flags (gen, digest, dump):
  -config, -assets, -stars, -day, -weather, -debug
  -synthetic                   Use placeholder images instead of game data

Examples:
  skytool gen -weather clear -day 3
  skytool digest -synthetic -stars 2
  skytool dump -o sky.json.zst -day 14
  skytool inspect sky.json.zst`)
}

// sceneOptions are the flags shared by the generating commands.
type sceneOptions struct {
	flags     *config.Flags
	synthetic *bool
}

func registerScene(fs *flag.FlagSet) sceneOptions {
	return sceneOptions{
		flags:     config.RegisterFlags(fs),
		synthetic: fs.Bool("synthetic", false, "Use placeholder images instead of game data"),
	}
}

// generate loads config and builds the sky it describes.
func (o sceneOptions) generate() (*sky.DistantSky, *config.Config, error) {
	cfg, err := config.Load(o.flags)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	level := "warn"
	if o.flags.Debug {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.LogFile); err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	table := skydata.Default()
	if cfg.Sky.DataFile != "" {
		if table, err = skydata.Load(cfg.Sky.DataFile); err != nil {
			return nil, nil, err
		}
	}

	var loader sky.Assets = assets.Synthetic{}
	if !*o.synthetic {
		m := assets.NewManager()
		for _, dir := range cfg.Assets.Dirs {
			if err := m.AddDir(dir); err != nil {
				return nil, nil, fmt.Errorf("%w (use -synthetic to run without game data)", err)
			}
		}
		m.SetPaletteName(cfg.Assets.Palette)
		loader = m
	}

	loc, province, err := cfg.Sim.Location.Definitions()
	if err != nil {
		return nil, nil, fmt.Errorf("location: %w", err)
	}
	weather, err := world.ParseWeather(cfg.Sim.Weather)
	if err != nil {
		return nil, nil, err
	}
	starCount, err := sky.StarCountFromDensity(cfg.Sky.StarDensity)
	if err != nil {
		return nil, nil, err
	}

	s, err := sky.Generate(sky.Params{
		Location:  loc,
		Province:  province,
		Weather:   weather,
		Day:       cfg.Sim.Day,
		StarCount: starCount,
	}, table, loader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating sky: %w", err)
	}
	logger.Debug("sky generated", zap.String("digest", s.Digest()))
	return s, cfg, nil
}

// parseFlags treats -h as success.
func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", errUsage, err)
	}
	return true, nil
}

func cmdGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	scene := registerScene(fs)
	maxStars := fs.Int("n", 20, "Limit star rows (0 = all)")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	s, cfg, err := scene.generate()
	if err != nil {
		return err
	}
	fmt.Println(renderSky(s, cfg, *maxStars))
	return nil
}

func cmdDigest(args []string) error {
	fs := flag.NewFlagSet("digest", flag.ContinueOnError)
	scene := registerScene(fs)
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	s, _, err := scene.generate()
	if err != nil {
		return err
	}
	fmt.Println(s.Digest())
	return nil
}

func cmdDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	scene := registerScene(fs)
	output := fs.String("o", "", "Output file (required)")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	if *output == "" {
		return fmt.Errorf("%w: dump needs -o <file>", errUsage)
	}

	s, _, err := scene.generate()
	if err != nil {
		return err
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := s.WriteSnapshot(f); err != nil {
		f.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	info, err := os.Stat(*output)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d bytes, digest %s)\n", *output, info.Size(), s.Digest())
	return nil
}

func cmdInspect(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: inspect needs a snapshot file", errUsage)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	snap, err := sky.ReadSnapshot(f)
	if err != nil {
		return err
	}
	fmt.Println(renderSnapshot(args[0], snap))
	return nil
}

func cmdDensity(args []string) error {
	fmt.Println(renderDensities())
	return nil
}
