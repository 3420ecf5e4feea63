// Package game implements the simulator loop around the state manager.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/arena-sky/internal/assets"
	"github.com/Faultbox/arena-sky/internal/config"
	"github.com/Faultbox/arena-sky/internal/game/states"
	"github.com/Faultbox/arena-sky/internal/game/world"
	"github.com/Faultbox/arena-sky/internal/logger"
	"github.com/Faultbox/arena-sky/internal/sky"
	"github.com/Faultbox/arena-sky/internal/skydata"
)

// Game is the main simulator instance.
type Game struct {
	cfg     *config.Config
	world   *world.Manager
	states  *states.Manager
	skyCtx  *states.SkyContext
	manager *assets.Manager // nil when assets were supplied by the caller

	frames int
}

// New creates a simulator reading assets from the configured directories.
func New(cfg *config.Config) (*Game, error) {
	m := assets.NewManager()
	for _, dir := range cfg.Assets.Dirs {
		if err := m.AddDir(dir); err != nil {
			return nil, err
		}
	}
	if cfg.Assets.Palette != "" {
		m.SetPaletteName(cfg.Assets.Palette)
	}

	g, err := NewWithAssets(cfg, m)
	if err != nil {
		m.Close()
		return nil, err
	}
	g.manager = m
	return g, nil
}

// NewWithAssets creates a simulator using the given asset loader.
func NewWithAssets(cfg *config.Config, a sky.Assets) (*Game, error) {
	logger.Info("initializing simulator",
		zap.String("location", cfg.Sim.Location.Name),
		zap.String("weather", cfg.Sim.Weather),
		zap.Int("day", cfg.Sim.Day),
		zap.Int("starDensity", cfg.Sky.StarDensity))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	table := skydata.Default()
	if cfg.Sky.DataFile != "" {
		var err error
		if table, err = skydata.Load(cfg.Sky.DataFile); err != nil {
			return nil, err
		}
	}

	starCount, err := sky.StarCountFromDensity(cfg.Sky.StarDensity)
	if err != nil {
		return nil, err
	}

	loc, province, err := cfg.Sim.Location.Definitions()
	if err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}
	weather, err := world.ParseWeather(cfg.Sim.Weather)
	if err != nil {
		return nil, err
	}

	w := world.NewManager()
	w.EnterLocation(loc, province)
	w.SetWeather(weather)
	w.SetDay(cfg.Sim.Day)

	g := &Game{
		cfg:    cfg,
		world:  w,
		states: states.NewManager(),
		skyCtx: &states.SkyContext{
			World:     w,
			Table:     table,
			Assets:    a,
			StarCount: starCount,
		},
	}
	g.skyCtx.RenderSky = g.renderSky
	g.states.Change(states.NewLoadingState(g.skyCtx, g.states))

	logger.Info("simulator initialized")
	return g, nil
}

// Run runs the loop until the configured frame count is reached or ctx is
// cancelled. With no frame limit, frames are paced in real time.
func (g *Game) Run(ctx context.Context) error {
	dt := 1.0 / float64(g.cfg.Sim.FrameRate)
	limit := g.cfg.Sim.Frames

	var tick <-chan time.Time
	if limit == 0 {
		ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}

	logger.Info("starting simulator loop", zap.Int("frames", limit), zap.Float64("dt", dt))

	for limit == 0 || g.frames < limit {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		if dayFrames := g.cfg.Sim.DayFrames; dayFrames > 0 && g.frames > 0 && g.frames%dayFrames == 0 {
			if err := g.states.HandleInput(states.DayAdvanced{}); err != nil {
				return err
			}
		}

		if err := g.update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.frames++
	}

	return nil
}

// HandleInput forwards a scene event to the current state.
func (g *Game) HandleInput(event any) error {
	return g.states.HandleInput(event)
}

// Frames returns the number of frames run.
func (g *Game) Frames() int {
	return g.frames
}

// World returns the scene manager.
func (g *Game) World() *world.Manager {
	return g.world
}

// Sky returns the current sky, or nil before the first frame.
func (g *Game) Sky() *sky.DistantSky {
	switch s := g.states.Current().(type) {
	case *states.ExploreState:
		return s.Sky()
	case *states.LoadingState:
		return s.Sky()
	default:
		return nil
	}
}

// Close releases resources.
func (g *Game) Close() {
	logger.Info("closing simulator", zap.Int("frames", g.frames))
	if g.manager != nil {
		hits, misses := g.manager.CacheStats()
		logger.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
		g.manager.Close()
	}
}

func (g *Game) update(dt float64) error {
	return g.states.Update(dt)
}

func (g *Game) render() error {
	return g.states.Render()
}

// renderSky logs the animation state once per simulated second.
func (g *Game) renderSky(s *sky.DistantSky) error {
	if g.frames%g.cfg.Sim.FrameRate != 0 {
		return nil
	}

	fields := []zap.Field{
		zap.Int("frame", g.frames),
		zap.Int("day", g.world.Current().Day),
	}
	if s.AnimatedLandObjectCount() > 0 {
		fields = append(fields, zap.Int("landFrame", s.AnimatedLandObject(0).FrameIndex()))
	}
	logger.Debug("sky frame", fields...)
	return nil
}
