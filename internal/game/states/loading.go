package states

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/arena-sky/internal/game/world"
	"github.com/Faultbox/arena-sky/internal/logger"
	"github.com/Faultbox/arena-sky/internal/sky"
	"github.com/Faultbox/arena-sky/internal/skydata"
)

// ErrNoLocation is returned when loading starts before a location is entered.
var ErrNoLocation = errors.New("no location entered")

// SkyContext is what the states need to build skies.
type SkyContext struct {
	World     *world.Manager
	Table     *skydata.Table
	Assets    sky.Assets
	StarCount int

	// RenderSky, if set, is called by the explore state every frame.
	RenderSky func(s *sky.DistantSky) error
}

// generate builds the sky for the current scene and clears the world's
// dirty flag.
func (c *SkyContext) generate() (*sky.DistantSky, error) {
	if !c.World.Loaded() {
		return nil, ErrNoLocation
	}
	c.World.TakeDirty()

	scene := c.World.Current()
	return sky.Generate(sky.Params{
		Location:  scene.Location,
		Province:  scene.Province,
		Weather:   scene.Weather,
		Day:       scene.Day,
		StarCount: c.StarCount,
	}, c.Table, c.Assets)
}

// LoadingState generates the first sky, then hands over to ExploreState.
type LoadingState struct {
	ctx     *SkyContext
	manager *Manager

	StatusMsg  string
	ErrorMsg   string
	IsComplete bool

	sky       *sky.DistantSky
	startTime time.Time
}

// NewLoadingState creates a new loading state.
func NewLoadingState(ctx *SkyContext, manager *Manager) *LoadingState {
	return &LoadingState{
		ctx:       ctx,
		manager:   manager,
		StatusMsg: "Generating sky...",
	}
}

// Enter is called when entering this state.
func (s *LoadingState) Enter() error {
	s.startTime = time.Now()
	s.ErrorMsg = ""
	s.IsComplete = false

	scene := s.ctx.World.Current()
	logger.Info("entering LoadingState",
		zap.String("location", scene.Location.Name),
		zap.Stringer("weather", scene.Weather),
		zap.Int("day", scene.Day))
	return nil
}

// Exit is called when leaving this state.
func (s *LoadingState) Exit() error {
	return nil
}

// Update generates the sky on the first frame and schedules the explore state.
func (s *LoadingState) Update(dt float64) error {
	if s.IsComplete {
		return nil
	}

	generated, err := s.ctx.generate()
	if err != nil {
		s.ErrorMsg = fmt.Sprintf("Sky generation failed: %v", err)
		return fmt.Errorf("loading sky: %w", err)
	}

	s.sky = generated
	s.IsComplete = true
	s.StatusMsg = "Sky ready"

	logger.Info("sky loaded",
		zap.Duration("elapsed", time.Since(s.startTime)),
		zap.String("digest", generated.Digest()))

	s.manager.Change(NewExploreState(s.ctx, generated))
	return nil
}

// Render is called every frame to draw the state.
func (s *LoadingState) Render() error {
	return nil
}

// HandleInput applies scene events so they are part of the first sky.
func (s *LoadingState) HandleInput(event any) error {
	applyEvent(s.ctx.World, event)
	return nil
}

// Sky returns the generated sky, or nil before loading completes.
func (s *LoadingState) Sky() *sky.DistantSky {
	return s.sky
}
