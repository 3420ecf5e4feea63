package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/arena-sky/internal/game/world"
	"github.com/Faultbox/arena-sky/internal/logger"
	"github.com/Faultbox/arena-sky/internal/sky"
)

// Scene events accepted by HandleInput.
type (
	WeatherChanged struct {
		Weather world.WeatherType
	}
	DayChanged struct {
		Day int
	}
	DayAdvanced struct{}
	LocationEntered struct {
		Location world.LocationDefinition
		Province world.ProvinceDefinition
	}
)

// ExploreState animates the sky and regenerates it when the scene changes.
type ExploreState struct {
	ctx *SkyContext
	sky *sky.DistantSky

	frames      int
	regenerated int
}

// NewExploreState creates an explore state around an already generated sky.
func NewExploreState(ctx *SkyContext, s *sky.DistantSky) *ExploreState {
	return &ExploreState{ctx: ctx, sky: s}
}

// Enter is called when entering this state.
func (s *ExploreState) Enter() error {
	logger.Info("entering ExploreState",
		zap.Int("land", s.sky.LandObjectCount()),
		zap.Int("stars", s.sky.StarObjectCount()))
	return nil
}

// Exit is called when leaving this state.
func (s *ExploreState) Exit() error {
	return nil
}

// Update regenerates the sky if the scene changed, then advances animations.
func (s *ExploreState) Update(dt float64) error {
	if s.ctx.World.TakeDirty() {
		if err := s.regenerate(); err != nil {
			return err
		}
	}

	s.sky.Tick(dt)
	s.frames++
	return nil
}

func (s *ExploreState) regenerate() error {
	generated, err := s.ctx.generate()
	if err != nil {
		return fmt.Errorf("regenerating sky: %w", err)
	}

	scene := s.ctx.World.Current()
	logger.Info("sky regenerated",
		zap.String("location", scene.Location.Name),
		zap.Stringer("weather", scene.Weather),
		zap.Int("day", scene.Day),
		zap.Int("frame", s.frames))

	s.sky = generated
	s.regenerated++
	return nil
}

// Render hands the sky to the render callback, if any.
func (s *ExploreState) Render() error {
	if s.ctx.RenderSky == nil {
		return nil
	}
	return s.ctx.RenderSky(s.sky)
}

// HandleInput applies scene events. The sky is rebuilt on the next Update.
func (s *ExploreState) HandleInput(event any) error {
	applyEvent(s.ctx.World, event)
	return nil
}

// Sky returns the current sky.
func (s *ExploreState) Sky() *sky.DistantSky {
	return s.sky
}

// Frames returns the number of frames updated.
func (s *ExploreState) Frames() int {
	return s.frames
}

// Regenerations returns how often the sky was rebuilt since entering.
func (s *ExploreState) Regenerations() int {
	return s.regenerated
}

func applyEvent(w *world.Manager, event any) {
	switch e := event.(type) {
	case WeatherChanged:
		w.SetWeather(e.Weather)
	case DayChanged:
		w.SetDay(e.Day)
	case DayAdvanced:
		w.AdvanceDay()
	case LocationEntered:
		w.EnterLocation(e.Location, e.Province)
	default:
		logger.Debug("ignoring event", zap.String("type", fmt.Sprintf("%T", event)))
	}
}
