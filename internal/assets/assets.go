// Package assets loads sky images and palettes from directories of
// extracted game data, with caching.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/arena-sky/internal/logger"
	"github.com/Faultbox/arena-sky/internal/sky"
	"github.com/Faultbox/arena-sky/pkg/formats"
)

// DefaultPaletteName is the palette used for star colors.
const DefaultPaletteName = "PAL.COL"

var (
	ErrNotFound        = errors.New("asset not found")
	ErrNotPaletted     = errors.New("image is not palette-indexed")
	ErrUnknownEncoding = errors.New("unknown image encoding")
)

var (
	pngSignature = []byte("\x89PNG\r\n\x1a\n")
	gifSignature = []byte("GIF8")
)

var _ sky.Assets = (*Manager)(nil)

// Manager loads assets from one or more directories. Directories are searched
// in reverse order (last added = highest priority).
type Manager struct {
	dirs        []string
	paletteName string
	cache       *Cache

	mu      sync.RWMutex
	palette *formats.Palette
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		paletteName: DefaultPaletteName,
		cache:       NewCache(),
	}
}

// AddDir adds a directory of extracted assets.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("opening asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("opening asset dir %s: not a directory", dir)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()

	return nil
}

// SetPaletteName changes the palette file used by LoadDefaultPalette.
func (m *Manager) SetPaletteName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paletteName = name
	m.palette = nil
}

// Load reads a file by name. Names match case-insensitively.
func (m *Manager) Load(name string) ([]byte, error) {
	key := sky.NormalizeIdentifier(name)
	if data, ok := m.cache.Get(key); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		path, ok := findFile(m.dirs[i], name)
		if !ok {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		m.cache.Set(key, data)
		return data, nil
	}

	logger.Debug("asset not found", zap.String("name", name), zap.Int("dirs", len(m.dirs)))
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// LoadImage decodes a single image. Multi-frame files yield their first frame.
func (m *Manager) LoadImage(id string) (sky.Buffer2D, error) {
	frames, err := m.LoadImageFrames(id)
	if err != nil {
		return sky.Buffer2D{}, err
	}
	return frames[0], nil
}

// LoadImageFrames decodes every frame of an image. GIF files give one frame
// per image; PNG and IMG files give a single frame.
func (m *Manager) LoadImageFrames(id string) ([]sky.Buffer2D, error) {
	data, err := m.Load(id)
	if err != nil {
		return nil, err
	}

	frames, err := decodeFrames(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", id, err)
	}
	return frames, nil
}

// LoadDefaultPalette loads and caches the shared COL palette.
func (m *Manager) LoadDefaultPalette() (*formats.Palette, error) {
	m.mu.RLock()
	p, name := m.palette, m.paletteName
	m.mu.RUnlock()
	if p != nil {
		return p, nil
	}

	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	p, err = formats.ParseCOL(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	m.mu.Lock()
	m.palette = p
	m.mu.Unlock()
	return p, nil
}

// CacheStats returns the raw file cache hit and miss counts.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// Close forgets all directories and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dirs = nil
	m.palette = nil
	m.cache.Clear()
}

// findFile looks for name in dir, first as given, then ignoring case.
func findFile(dir, name string) (string, bool) {
	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(e.Name(), name) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

func decodeFrames(data []byte) ([]sky.Buffer2D, error) {
	switch {
	case bytes.HasPrefix(data, gifSignature):
		return decodeGIF(data)
	case bytes.HasPrefix(data, pngSignature):
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		paletted, ok := img.(*image.Paletted)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrNotPaletted, img)
		}
		return []sky.Buffer2D{bufferFromPaletted(paletted, paletted.Bounds())}, nil
	default:
		img, err := formats.ParseIMG(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownEncoding, err)
		}
		return []sky.Buffer2D{{Width: img.Width, Height: img.Height, Pixels: img.Pixels}}, nil
	}
}

// decodeGIF returns each GIF frame on the full logical screen.
func decodeGIF(data []byte) ([]sky.Buffer2D, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("%w: gif has no frames", ErrUnknownEncoding)
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		screen = g.Image[0].Bounds()
	}

	frames := make([]sky.Buffer2D, 0, len(g.Image))
	for _, img := range g.Image {
		frames = append(frames, bufferFromPaletted(img, screen))
	}
	return frames, nil
}

// bufferFromPaletted copies the indices of img into a buffer covering area.
// Pixels outside img stay at index 0.
func bufferFromPaletted(img *image.Paletted, area image.Rectangle) sky.Buffer2D {
	buf := sky.NewBuffer2D(area.Dx(), area.Dy())
	r := img.Bounds().Intersect(area)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			buf.Pixels[(y-area.Min.Y)*buf.Width+(x-area.Min.X)] = img.ColorIndexAt(x, y)
		}
	}
	return buf
}

// Cache is a simple in-memory cache for loaded files.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached items.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
