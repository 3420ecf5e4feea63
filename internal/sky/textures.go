package sky

import (
	"fmt"
	"strings"
)

// Buffer2D is a width x height grid of palette indices, row-major.
type Buffer2D struct {
	Width  int
	Height int
	Pixels []uint8
}

// NewBuffer2D allocates a zeroed buffer.
func NewBuffer2D(width, height int) Buffer2D {
	return Buffer2D{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height),
	}
}

// At returns the palette index at (x, y).
func (b Buffer2D) At(x, y int) uint8 {
	return b.Pixels[y*b.Width+x]
}

// TextureEntry is a single image owned by the store.
type TextureEntry struct {
	Identifier string
	Pixels     Buffer2D
}

// TextureSetEntry is an animation loaded as a unit.
type TextureSetEntry struct {
	Identifier string
	Frames     []Buffer2D
}

// TextureStore deduplicates images by identifier. Indices are assigned in
// insertion order and never change or get reused.
type TextureStore struct {
	textures     []TextureEntry
	textureIndex map[string]int

	sets     []TextureSetEntry
	setIndex map[string]int
}

// NewTextureStore creates an empty store.
func NewTextureStore() *TextureStore {
	return &TextureStore{
		textureIndex: make(map[string]int),
		setIndex:     make(map[string]int),
	}
}

// NormalizeIdentifier upper-cases a filename the way the legacy data expects.
func NormalizeIdentifier(id string) string {
	return strings.ToUpper(id)
}

// LookupTexture returns the index for id without creating an entry.
func (s *TextureStore) LookupTexture(id string) (int, bool) {
	i, ok := s.textureIndex[NormalizeIdentifier(id)]
	return i, ok
}

// LookupTextureSet returns the set index for id without creating an entry.
func (s *TextureStore) LookupTextureSet(id string) (int, bool) {
	i, ok := s.setIndex[NormalizeIdentifier(id)]
	return i, ok
}

// TextureIndex returns the index for id, calling load once to create the
// entry if it does not exist yet. Load errors leave the store unchanged.
func (s *TextureStore) TextureIndex(id string, load func(id string) (Buffer2D, error)) (int, error) {
	id = NormalizeIdentifier(id)
	if i, ok := s.textureIndex[id]; ok {
		return i, nil
	}

	pixels, err := load(id)
	if err != nil {
		return 0, fmt.Errorf("loading texture %s: %w", id, err)
	}

	s.textures = append(s.textures, TextureEntry{Identifier: id, Pixels: pixels})
	i := len(s.textures) - 1
	s.textureIndex[id] = i
	return i, nil
}

// TextureSetIndex is TextureIndex for multi-frame entries.
func (s *TextureStore) TextureSetIndex(id string, load func(id string) ([]Buffer2D, error)) (int, error) {
	id = NormalizeIdentifier(id)
	if i, ok := s.setIndex[id]; ok {
		return i, nil
	}

	frames, err := load(id)
	if err != nil {
		return 0, fmt.Errorf("loading texture set %s: %w", id, err)
	}

	s.sets = append(s.sets, TextureSetEntry{Identifier: id, Frames: frames})
	i := len(s.sets) - 1
	s.setIndex[id] = i
	return i, nil
}

// TextureCount returns the number of single-image entries.
func (s *TextureStore) TextureCount() int {
	return len(s.textures)
}

// TextureSetCount returns the number of multi-frame entries.
func (s *TextureStore) TextureSetCount() int {
	return len(s.sets)
}

// Texture returns the entry at index i. Panics if i is out of range.
func (s *TextureStore) Texture(i int) TextureEntry {
	checkIndex("texture", i, len(s.textures))
	return s.textures[i]
}

// TextureSet returns the set entry at index i. Panics if i is out of range.
func (s *TextureStore) TextureSet(i int) TextureSetEntry {
	checkIndex("texture set", i, len(s.sets))
	return s.sets[i]
}

func checkIndex(what string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("sky: %s index %d out of range [0, %d)", what, i, n))
	}
}
