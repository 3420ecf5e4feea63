// Package random provides the deterministic sequence source used by sky
// generation. The draw sequence for a given seed must match the legacy
// game exactly, so callers treat every Next call as part of a protocol.
package random

// Source is a reseedable deterministic sequence of 16-bit values.
type Source interface {
	// Seed replaces the generator state.
	Seed(seed uint32)

	// Next advances the generator and returns the next value.
	Next() uint16

	// CurrentSeed returns the current generator state. Reseeding with it
	// continues the sequence from the same point.
	CurrentSeed() uint32
}

// multiplier is the legacy generator's state multiplier.
const multiplier = 7143469

// DefaultSeed is the state used by NewArena when no seed is known.
const DefaultSeed uint32 = 12345

// Arena is the legacy 32-bit multiplicative generator.
type Arena struct {
	value uint32
}

// NewArena creates a generator with the given seed.
func NewArena(seed uint32) *Arena {
	return &Arena{value: seed}
}

// Seed implements Source.
func (r *Arena) Seed(seed uint32) {
	r.value = seed
}

// Next implements Source. The state wraps modulo 2^32 and the high half
// of the new state is returned.
func (r *Arena) Next() uint16 {
	r.value *= multiplier
	return uint16(r.value >> 16)
}

// CurrentSeed implements Source.
func (r *Arena) CurrentSeed() uint32 {
	return r.value
}
