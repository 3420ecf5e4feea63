package sky

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Snapshot is a JSON-friendly view of a generated sky for debugging and
// diffing between runs. Pixel data is left out.
type Snapshot struct {
	Digest       string             `json:"digest"`
	Textures     []string           `json:"textures"`
	TextureSets  []TextureSetInfo   `json:"texture_sets"`
	Land         []LandObject       `json:"land"`
	AnimatedLand []AnimatedLandInfo `json:"animated_land"`
	Air          []AirObject        `json:"air"`
	Moons        []MoonInfo         `json:"moons"`
	Stars        []StarInfo         `json:"stars"`
	SunTexture   *int               `json:"sun_texture,omitempty"`
}

// TextureSetInfo names a texture set and its frame count.
type TextureSetInfo struct {
	Identifier string `json:"identifier"`
	Frames     int    `json:"frames"`
}

// AnimatedLandInfo is the snapshot form of an AnimatedLandObject.
type AnimatedLandInfo struct {
	TextureSet   int     `json:"texture_set"`
	AngleRadians float64 `json:"angle_radians"`
	FrameTime    float64 `json:"frame_time"`
	FrameIndex   int     `json:"frame_index"`
}

// MoonInfo is the snapshot form of a MoonObject.
type MoonInfo struct {
	Texture      int     `json:"texture"`
	PhasePercent float64 `json:"phase_percent"`
	Kind         string  `json:"kind"`
}

// StarInfo is the snapshot form of a StarObject.
type StarInfo struct {
	Kind      string     `json:"kind"`
	Direction [3]float64 `json:"direction"`
	Color     *uint32    `json:"color,omitempty"`
	Texture   *int       `json:"texture,omitempty"`
}

// Snapshot captures the current state of the sky.
func (s *DistantSky) Snapshot() Snapshot {
	snap := Snapshot{
		Digest: s.Digest(),
		Land:   append([]LandObject(nil), s.landObjects...),
		Air:    append([]AirObject(nil), s.airObjects...),
	}

	for _, t := range s.store.textures {
		snap.Textures = append(snap.Textures, t.Identifier)
	}
	for _, set := range s.store.sets {
		snap.TextureSets = append(snap.TextureSets, TextureSetInfo{Identifier: set.Identifier, Frames: len(set.Frames)})
	}
	for _, a := range s.animLandObjects {
		snap.AnimatedLand = append(snap.AnimatedLand, AnimatedLandInfo{
			TextureSet:   a.TextureSetIndex,
			AngleRadians: a.AngleRadians,
			FrameTime:    a.targetFrameTime,
			FrameIndex:   a.frameIndex,
		})
	}
	for _, m := range s.moonObjects {
		snap.Moons = append(snap.Moons, MoonInfo{Texture: m.TextureIndex, PhasePercent: m.PhasePercent, Kind: m.Kind.String()})
	}
	for _, star := range s.starObjects {
		d := star.direction
		info := StarInfo{Kind: star.kind.String(), Direction: [3]float64{d.X, d.Y, d.Z}}
		if star.kind == StarSmall {
			c := star.small.Color
			info.Color = &c
		} else {
			t := star.large.TextureIndex
			info.Texture = &t
		}
		snap.Stars = append(snap.Stars, info)
	}
	if s.hasSun {
		sun := s.sunTextureIndex
		snap.SunTexture = &sun
	}

	return snap
}

// WriteSnapshot writes the snapshot as zstd-compressed JSON.
func (s *DistantSky) WriteSnapshot(w io.Writer) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	if err := json.NewEncoder(bw).Encode(s.Snapshot()); err != nil {
		enc.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot

	dec, err := zstd.NewReader(r)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	if err := json.NewDecoder(bufio.NewReader(dec)).Decode(&snap); err != nil {
		return snap, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}
