package sky

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	gomath "math"

	"github.com/Faultbox/arena-sky/pkg/math"
)

// Digest returns a SHA-256 over every generated collection and texture.
// Two skies generated from the same inputs have the same digest.
func (s *DistantSky) Digest() string {
	h := sha256.New()
	var tmp [8]byte

	digestWriteInt(h, &tmp, s.store.TextureCount())
	for _, t := range s.store.textures {
		digestWriteString(h, &tmp, t.Identifier)
		digestWriteBuffer(h, &tmp, t.Pixels)
	}

	digestWriteInt(h, &tmp, s.store.TextureSetCount())
	for _, set := range s.store.sets {
		digestWriteString(h, &tmp, set.Identifier)
		digestWriteInt(h, &tmp, len(set.Frames))
		for _, f := range set.Frames {
			digestWriteBuffer(h, &tmp, f)
		}
	}

	digestWriteInt(h, &tmp, len(s.landObjects))
	for _, o := range s.landObjects {
		digestWriteInt(h, &tmp, o.TextureIndex)
		digestWriteFloat(h, &tmp, o.AngleRadians)
	}

	digestWriteInt(h, &tmp, len(s.animLandObjects))
	for _, o := range s.animLandObjects {
		digestWriteInt(h, &tmp, o.TextureSetIndex)
		digestWriteFloat(h, &tmp, o.AngleRadians)
		digestWriteFloat(h, &tmp, o.targetFrameTime)
		digestWriteFloat(h, &tmp, o.currentFrameTime)
		digestWriteInt(h, &tmp, o.frameIndex)
	}

	digestWriteInt(h, &tmp, len(s.airObjects))
	for _, o := range s.airObjects {
		digestWriteInt(h, &tmp, o.TextureIndex)
		digestWriteFloat(h, &tmp, o.AngleRadians)
		digestWriteFloat(h, &tmp, o.Height)
	}

	digestWriteInt(h, &tmp, len(s.moonObjects))
	for _, o := range s.moonObjects {
		digestWriteInt(h, &tmp, o.TextureIndex)
		digestWriteFloat(h, &tmp, o.PhasePercent)
		digestWriteInt(h, &tmp, int(o.Kind))
	}

	digestWriteInt(h, &tmp, len(s.starObjects))
	for _, o := range s.starObjects {
		digestWriteInt(h, &tmp, int(o.kind))
		digestWriteVec3(h, &tmp, o.direction)
		if o.kind == StarSmall {
			digestWriteInt(h, &tmp, int(o.small.Color))
		} else {
			digestWriteInt(h, &tmp, o.large.TextureIndex)
		}
	}

	if s.hasSun {
		h.Write([]byte{1})
		digestWriteInt(h, &tmp, s.sunTextureIndex)
	} else {
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}

func digestWriteInt(h hash.Hash, tmp *[8]byte, v int) {
	binary.LittleEndian.PutUint64(tmp[:], uint64(int64(v)))
	h.Write(tmp[:])
}

func digestWriteFloat(h hash.Hash, tmp *[8]byte, v float64) {
	binary.LittleEndian.PutUint64(tmp[:], gomath.Float64bits(v))
	h.Write(tmp[:])
}

func digestWriteVec3(h hash.Hash, tmp *[8]byte, v math.Vec3) {
	digestWriteFloat(h, tmp, v.X)
	digestWriteFloat(h, tmp, v.Y)
	digestWriteFloat(h, tmp, v.Z)
}

func digestWriteString(h hash.Hash, tmp *[8]byte, s string) {
	digestWriteInt(h, tmp, len(s))
	h.Write([]byte(s))
}

func digestWriteBuffer(h hash.Hash, tmp *[8]byte, b Buffer2D) {
	digestWriteInt(h, tmp, b.Width)
	digestWriteInt(h, tmp, b.Height)
	h.Write(b.Pixels)
}
