package pipeline

import (
	"encoding/binary"
	"hash/fnv"
)

// subSeed derives the per-method seed from the run seed and the method ID.
// FNV-1a over the little-endian seed bytes plus the ID keeps the derivation
// stable across platforms and releases.
func subSeed(seed int64, methodID string) uint64 {
	h := fnv.New64a()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	_, _ = h.Write(b[:])
	_, _ = h.Write([]byte(methodID))
	return h.Sum64()
}

// stream is a splitmix64 sequence keyed on (subSeed, candidate index). Every
// candidate gets its own stream, so parameter sampling stays reproducible no
// matter how candidates are scheduled or parallelized.
type stream struct{ state uint64 }

func newStream(sub uint64, index int) *stream {
	return &stream{state: sub + uint64(index+1)*0x9E3779B97F4A7C15}
}

func (s *stream) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// float returns a uniform draw in [0,1).
func (s *stream) float() float64 {
	return float64(s.next()>>11) / (1 << 53)
}
