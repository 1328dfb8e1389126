// Package seedrand provides the deterministic random primitives used by every
// selection algorithm in the engine: a stable string hash that turns composite
// keys into 32-bit seeds, and two small pseudo-random streams. Identical seeds
// always yield bit-identical sequences; this is the reproducibility contract
// the whole engine rests on, so none of this may be swapped for crypto/rand or
// math/rand.
package seedrand

// Hash folds a string into a uint32 seed using the FNV-1a step. It is
// order-sensitive and case-sensitive and never changes across processes.
func Hash(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// Stream is a deterministic generator of floats in [0,1).
type Stream struct {
	state uint32
	next  func(*Stream) uint32
}

// New returns a mulberry32 stream seeded with seed.
func New(seed uint32) *Stream {
	return &Stream{state: seed, next: mulberryStep}
}

// NewLCG returns a linear-congruential stream seeded with seed. The moodboard
// composer uses it for its per-section jitter draws.
func NewLCG(seed uint32) *Stream {
	return &Stream{state: seed, next: lcgStep}
}

// Float64 advances the stream and returns the next value in [0,1).
func (s *Stream) Float64() float64 {
	return float64(s.next(s)) / 4294967296.0
}

// Intn advances the stream and returns an integer in [0,n).
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float64() * float64(n))
}

func mulberryStep(s *Stream) uint32 {
	s.state += 0x6d2b79f5
	t := s.state
	r := (t ^ (t >> 15)) * (t | 1)
	r ^= r + (r^(r>>7))*(r|61)
	return r ^ (r >> 14)
}

func lcgStep(s *Stream) uint32 {
	s.state = s.state*1664525 + 1013904223
	return s.state
}

// Pick shuffles a copy of list with a mulberry32 stream seeded by seed
// (Fisher-Yates) and returns the first count elements. The input is never
// mutated and the result is fully determined by (list order, count, seed).
func Pick[T any](list []T, count int, seed uint32) []T {
	if count <= 0 || len(list) == 0 {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	Shuffle(out, New(seed))
	if count > len(out) {
		count = len(out)
	}
	return out[:count]
}

// Shuffle applies an in-place Fisher-Yates shuffle driven by stream.
func Shuffle[T any](list []T, stream *Stream) {
	for i := len(list) - 1; i > 0; i-- {
		j := stream.Intn(i + 1)
		list[i], list[j] = list[j], list[i]
	}
}
