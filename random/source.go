// Package random provides the random sources a snake game draws food
// offsets from.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// Source is a uniform source backed by a seeded PCG generator.
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// New returns a uniform source. A zero seed picks one from crypto/rand,
// falling back to the clock.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = reseed()
	}
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed in use, so that a game can be replayed.
func (s *Source) Seed() uint64 {
	return s.seed
}

func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

func reseed() uint64 {
	var b [8]byte
	var seed uint64
	_, err := crand.Reader.Read(b[:])
	if err != nil {
		seed = uint64(time.Now().UTC().UnixNano())
	} else {
		seed = binary.LittleEndian.Uint64(b[:])
	}
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Sequence replays a fixed list of draws, cycling when it runs out. Each
// draw is reduced into [0,n).
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
