// Package dice provides the single randomness source for the voyage
// simulator. Every subsystem that needs a roll takes a *Roller; seeding the
// roller makes a whole voyage reproducible.
package dice

import (
	"math/rand"
)

// Source yields uniform random integers. Implementations do not need to be
// safe for concurrent use; a voyage owns exactly one roller.
type Source interface {
	// Intn returns a uniform integer in [0, n). n must be > 0.
	Intn(n int) int
}

// Roller evaluates die rolls and dice expressions against a Source.
type Roller struct {
	src Source
}

// NewRoller creates a roller backed by math/rand seeded with seed.
func NewRoller(seed int64) *Roller {
	return &Roller{src: rand.New(rand.NewSource(seed))}
}

// NewRollerFromSource creates a roller over a caller-supplied source.
func NewRollerFromSource(src Source) *Roller {
	return &Roller{src: src}
}

// Die rolls a single die with the given number of sides, returning 1..sides.
func (r *Roller) Die(sides int) int {
	if sides <= 1 {
		return sides
	}
	return r.src.Intn(sides) + 1
}

// RollN rolls count dice with the given sides and returns the sum.
func (r *Roller) RollN(count, sides int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += r.Die(sides)
	}
	return total
}

// D20 rolls a twenty-sided die.
func (r *Roller) D20() int {
	return r.Die(20)
}

// Percent rolls d100.
func (r *Roller) Percent() int {
	return r.Die(100)
}

// Chance returns true with the given percent probability.
func (r *Roller) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.Percent() <= percent
}

// Between returns a uniform integer in [lo, hi].
func (r *Roller) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// scripted replays a fixed sequence of die faces, then falls back to the
// midpoint of the requested range. Used by tests to pin literal outcomes.
type scripted struct {
	faces []int
	pos   int
}

func (s *scripted) Intn(n int) int {
	if s.pos < len(s.faces) {
		face := s.faces[s.pos]
		s.pos++
		if face < 1 {
			face = 1
		}
		if face > n {
			face = n
		}
		return face - 1
	}
	return n / 2
}

// NewScriptedRoller returns a roller whose successive single-die rolls
// produce exactly the given faces. Each face is clamped to the die rolled.
func NewScriptedRoller(faces ...int) *Roller {
	return &Roller{src: &scripted{faces: faces}}
}
