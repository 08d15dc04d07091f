package bitset

import (
	"errors"
	"math/bits"
)

// MaxUniverse is the largest supported universe size.
const MaxUniverse = 64

// ErrUniverseTooLarge is returned when a universe exceeds MaxUniverse.
var ErrUniverseTooLarge = errors.New("bitset: universe exceeds 64 elements")

// Mask is a set over the universe {0, …, n−1} for some n ≤ MaxUniverse.
// The zero value is the empty set.
type Mask uint64

// Full returns the set {0, …, n−1}.
//
// Contract: 0 ≤ n ≤ MaxUniverse. The error path exists so that callers
// validating external input (roster sizes) get a sentinel, not a panic.
func Full(n int) (Mask, error) {
	if n < 0 || n > MaxUniverse {
		return 0, ErrUniverseTooLarge
	}
	if n == MaxUniverse {
		return Mask(^uint64(0)), nil
	}

	return Mask((uint64(1) << uint(n)) - 1), nil
}

// Single returns the set {j}.
func Single(j int) Mask { return Mask(uint64(1) << uint(j)) }

// Has reports whether j is in the set.
func (m Mask) Has(j int) bool { return m&Single(j) != 0 }

// With returns m ∪ {j}.
func (m Mask) With(j int) Mask { return m | Single(j) }

// Without returns m ∖ {j}.
func (m Mask) Without(j int) Mask { return m &^ Single(j) }

// Intersect returns m ∩ o.
func (m Mask) Intersect(o Mask) Mask { return m & o }

// Diff returns m ∖ o.
func (m Mask) Diff(o Mask) Mask { return m &^ o }

// Count returns |m|.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Empty reports whether the set has no elements.
func (m Mask) Empty() bool { return m == 0 }

// Members returns the elements of m in ascending order.
func (m Mask) Members() []int {
	out := make([]int, 0, m.Count())
	for w := uint64(m); w != 0; w &= w - 1 {
		out = append(out, bits.TrailingZeros64(w))
	}

	return out
}
