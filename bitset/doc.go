// Package bitset provides a fixed-width set over a small integer universe.
//
// The bitset package backs the candidate domains and taken-sets of the match
// solver, where the universe is a roster index space of at most 64 elements.
//
// Mask is a value type (a single machine word); every operation returns a new
// Mask, so callers may freely share and copy sets without aliasing hazards.
// All operations are O(1) except Members, which is O(popcount).
//
// The 64-element cap is intentional: exhaustive matching enumeration is
// combinatorially infeasible long before a roster outgrows one word, so a
// multi-word vector would never be exercised.
package bitset
