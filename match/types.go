package match

import "github.com/katalvlaran/matchprob/bitset"

// Round is one normalized ceremony constraint: per-man guess masks plus the
// exact number of guessed pairs that coincide with the true matching.
type Round struct {
	// rows[i] holds the women guessed for man i (bit j set ⇔ guess[i][j]==1).
	rows []bitset.Mask
	// beams is the exact required-correct count in [0, n].
	beams int
}

// Beams returns the round's exact required-correct count.
func (r Round) Beams() int { return r.beams }

// Guessed reports whether the round guessed man i with woman j.
func (r Round) Guessed(i, j int) bool { return r.rows[i].Has(j) }

// Problem is a validated, immutable constraint model. It can only be
// produced by Build (or derived via WithoutRounds), so Enumerate never has
// to re-validate its invariants: rosters are equal-length and duplicate-free,
// every round is n×n with beams in [0, n], forced pairs are injective and lie
// inside their (collapsed) domains, and no domain is empty.
type Problem struct {
	men    []string
	women  []string
	rounds []Round
	// allowed[i] is man i's candidate domain after exclusions and forced-pair
	// collapsing.
	allowed []bitset.Mask
	// forced maps man index → woman index for truth-booth matches.
	forced map[int]int
}

// Size returns the roster length n.
func (p *Problem) Size() int { return len(p.men) }

// Men returns a copy of the left roster in index order.
func (p *Problem) Men() []string { return append([]string(nil), p.men...) }

// Women returns a copy of the right roster in index order.
func (p *Problem) Women() []string { return append([]string(nil), p.women...) }

// Rounds returns the number of round constraints.
func (p *Problem) Rounds() int { return len(p.rounds) }

// Forced returns a copy of the forced man→woman assignments.
func (p *Problem) Forced() map[int]int {
	out := make(map[int]int, len(p.forced))
	for i, j := range p.forced {
		out[i] = j
	}

	return out
}

// WithoutRounds derives a Problem with every round constraint dropped but
// rosters, domains and forced pairs intact. Used by the week-0 snapshot,
// where only truth-booth evidence applies.
func (p *Problem) WithoutRounds() *Problem {
	return &Problem{
		men:     p.men,
		women:   p.women,
		rounds:  nil,
		allowed: p.allowed,
		forced:  p.forced,
	}
}

// Result is the outcome of an enumeration: the number of consistent
// bijections and, per (man, woman) pair, how many of them contain it.
type Result struct {
	Total      int
	PairCounts [][]int
}

// Feasible reports whether at least one consistent bijection exists.
func (r Result) Feasible() bool { return r.Total > 0 }

// Probabilities returns PairCounts / Total elementwise. When Total is zero
// every cell is 0.0 — "no solution" is a valid, degenerate outcome.
func (r Result) Probabilities() [][]float64 {
	n := len(r.PairCounts)
	probs := make([][]float64, n)
	for i := range probs {
		probs[i] = make([]float64, n)
		if r.Total == 0 {
			continue
		}
		for j, c := range r.PairCounts[i] {
			probs[i][j] = float64(c) / float64(r.Total)
		}
	}

	return probs
}

// Options tunes the enumeration. The zero value is valid and equals
// DefaultOptions apart from candidate ordering, which the zero value keeps
// disabled; use DefaultOptions unless you mean to switch heuristics off.
type Options struct {
	// Workers splits the first branching level across this many goroutines,
	// each accumulating locally, summed at the end. 0 or 1 means serial.
	Workers int

	// OrderCandidates enables the (hits desc, fanout asc) candidate ordering
	// heuristic. Disabling it falls back to ascending index order; the
	// returned counts are identical either way, only search cost differs.
	OrderCandidates bool
}

// DefaultOptions returns the recommended enumeration settings: serial search
// with candidate ordering enabled.
func DefaultOptions() Options {
	return Options{Workers: 1, OrderCandidates: true}
}
