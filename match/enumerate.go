// Package match - exact enumeration engine (pruned depth-first counting).
//
// Enumerate walks every bijection consistent with a Problem and accumulates
// (Total, PairCounts). The search replicates the constraint semantics
// exactly; the heuristics below only shrink the visited tree:
//
//  1. Forced pairs are seeded before the walk; if any round's running sum
//     already exceeds its beams target, the whole search is infeasible.
//  2. Men are visited ascending by remaining domain size (forced men count
//     as size one); a man's candidates descending by round "hits", then
//     ascending by "fanout", then by index — fully deterministic.
//  3. Two prunes per round k, both exact: the running sum may never exceed
//     beams[k] (the target is an equality), and the running sum plus an
//     upper bound on matches still reachable from unassigned men must still
//     reach beams[k].
//  4. Assignment, taken-set and running sums are mutated in place with undo
//     after every recursive return, so sibling branches start clean.
package match

import (
	"sort"

	"github.com/katalvlaran/matchprob/bitset"
)

// engine holds all search data. A dedicated struct (instead of closures over
// shared slices) keeps hot-path state explicit and makes the parallel split a
// plain clone.
type engine struct {
	// Problem data (read-only during search)
	n       int
	rounds  []Round
	allowed []bitset.Mask

	// Policy
	orderCand bool

	// Split restriction for parallel workers: when splitMan ≥ 0, that man's
	// candidates are limited to splitCands.
	splitMan   int
	splitCands bitset.Mask

	// Search state (commit/undo discipline)
	order      []int // men in visiting order
	assignment []int // assignment[i] = woman index, or -1
	taken      bitset.Mask
	sofar      []int // per round: guessed pairs already confirmed correct
	universe   bitset.Mask

	// Accumulator
	total  int
	counts [][]int
}

// newEngine seeds an engine from a Problem: forced pairs committed, running
// sums computed, visiting order fixed. It reports feasible=false when a
// forced prefix already overshoots some round's beams target.
func newEngine(p *Problem, opts Options) (*engine, bool) {
	n := p.Size()
	e := &engine{
		n:          n,
		rounds:     p.rounds,
		allowed:    p.allowed,
		orderCand:  opts.OrderCandidates,
		splitMan:   -1,
		assignment: make([]int, n),
		sofar:      make([]int, len(p.rounds)),
		counts:     zeroMatrix(n),
	}
	e.universe, _ = bitset.Full(n) // n ≤ 64 guaranteed by Build

	for i := range e.assignment {
		e.assignment[i] = -1
	}
	for i, j := range p.forced {
		e.assignment[i] = j
		e.taken = e.taken.With(j)
	}

	// Running sums of the forced prefix; overshoot ends the search before it
	// starts.
	for k, r := range e.rounds {
		for i, j := range e.assignment {
			if j >= 0 && r.rows[i].Has(j) {
				e.sofar[k]++
			}
		}
		if e.sofar[k] > r.beams {
			return e, false
		}
	}

	// Most-constrained-first visiting order, computed once. Forced men have
	// effective domain size one and float to the front.
	e.order = make([]int, n)
	for i := range e.order {
		e.order[i] = i
	}
	size := func(i int) int {
		if e.assignment[i] >= 0 {
			return 1
		}

		return e.allowed[i].Diff(e.taken).Count()
	}
	sort.SliceStable(e.order, func(a, b int) bool { return size(e.order[a]) < size(e.order[b]) })

	return e, true
}

// clone copies the engine with a fresh accumulator. Only the mutable state is
// duplicated; problem data stays shared (read-only).
func (e *engine) clone() *engine {
	c := *e
	c.assignment = append([]int(nil), e.assignment...)
	c.sofar = append([]int(nil), e.sofar...)
	c.order = e.order // fixed before search
	c.total = 0
	c.counts = zeroMatrix(e.n)

	return &c
}

// reachable is the per-round upper bound on further matches: the number of
// unassigned men (skip excluded) whose guess row still intersects both their
// domain and the available women. Admissible — each such man contributes at
// most one match, and no other man can contribute any.
func (e *engine) reachable(k int, avail bitset.Mask, skip int) int {
	ub := 0
	rows := e.rounds[k].rows
	for i := 0; i < e.n; i++ {
		if i == skip || e.assignment[i] >= 0 {
			continue
		}
		if !rows[i].Intersect(e.allowed[i]).Intersect(avail).Empty() {
			ub++
		}
	}

	return ub
}

// feasibleAt verifies both prunes for every round given an extra tentative
// increment (inc may be nil for the no-choice path).
func (e *engine) feasibleAt(avail bitset.Mask, skip int, inc []int) bool {
	for k, r := range e.rounds {
		s := e.sofar[k]
		if inc != nil {
			s += inc[k]
		}
		if s > r.beams {
			return false
		}
		if s+e.reachable(k, avail, skip) < r.beams {
			return false
		}
	}

	return true
}

// candidates returns man i's available women in visiting order.
func (e *engine) candidates(i int) []int {
	cands := e.allowed[i].Diff(e.taken)
	if i == e.splitMan {
		cands = cands.Intersect(e.splitCands)
	}
	js := cands.Members()
	if !e.orderCand || len(js) < 2 {
		return js
	}

	// hits: rounds proposing exactly (i, j) — try pairs that matter to more
	// rounds first. fanout: other unassigned men still competing for j —
	// prefer women that foreclose fewer future options.
	hits := func(j int) int {
		h := 0
		for _, r := range e.rounds {
			if r.rows[i].Has(j) {
				h++
			}
		}

		return h
	}
	fanout := func(j int) int {
		f := 0
		for ii := 0; ii < e.n; ii++ {
			if ii != i && e.assignment[ii] < 0 && e.allowed[ii].Has(j) {
				f++
			}
		}

		return f
	}
	sort.SliceStable(js, func(a, b int) bool {
		ha, hb := hits(js[a]), hits(js[b])
		if ha != hb {
			return ha > hb
		}
		fa, fb := fanout(js[a]), fanout(js[b])
		if fa != fb {
			return fa < fb
		}

		return js[a] < js[b]
	})

	return js
}

// dfs is the core search over order[idx:]. Invariant on return: assignment,
// taken and sofar are exactly as on entry.
func (e *engine) dfs(idx int) {
	if idx == e.n {
		// A full bijection is consistent iff every running sum hits its
		// beams target exactly.
		for k, r := range e.rounds {
			if e.sofar[k] != r.beams {
				return
			}
		}
		e.total++
		for i, j := range e.assignment {
			e.counts[i][j]++
		}

		return
	}

	i := e.order[idx]
	if e.assignment[i] >= 0 {
		// Forced man: nothing to choose, still verify feasibility.
		if !e.feasibleAt(e.universe.Diff(e.taken), -1, nil) {
			return
		}
		e.dfs(idx + 1)

		return
	}

	inc := make([]int, len(e.rounds))
	for _, j := range e.candidates(i) {
		avail := e.universe.Diff(e.taken).Without(j)
		for k, r := range e.rounds {
			inc[k] = 0
			if r.rows[i].Has(j) {
				inc[k] = 1
			}
		}
		if !e.feasibleAt(avail, i, inc) {
			continue
		}

		// Commit i→j, recurse, undo.
		e.assignment[i] = j
		e.taken = e.taken.With(j)
		for k := range e.rounds {
			e.sofar[k] += inc[k]
		}
		e.dfs(idx + 1)
		for k := range e.rounds {
			e.sofar[k] -= inc[k]
		}
		e.taken = e.taken.Without(j)
		e.assignment[i] = -1
	}
}

// Enumerate counts every bijection consistent with p and the per-pair
// occurrence matrix. Zero consistent bijections is a valid result, returned
// as (Total: 0, all-zero PairCounts) with a nil error.
//
// Errors: ErrNilProblem only — a Problem built by Build cannot fail here.
//
// Complexity: worst case O(n!·rounds·n); pruning governs practical cost.
func Enumerate(p *Problem, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}

	e, feasible := newEngine(p, opts)
	if !feasible {
		return Result{Total: 0, PairCounts: e.counts}, nil
	}

	if opts.Workers > 1 {
		if res, split := enumerateParallel(e, opts.Workers); split {
			return res, nil
		}
	}

	e.dfs(0)

	return Result{Total: e.total, PairCounts: e.counts}, nil
}

// zeroMatrix allocates an n×n zero count matrix.
func zeroMatrix(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	return m
}
