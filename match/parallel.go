// Package match - optional parallel split of the enumeration.
//
// Counting is associative and commutative across disjoint assignment
// prefixes, so the first branching level can be partitioned across workers
// that each search their slice with a private accumulator; the partial
// results are summed afterwards. The partition changes nothing about which
// leaves are counted — workers cover pairwise disjoint candidate sets whose
// union is the full candidate set of the split man.
package match

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/matchprob/bitset"
)

// enumerateParallel fans the first unforced man's candidates out over up to
// `workers` goroutines, each running a cloned engine restricted to its slice.
// Returns split=false when there is nothing to split (all men forced, or a
// single candidate), in which case the caller falls back to the serial walk.
func enumerateParallel(e *engine, workers int) (Result, bool) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Locate the first unforced man in visiting order; compute his candidate
	// slices in the same deterministic order the serial walk would use.
	splitMan := -1
	for _, i := range e.order {
		if e.assignment[i] < 0 {
			splitMan = i
			break
		}
	}
	if splitMan < 0 {
		return Result{}, false
	}
	cands := e.candidates(splitMan)
	if len(cands) < 2 {
		return Result{}, false
	}
	if workers > len(cands) {
		workers = len(cands)
	}

	// Round-robin partition keeps slices balanced when the candidate order
	// correlates with subtree size.
	slices := make([]bitset.Mask, workers)
	for pos, j := range cands {
		slices[pos%workers] = slices[pos%workers].With(j)
	}

	clones := make([]*engine, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		clones[w] = e.clone()
		clones[w].splitMan = splitMan
		clones[w].splitCands = slices[w]
		wg.Add(1)
		go func(c *engine) {
			defer wg.Done()
			c.dfs(0)
		}(clones[w])
	}
	wg.Wait()

	// Sum the thread-local accumulators.
	out := Result{Total: 0, PairCounts: zeroMatrix(e.n)}
	for _, c := range clones {
		out.Total += c.total
		for i := range c.counts {
			for j, v := range c.counts[i] {
				out.PairCounts[i][j] += v
			}
		}
	}

	return out, true
}
