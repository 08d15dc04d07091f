// Package match builds a constraint model from matching evidence and counts,
// exactly, every bijection consistent with it.
//
// The pipeline has two stages:
//
//  1. Build — normalizes ceremony and truth-booth records into an immutable
//     Problem: fixed rosters, per-round guess masks with an exact
//     required-correct count (beams), a per-man candidate domain, and the
//     forced pairs implied by truth-booth matches. Every contradiction in the
//     evidence is detected here; the enumeration stage can trust any Problem
//     it receives.
//  2. Enumerate — a depth-first branch-and-bound search over candidate
//     bijections. It returns the total number of consistent bijections plus,
//     per (man, woman) pair, how many of them contain it; probabilities are
//     the elementwise ratio.
//
// Rationale (succinct):
//  1. The count is exact — no sampling, no relaxation. Tractability comes
//     from domain restriction plus two admissible prunes per round: a
//     partial sum may never exceed the beams target (it is an equality, not
//     a ceiling), and the partial sum plus an upper bound on still-reachable
//     matches must still reach it.
//  2. Branching is deterministic: men ascending by remaining domain size
//     (most constrained first); a man's candidate women descending by how
//     many rounds guessed that exact pair, then ascending by how many other
//     unassigned men still compete for her, then by index. The order affects
//     only search cost, never the returned counts.
//  3. Search state (partial assignment, taken-set, per-round running sums)
//     is mutated in place under a strict commit/undo protocol around each
//     recursive call, so sibling branches never observe tentative state.
//
// Complexity:
//   - Worst case O(n!) consistent-bijection enumeration (exact counting is
//     #P-hard in general); evidence-poor inputs are an accepted limitation.
//   - Per search node: O(rounds · n) bound computation, O(1) state updates.
//   - Memory: O(n²) for the count matrix, O(n) per recursion level.
//
// Zero consistent bijections is a legitimate result, not an error: Enumerate
// returns Total == 0 and Probabilities yields the all-zero matrix.
package match
