// Package matchprob computes exact pairing probabilities for an unknown
// perfect matching between two equal-size rosters, from two kinds of partial
// evidence: ceremony rounds (a full guessed pairing plus the exact number of
// correct guesses) and truth-booth verdicts (a single pair confirmed in or
// out of the true matching).
//
// 🔍 How it works
//
//	Every bijection consistent with all evidence is enumerated by a pruned
//	depth-first search; the probability of a pair is the fraction of
//	consistent bijections containing it. Counting is exact — no sampling,
//	no relaxation — and infeasible evidence yields the all-zero matrix
//	rather than an error.
//
// Under the hood, everything is organized under four packages:
//
//	bitset/   — fixed-width sets for candidate domains and taken-sets
//	evidence/ — ceremony/truth-booth records and the JSON file loader
//	match/    — constraint model builder + exact enumeration engine
//	cmd/      — the matchprob CLI (compute, split-weeks, week, show, serve)
//
// Quick example:
//
//	problem, err := match.Build(ceremonies, booths)
//	if err != nil { … }               // contradictory or malformed evidence
//	res, _ := match.Enumerate(problem, match.DefaultOptions())
//	probs := res.Probabilities()      // n×n, rows = men, columns = women
//
// See the match package documentation for the pruning invariants and the
// deterministic branching order.
package matchprob
