// Package match - constraint model builder.
//
// Build folds raw evidence into an immutable Problem in four stages:
//
//  1. Roster — the earliest ceremony establishes both rosters (explicitly or
//     inferred from its matches list); with no ceremonies at all, booth names
//     in order of first appearance serve instead. Later explicit rosters must
//     match exactly.
//  2. Rounds — each ceremony resolves to n×n 0/1 guess masks plus a beams
//     count in [0, n]; named pairs translate through the roster.
//  3. Booths — each no-match clears one domain bit; each match records a
//     forced pair, conflicting re-matches rejected.
//  4. Post-fold — forced pairs collapse their man's domain to a singleton and
//     vacate that woman everywhere else; injectivity and non-empty domains
//     are enforced last.
//
// Design principles (shared with the enumeration engine):
//   - Deterministic, side-effect free; evidence order is the only order.
//   - No logging, no panics on user input - only sentinel errors from
//     errors.go, wrapped with the offending file or name for diagnosis.
//   - All failures are terminal: no partial Problem is ever returned.
package match

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matchprob/bitset"
	"github.com/katalvlaran/matchprob/evidence"
)

// Build normalizes ceremony and truth-booth evidence into a Problem, or
// fails with a sentinel from errors.go describing the first structural,
// referential or contradiction defect found.
//
// Ceremonies must arrive in chronological order (the evidence loader sorts
// them by filename week); booth order is irrelevant.
//
// Complexity: O(rounds·n² + booths·n) time, O(rounds·n + n²) space.
func Build(ceremonies []evidence.CeremonyFile, booths []evidence.BoothFile) (*Problem, error) {
	men, women, err := establishRoster(ceremonies, booths)
	if err != nil {
		return nil, err
	}

	n := len(men)
	manIdx := indexOf(men)
	womanIdx := indexOf(women)

	// Stage 2: fold ceremonies into rounds against the fixed roster.
	rounds := make([]Round, 0, len(ceremonies))
	var round Round
	for pos, cf := range ceremonies {
		if pos > 0 {
			// Explicit rosters in later files must restate the established ones.
			cm, cw := cf.Ceremony.Roster(false)
			if cm != nil && (!equalNames(cm, men) || !equalNames(cw, women)) {
				return nil, fmt.Errorf("%w: %s", ErrRosterMismatch, cf.Path)
			}
		}
		round, err = buildRound(cf, n, manIdx, womanIdx)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	// Stage 3: fold truth booths into domains and forced pairs.
	full, err := bitset.Full(n)
	if err != nil {
		return nil, ErrRosterTooLarge
	}
	allowed := make([]bitset.Mask, n)
	for i := range allowed {
		allowed[i] = full
	}
	forced := make(map[int]int)

	var (
		i, j    int
		ok      bool
		verdict evidence.Verdict
	)
	for _, bf := range booths {
		man := strings.TrimSpace(bf.Booth.Man)
		woman := strings.TrimSpace(bf.Booth.Woman)
		if i, ok = manIdx[man]; !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownName, man, bf.Path)
		}
		if j, ok = womanIdx[woman]; !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownName, woman, bf.Path)
		}
		if verdict, err = evidence.ParseVerdict(bf.Booth.Result); err != nil {
			return nil, fmt.Errorf("%s: %w", bf.Path, err)
		}
		if verdict == evidence.NoMatch {
			allowed[i] = allowed[i].Without(j)
			continue
		}
		if prev, dup := forced[i]; dup && prev != j {
			return nil, fmt.Errorf("%w: %s", ErrForcedConflict, man)
		}
		forced[i] = j
	}

	// Stage 4: collapse forced pairs and verify every invariant.
	for i, j = range forced {
		if !allowed[i].Has(j) {
			return nil, fmt.Errorf("%w: %s–%s", ErrForcedExcluded, men[i], women[j])
		}
		allowed[i] = bitset.Single(j)
		for ii := 0; ii < n; ii++ {
			if ii != i {
				allowed[ii] = allowed[ii].Without(j)
			}
		}
		for ii, jj := range forced {
			if ii != i && jj == j {
				return nil, fmt.Errorf("%w: %s", ErrForcedDuplicate, women[j])
			}
		}
	}
	for i = 0; i < n; i++ {
		if allowed[i].Empty() {
			return nil, fmt.Errorf("%w: %s", ErrNoCandidates, men[i])
		}
	}

	return &Problem{men: men, women: women, rounds: rounds, allowed: allowed, forced: forced}, nil
}

// establishRoster fixes both rosters from the earliest ceremony, or from
// booth names when no ceremony exists, and validates their shape.
func establishRoster(ceremonies []evidence.CeremonyFile, booths []evidence.BoothFile) ([]string, []string, error) {
	var men, women []string
	switch {
	case len(ceremonies) > 0:
		men, women = ceremonies[0].Ceremony.Roster(true)
		if men == nil {
			return nil, nil, fmt.Errorf("%w: %s has no roster and no matches to infer it", ErrNoRoster, ceremonies[0].Path)
		}
	case len(booths) > 0:
		men, women = rosterFromBooths(booths)
	default:
		return nil, nil, ErrNoRoster
	}

	if len(men) == 0 || len(men) != len(women) {
		return nil, nil, ErrRosterShape
	}
	if len(men) > bitset.MaxUniverse {
		return nil, nil, ErrRosterTooLarge
	}
	for _, roster := range [][]string{men, women} {
		seen := make(map[string]bool, len(roster))
		for _, name := range roster {
			if seen[name] {
				return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
			}
			seen[name] = true
		}
	}

	return men, women, nil
}

// rosterFromBooths collects booth names in order of first appearance. The
// result still passes the usual shape checks, so lopsided booth evidence
// (three men, two women) fails as ErrRosterShape rather than guessing.
func rosterFromBooths(booths []evidence.BoothFile) (men, women []string) {
	seenMen := make(map[string]bool)
	seenWomen := make(map[string]bool)
	for _, bf := range booths {
		man := strings.TrimSpace(bf.Booth.Man)
		woman := strings.TrimSpace(bf.Booth.Woman)
		if man != "" && !seenMen[man] {
			seenMen[man] = true
			men = append(men, man)
		}
		if woman != "" && !seenWomen[woman] {
			seenWomen[woman] = true
			women = append(women, woman)
		}
	}

	return men, women
}

// buildRound resolves one ceremony into guess masks + beams. Either shape is
// accepted: an explicit n×n 0/1 matrix, or a named matches list translated
// through the roster.
func buildRound(cf evidence.CeremonyFile, n int, manIdx, womanIdx map[string]int) (Round, error) {
	c := cf.Ceremony
	if c.Result == nil {
		return Round{}, fmt.Errorf("%s: %w", cf.Path, evidence.ErrMissingResult)
	}
	beams := *c.Result
	if beams < 0 || beams > n {
		return Round{}, fmt.Errorf("%w: %d in %s", ErrBeamsRange, beams, cf.Path)
	}

	rows := make([]bitset.Mask, n)
	switch {
	case c.Matchups != nil:
		if len(c.Matchups) != n {
			return Round{}, fmt.Errorf("%w: %s", ErrMatrixShape, cf.Path)
		}
		for i, row := range c.Matchups {
			if len(row) != n {
				return Round{}, fmt.Errorf("%w: %s", ErrMatrixShape, cf.Path)
			}
			for j, v := range row {
				switch v {
				case 0:
				case 1:
					rows[i] = rows[i].With(j)
				default:
					return Round{}, fmt.Errorf("%w: %s", ErrMatrixValue, cf.Path)
				}
			}
		}
	case len(c.Matches) > 0:
		for _, p := range c.Matches {
			man := strings.TrimSpace(p.Man)
			woman := strings.TrimSpace(p.Woman)
			i, ok := manIdx[man]
			if !ok {
				return Round{}, fmt.Errorf("%w: %q in %s", ErrUnknownName, man, cf.Path)
			}
			j, ok := womanIdx[woman]
			if !ok {
				return Round{}, fmt.Errorf("%w: %q in %s", ErrUnknownName, woman, cf.Path)
			}
			rows[i] = rows[i].With(j)
		}
	default:
		return Round{}, fmt.Errorf("%w: %s", ErrMissingGuesses, cf.Path)
	}

	return Round{rows: rows, beams: beams}, nil
}

// indexOf builds the name → roster index lookup.
func indexOf(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}

	return idx
}

// equalNames compares rosters elementwise.
func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
