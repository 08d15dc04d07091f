package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchprob/evidence"
	"github.com/katalvlaran/matchprob/internal/config"
)

// newSplitWeeksCmd emits one report per week k = 0..max, each using only
// evidence from weeks ≤ k. Week 0 keeps truth-booth restrictions but drops
// every round constraint (the earliest ceremony still defines the roster).
func newSplitWeeksCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "split-weeks",
		Short: "Write <output>_week_k.json for every week k",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}
			ceremonies, booths, err := loadEvidence(cfg, f.verbose)
			if err != nil {
				return err
			}
			maxWeek, err := maxCeremonyWeek(ceremonies)
			if err != nil {
				return err
			}

			for w := 0; w <= maxWeek; w++ {
				if err = writeWeekReport(cfg, ceremonies, booths, w); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// newWeekCmd computes a single as-of-week snapshot.
func newWeekCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "week K",
		Short: "Compute probabilities using evidence up to week K only",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			week, err := strconv.Atoi(args[0])
			if err != nil || week < 0 {
				return fmt.Errorf("week must be a non-negative integer, got %q", args[0])
			}
			cfg, err := f.resolve()
			if err != nil {
				return err
			}
			ceremonies, booths, err := loadEvidence(cfg, f.verbose)
			if err != nil {
				return err
			}
			maxWeek, err := maxCeremonyWeek(ceremonies)
			if err != nil {
				return err
			}
			if week > maxWeek {
				return fmt.Errorf("week %d exceeds max available week %d (available: %s)",
					week, maxWeek, availableWeeks(ceremonies))
			}

			return writeWeekReport(cfg, ceremonies, booths, week)
		},
	}
}

// writeWeekReport builds and writes the snapshot for one week.
func writeWeekReport(cfg config.Config, ceremonies []evidence.CeremonyFile, booths []evidence.BoothFile, week int) error {
	boothsUpTo := evidence.BoothsUpTo(booths, week)

	var (
		snapshot   []evidence.CeremonyFile
		dropRounds bool
	)
	if week == 0 {
		// Roster comes from the earliest ceremony; its round constraint is
		// discarded after building.
		snapshot = ceremonies[:1]
		dropRounds = true
	} else {
		snapshot = evidence.CeremoniesUpTo(ceremonies, week)
		if len(snapshot) == 0 {
			// No ceremony on or before this week: keep the roster from the
			// earliest ceremony and treat the week like a booths-only one,
			// instead of letting the roster shrink to the names the booths
			// happen to mention.
			snapshot = ceremonies[:1]
			dropRounds = true
		}
	}

	p, res, err := solve(cfg, snapshot, boothsUpTo, dropRounds)
	if err != nil {
		return fmt.Errorf("week %d: %w", week, err)
	}

	return writeReport(p, res, weekPath(cfg.Output, week))
}

// weekPath derives <base>_week_<k>.json from the configured output path.
func weekPath(output string, week int) string {
	base := strings.TrimSuffix(output, ".json")

	return fmt.Sprintf("%s_week_%d.json", base, week)
}

// maxCeremonyWeek requires at least one numbered ceremony file; without one
// there is neither a roster source nor a week range.
func maxCeremonyWeek(ceremonies []evidence.CeremonyFile) (int, error) {
	if len(ceremonies) == 0 {
		return 0, fmt.Errorf("no ceremony files found (needed for roster)")
	}
	maxWeek := evidence.MaxWeek(ceremonies)
	if maxWeek == evidence.NoWeek {
		return 0, fmt.Errorf("no ceremony file carries a week number")
	}

	return maxWeek, nil
}

// availableWeeks lists the distinct ceremony weeks for error messages.
func availableWeeks(ceremonies []evidence.CeremonyFile) string {
	seen := map[int]bool{}
	var weeks []int
	for _, f := range ceremonies {
		if f.Week != evidence.NoWeek && !seen[f.Week] {
			seen[f.Week] = true
			weeks = append(weeks, f.Week)
		}
	}
	sort.Ints(weeks)
	parts := make([]string, len(weeks))
	for i, w := range weeks {
		parts[i] = strconv.Itoa(w)
	}

	return strings.Join(parts, ", ")
}
