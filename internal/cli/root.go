// Package cli wires the matchprob command tree: the root command computes
// probabilities from evidence directories; subcommands produce per-week
// snapshots, render a saved report, or serve one over HTTP.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchprob/internal/config"
)

// Execute runs the root command; main's only job is to call this.
func Execute() error {
	return NewRoot().Execute()
}

// rootFlags carries flag values shared by every subcommand; they override
// the YAML config, which overrides built-in defaults.
type rootFlags struct {
	configPath    string
	ceremonyDir   string
	truthBoothDir string
	output        string
	allowComments bool
	verbose       bool
	workers       int
}

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "matchprob",
		Short: "Exact pairing probabilities from ceremony and truth-booth evidence",
		Long: "matchprob enumerates every perfect matching consistent with ceremony\n" +
			"beam counts and truth-booth verdicts, and reports the per-pair\n" +
			"probability of belonging to the true matching.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}

			return runCompute(cfg, f.verbose)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file (default: ./"+config.DefaultFile+" if present)")
	pf.StringVar(&f.ceremonyDir, "ceremony-dir", "", "directory of week_*.json ceremony files")
	pf.StringVar(&f.truthBoothDir, "truth-booth-dir", "", "directory of booth_*.json truth-booth files")
	pf.StringVar(&f.output, "output", "", "output JSON path")
	pf.BoolVar(&f.allowComments, "allow-comments", false, "allow // and /* */ comments in evidence JSON")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "list files as they are read")
	pf.IntVar(&f.workers, "workers", 0, "parallel search workers (0 = config value)")

	root.AddCommand(
		newSplitWeeksCmd(&f),
		newWeekCmd(&f),
		newShowCmd(&f),
		newServeCmd(&f),
	)

	return root
}

// resolve merges config file and flags (flags win).
func (f *rootFlags) resolve() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.ceremonyDir != "" {
		cfg.CeremonyDir = f.ceremonyDir
	}
	if f.truthBoothDir != "" {
		cfg.TruthBoothDir = f.truthBoothDir
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.allowComments {
		cfg.AllowComments = true
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}

	return cfg, nil
}
