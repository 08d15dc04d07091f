package cli

import (
	"log"

	"github.com/katalvlaran/matchprob/evidence"
	"github.com/katalvlaran/matchprob/internal/config"
	"github.com/katalvlaran/matchprob/match"
)

// loadEvidence reads both evidence directories with the configured loader
// options, logging filenames when verbose.
func loadEvidence(cfg config.Config, verbose bool) ([]evidence.CeremonyFile, []evidence.BoothFile, error) {
	opts := evidence.LoadOptions{AllowComments: cfg.AllowComments}

	ceremonies, err := evidence.LoadCeremonies(cfg.CeremonyDir, opts)
	if err != nil {
		return nil, nil, err
	}
	booths, err := evidence.LoadBooths(cfg.TruthBoothDir, opts)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		for _, f := range ceremonies {
			log.Printf("[load] %s", f.Path)
		}
		for _, f := range booths {
			log.Printf("[load] %s", f.Path)
		}
	}

	return ceremonies, booths, nil
}

// solve runs builder + engine for one evidence snapshot.
func solve(cfg config.Config, ceremonies []evidence.CeremonyFile, booths []evidence.BoothFile, dropRounds bool) (*match.Problem, match.Result, error) {
	p, err := match.Build(ceremonies, booths)
	if err != nil {
		return nil, match.Result{}, err
	}
	if dropRounds {
		p = p.WithoutRounds()
	}

	opts := match.DefaultOptions()
	opts.Workers = cfg.Workers
	res, err := match.Enumerate(p, opts)
	if err != nil {
		return nil, match.Result{}, err
	}

	return p, res, nil
}

// writeReport serializes one report, surfacing the infeasibility diagnostic.
// Zero consistent matchings is a legitimate outcome: zeros are written and
// the process still exits cleanly.
func writeReport(p *match.Problem, res match.Result, path string) error {
	if !res.Feasible() {
		log.Printf("[warn] no consistent matchings exist; writing zeros to %s", path)
	}
	if err := match.NewOutput(p, res).WriteFile(path); err != nil {
		return err
	}
	log.Printf("Wrote %s (solutions counted: %d)", path, res.Total)

	return nil
}

// runCompute is the root command: all evidence, one report.
func runCompute(cfg config.Config, verbose bool) error {
	ceremonies, booths, err := loadEvidence(cfg, verbose)
	if err != nil {
		return err
	}

	p, res, err := solve(cfg, ceremonies, booths, false)
	if err != nil {
		return err
	}

	return writeReport(p, res, cfg.Output)
}
