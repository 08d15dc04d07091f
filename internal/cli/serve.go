package cli

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchprob/internal/httpapi"
	"github.com/katalvlaran/matchprob/match"
)

// newServeCmd computes the report once from the evidence directories and
// serves it read-only over HTTP.
func newServeCmd(f *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the computed probabilities over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}
			ceremonies, booths, err := loadEvidence(cfg, f.verbose)
			if err != nil {
				return err
			}
			p, res, err := solve(cfg, ceremonies, booths, false)
			if err != nil {
				return err
			}
			if !res.Feasible() {
				log.Printf("[warn] no consistent matchings exist; serving zeros")
			}

			handler := httpapi.NewHandler(match.NewOutput(p, res), httpapi.Summary{
				Couples:  p.Size(),
				Rounds:   p.Rounds(),
				Total:    res.Total,
				Feasible: res.Feasible(),
			})
			srv := &http.Server{
				Addr:         addr,
				Handler:      handler.Router(),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}
			log.Printf("serving probabilities on %s", addr)

			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
