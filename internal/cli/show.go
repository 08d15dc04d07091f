package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchprob/internal/render"
	"github.com/katalvlaran/matchprob/match"
)

// newShowCmd renders a previously written report as a terminal grid.
func newShowCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show [report.json]",
		Short: "Render a probability report as a colored grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}
			path := cfg.Output
			if len(args) == 1 {
				path = args[0]
			}

			out, err := match.ReadOutput(path)
			if err != nil {
				return err
			}
			cmd.Print(render.Grid(out))

			return nil
		},
	}
}
