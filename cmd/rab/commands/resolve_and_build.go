package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rab/internal/adapters/detector"
	"go.trai.ch/rab/internal/app"
	"go.trai.ch/rab/internal/core/domain"
)

func (c *CLI) newResolveAndBuildCmd() *cobra.Command {
	var inputs inputFlags
	cmd := &cobra.Command{
		Use:     "resolve-and-build",
		Aliases: []string{"build"},
		Short:   "Resolve dependencies, configure and build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			progress, _ := cmd.Flags().GetString("progress")

			mode := detector.ResolveMode(detector.DetectEnvironment(), progress)
			inv, err := c.app.Run(cmd.Context(), app.RunOptions{
				Options:  inputs.options(),
				Timeout:  timeout,
				Progress: mode == detector.ModeTUI,
			})
			if err != nil {
				// The progress view only keeps a tail of each phase.
				var perr *domain.PhaseError
				if mode == detector.ModeTUI && errors.As(err, &perr) && perr.Output != "" {
					_, _ = fmt.Fprint(cmd.ErrOrStderr(), perr.Output)
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", inv.State())
			return nil
		},
	}
	inputs.register(cmd)
	cmd.Flags().Duration("timeout", 0, "Wall-clock budget for configure and build (0 for none)")
	cmd.Flags().StringP("progress", "p", "auto", "Progress output: auto, tui, or plain")
	return cmd
}
