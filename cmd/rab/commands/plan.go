package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	var inputs inputFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the build plan without running CMake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := c.app.Plan(cmd.Context(), inputs.options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "# fingerprint: %s\n", plan.Fingerprint)
			_, _ = fmt.Fprintf(out, "# source: %s\n", plan.SourceDir)
			_, _ = fmt.Fprintf(out, "# build: %s\n", plan.BuildDir)
			_, _ = fmt.Fprintln(out, "# cache variables")
			for _, key := range plan.SortedCacheKeys() {
				_, _ = fmt.Fprintf(out, "-D%s=%s\n", key, plan.CacheVariables[key])
			}
			_, _ = fmt.Fprintf(out, "# %s\n", plan.ToolchainFilePath)
			_, _ = fmt.Fprint(out, c.app.RenderToolchain(plan))
			return nil
		},
	}
	inputs.register(cmd)
	return cmd
}
