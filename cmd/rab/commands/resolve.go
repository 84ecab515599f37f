package commands

import "github.com/spf13/cobra"

func (c *CLI) newResolveCmd() *cobra.Command {
	var inputs inputFlags
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve declared dependencies against the package index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Resolve(cmd.Context(), inputs.options())
			if err != nil {
				return err
			}

			t := newTable("NAME", "VERSION", "KIND", "PLATFORM", "PATH")
			for _, dep := range res.Dependencies {
				t.Row(dep.Name, dep.Version.String(), string(dep.Kind), dep.Platform.String(), dep.InstallPath)
			}
			return renderTable(cmd.OutOrStdout(), t)
		},
	}
	inputs.register(cmd)
	return cmd
}
