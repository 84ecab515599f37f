package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rab/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build directories and the build history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, _ := cmd.Flags().GetBool("history")
			all, _ := cmd.Flags().GetBool("all")
			sourceDir, _ := cmd.Flags().GetString("source-dir")
			buildDir, _ := cmd.Flags().GetString("build-dir")

			opts := app.CleanOptions{
				SourceDir: sourceDir,
				BuildDir:  buildDir,
			}

			switch {
			case all:
				opts.Build = true
				opts.History = true
			case history:
				opts.History = true
			default:
				// Default behavior: clean build directories
				opts.Build = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().Bool("history", false, "Clear the build history only")
	cmd.Flags().BoolP("all", "a", false, "Clean build directories and the build history")
	cmd.Flags().String("source-dir", ".", "Source directory whose build/ is removed")
	cmd.Flags().String("build-dir", "", "Remove this build directory instead")

	return cmd
}
