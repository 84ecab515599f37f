package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"go.trai.ch/rab/internal/core/domain"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [target]",
		Short: "List recorded invocations, newest first",
		Long:  "List recorded invocations, newest first. A target has the form os/arch/build_type.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			limit, _ := cmd.Flags().GetInt("limit")

			records, err := c.app.History(cmd.Context(), target)
			if err != nil {
				return err
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no recorded invocations")
				return nil
			}

			t := newTable("WHEN", "TARGET", "STATE", "EXIT", "DURATION", "DETAIL")
			now := time.Now()
			for _, rec := range records {
				t.Row(
					units.HumanDuration(now.Sub(rec.Timestamp))+" ago",
					rec.Target,
					string(rec.State),
					strconv.Itoa(rec.ExitCode),
					units.HumanDuration(rec.Duration),
					detail(rec),
				)
			}
			return renderTable(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().IntP("limit", "n", 0, "Show at most n records (0 for all)")
	return cmd
}

func detail(rec domain.BuildRecord) string {
	if rec.State != domain.StateFailed {
		return rec.Fingerprint
	}
	return string(rec.ErrorKind) + " in " + string(rec.FailedPhase)
}
