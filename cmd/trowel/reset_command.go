package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trowel/internal/recovery"
)

func newResetRunningCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-running",
		Short: "Return interrupted frameworks to pending",
		Long: "Return every in_progress framework to pending and delete its partial\n" +
			"output directory. Run this after a crashed or interrupted coordination\n" +
			"run, before selecting new work.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.workspace()
			if err != nil {
				return err
			}
			store, err := ctx.store()
			if err != nil {
				return err
			}

			result, err := recovery.Sweep(cmd.Context(), store, ws, ctx.ensureLogger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range result.Cleaned {
				fmt.Fprintf(out, "  Cleaned up partial output for '%s'\n", name)
			}
			for _, failure := range result.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not remove partial output for '%s': %v\n",
					failure.Framework, failure.Err)
			}
			fmt.Fprintf(out, "Reset %d in-progress frameworks to pending.\n", len(result.Reset))
			return nil
		},
	}
}
