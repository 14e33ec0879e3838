package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trowel/internal/config"
	"trowel/internal/discovery"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init [source-root]",
		Short: "Discover framework checkouts and initialize state",
		Long: "Scan the source root (the configured repos directory unless one is given)\n" +
			"and track every checkout found there. Already-tracked frameworks keep\n" +
			"their status, so re-running after new checkouts arrive is safe.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.workspace()
			if err != nil {
				return err
			}
			if err := ws.EnsureDirectories(); err != nil {
				return err
			}

			root := ws.ReposDir()
			if len(args) == 1 {
				root, err = config.ExpandPath(args[0])
				if err != nil {
					return err
				}
			}

			store, err := ctx.store()
			if err != nil {
				return err
			}
			result, err := discovery.Sync(cmd.Context(), store, discovery.DirLister{}, root, ctx.ensureLogger())
			if err != nil {
				return err
			}

			if len(result.Missing) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: tracked but missing from %s: %s\n",
					root, strings.Join(result.Missing, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "State initialized. Tracking %d frameworks.\n", result.Total)
			return nil
		},
	}
}
