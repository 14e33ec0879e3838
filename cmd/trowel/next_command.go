package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNextCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next batch of pending frameworks",
		Long: "Print up to the requested number of pending framework names on one\n" +
			"space-separated line, oldest tracked first. An empty line means nothing\n" +
			"is pending.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			size := limit
			if !cmd.Flags().Changed("limit") {
				size = cfg.Discovery.BatchLimit
			}

			store, err := ctx.store()
			if err != nil {
				return err
			}
			m, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			batch := m.NextPending(size)
			names := make([]string, 0, len(batch))
			for _, fw := range batch {
				names = append(names, fw.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 1, "Batch size (defaults to discovery.batch_limit)")
	return cmd
}
