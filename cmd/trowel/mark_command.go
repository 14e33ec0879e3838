package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trowel/internal/manifest"
)

func newMarkCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <framework> <status>",
		Short: "Record a framework's analysis status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			status, ok := manifest.ParseStatus(args[1])
			if !ok {
				return fmt.Errorf("invalid status %q (valid: %s)", args[1], statusList())
			}

			store, err := ctx.store()
			if err != nil {
				return err
			}
			_, err = store.Update(cmd.Context(), func(m *manifest.Manifest) error {
				return m.SetStatus(name, status)
			})
			if err != nil {
				if errors.Is(err, manifest.ErrNotTracked) {
					return fmt.Errorf("framework %q not found in state (run 'trowel init' first)", name)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated '%s' to %s.\n", name, status)
			return nil
		},
	}
}

func statusList() string {
	statuses := manifest.AllStatuses()
	parts := make([]string, 0, len(statuses))
	for _, status := range statuses {
		parts = append(parts, string(status))
	}
	return strings.Join(parts, ", ")
}
