package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"trowel/internal/manifest"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the tracked framework table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store()
			if err != nil {
				return err
			}
			m, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeStatusJSON(cmd, m)
			}

			if m.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No frameworks tracked. Run 'init' first.")
				return nil
			}

			rows := buildStatusRows(m, shouldColorize(cmd.OutOrStdout()))
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Framework", "Status", "Path"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON")
	return cmd
}

func buildStatusRows(m *manifest.Manifest, colorize bool) [][]string {
	frameworks := sortedFrameworks(m)
	rows := make([][]string, 0, len(frameworks))
	for _, fw := range frameworks {
		rows = append(rows, []string{fw.Name, statusCell(fw.Status, colorize), fw.Path})
	}
	return rows
}

func writeStatusJSON(cmd *cobra.Command, m *manifest.Manifest) error {
	type frameworkView struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Path   string `json:"path"`
	}

	frameworks := sortedFrameworks(m)
	views := make([]frameworkView, 0, len(frameworks))
	for _, fw := range frameworks {
		views = append(views, frameworkView{Name: fw.Name, Status: string(fw.Status), Path: fw.Path})
	}

	counts := make(map[string]int, len(manifest.AllStatuses()))
	for status, n := range m.Counts() {
		counts[string(status)] = n
	}

	data, err := json.MarshalIndent(map[string]any{"frameworks": views, "counts": counts}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func sortedFrameworks(m *manifest.Manifest) []manifest.Framework {
	frameworks := m.Frameworks()
	sort.Slice(frameworks, func(i, j int) bool { return frameworks[i].Name < frameworks[j].Name })
	return frameworks
}
