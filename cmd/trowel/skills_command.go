package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trowel/internal/skills"
)

func newSkillsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List installed analysis skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.workspace()
			if err != nil {
				return err
			}
			catalog, err := skills.Load(ws.SkillsDir())
			if err != nil {
				return err
			}
			if len(catalog) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No skills installed under %s.\n", ws.SkillsDir())
				return nil
			}

			rows := make([][]string, 0, len(catalog))
			for _, skill := range catalog {
				rows = append(rows, []string{
					skill.Name,
					fmt.Sprintf("%d (%s)", int(skill.Phase), skill.Phase),
					skill.Title,
					skill.Description,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Skill", "Phase", "Title", "Description"}, rows, 1))
			return nil
		},
	}
}
