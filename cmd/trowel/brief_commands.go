package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trowel/internal/brief"
	"trowel/internal/manifest"
)

func newBriefCommand(ctx *commandContext) *cobra.Command {
	briefCmd := &cobra.Command{
		Use:   "brief",
		Short: "Assemble agent instruction briefs",
		Long: "Assemble the instruction brief for one agent and print it on stdout,\n" +
			"ready to hand to whatever dispatches the agent.",
	}

	briefCmd.AddCommand(newBriefOrchestratorCommand(ctx))
	briefCmd.AddCommand(newBriefFrameworkCommand(ctx))
	briefCmd.AddCommand(newBriefSkillCommand(ctx))
	briefCmd.AddCommand(newBriefSynthesisCommand(ctx))

	return briefCmd
}

func newBriefOrchestratorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "orchestrator",
		Short: "Build the top-level coordination brief",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ws, err := ctx.workspace()
			if err != nil {
				return err
			}

			out, err := brief.NewBuilder(ws).Orchestrator(cfg.Discovery.BatchLimit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newBriefFrameworkCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "framework <framework>",
		Short: "Build the analysis brief for one framework",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])

			store, err := ctx.store()
			if err != nil {
				return err
			}
			m, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			fw, ok := m.Get(name)
			if !ok {
				return fmt.Errorf("framework %q not found in state (run 'trowel init' first)", name)
			}

			ws, err := ctx.workspace()
			if err != nil {
				return err
			}
			out, err := brief.NewBuilder(ws).Framework(fw)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newBriefSkillCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "skill <skill> <framework>",
		Short: "Build one skill pass brief for one framework",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			skillName := strings.TrimSpace(args[0])
			frameworkName := strings.TrimSpace(args[1])

			store, err := ctx.store()
			if err != nil {
				return err
			}
			m, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			if !m.Has(frameworkName) {
				return fmt.Errorf("framework %q not found in state (run 'trowel init' first)", frameworkName)
			}

			ws, err := ctx.workspace()
			if err != nil {
				return err
			}
			out, err := brief.NewBuilder(ws).Skill(skillName, frameworkName)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newBriefSynthesisCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "synthesis [framework...]",
		Short: "Build the cross-framework synthesis brief",
		Long: "Build the synthesis brief for the named frameworks. With no names, every\n" +
			"completed framework is included; at least two are required either way.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store()
			if err != nil {
				return err
			}
			m, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			var names []string
			if len(args) == 0 {
				for _, fw := range m.InStatus(manifest.StatusCompleted) {
					names = append(names, fw.Name)
				}
			} else {
				for _, arg := range args {
					name := strings.TrimSpace(arg)
					if !m.Has(name) {
						return fmt.Errorf("framework %q not found in state (run 'trowel init' first)", name)
					}
					names = append(names, name)
				}
			}

			ws, err := ctx.workspace()
			if err != nil {
				return err
			}
			out, err := brief.NewBuilder(ws).Synthesis(names)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
