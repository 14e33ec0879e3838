package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	root := &cobra.Command{
		Use:           "trowel",
		Short:         "Coordinate framework analysis runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to the configuration file")

	root.AddCommand(newInitCommand(ctx))
	root.AddCommand(newNextCommand(ctx))
	root.AddCommand(newMarkCommand(ctx))
	root.AddCommand(newStatusCommand(ctx))
	root.AddCommand(newResetRunningCommand(ctx))
	root.AddCommand(newSkillsCommand(ctx))
	root.AddCommand(newBriefCommand(ctx))
	root.AddCommand(newConfigCommand(ctx))

	return root
}
