package main

import (
	"github.com/aretw0/knobs/internal/cli"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <key> [name=value...]",
	Short: "Apply assignments on top of a stored snapshot and save it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Save(cmd.Context(), cmd.OutOrStdout(), options(cmd), args[0], args[1:])
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <key> [name=value...]",
	Short: "Show parameters with a stored snapshot applied",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Restore(cmd.Context(), cmd.OutOrStdout(), options(cmd), args[0], args[1:])
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff <key> [name=value...]",
	Short: "Show what restoring a stored snapshot would change",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Diff(cmd.Context(), cmd.OutOrStdout(), options(cmd), args[0], args[1:])
	},
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Snapshots(cmd.Context(), cmd.OutOrStdout(), options(cmd))
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop <key>",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Drop(cmd.Context(), cmd.OutOrStdout(), options(cmd), args[0])
	},
}

func init() {
	rootCmd.AddCommand(saveCmd, restoreCmd, diffCmd, snapshotsCmd, dropCmd)
}
