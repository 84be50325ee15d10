package main

import (
	"github.com/aretw0/knobs/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [name=value...]",
	Short: "Show every parameter after applying assignments",
	Long: `Applies the given name=value assignments in order and prints every parameter.
Invalid assignments are skipped and the previous value is kept.`,
	Example: `  knobs show threshold=0.8 mode=accurate
  knobs show -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Show(cmd.Context(), cmd.OutOrStdout(), options(cmd), args)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <name> [name=value...]",
	Short: "Print the value of one parameter",
	Long: `Applies the given assignments and prints the value of one parameter.
Fails when the parameter does not exist (or is not of the kind given with --type).`,
	Example: `  knobs get threshold threshold=0.8
  knobs get verbose --type bool`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("type")
		return cli.Get(cmd.Context(), cmd.OutOrStdout(), options(cmd), args[0], kind, args[1:])
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [name=value...]",
	Short: "Report the outcome of each assignment",
	Long:  `Applies the given assignments and reports, for each one, whether it was applied or why it was skipped. Exits non-zero if any was skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Check(cmd.Context(), cmd.OutOrStdout(), options(cmd), args)
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the normalized parameter definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Describe(cmd.Context(), cmd.OutOrStdout(), options(cmd))
	},
}

func init() {
	rootCmd.AddCommand(showCmd, getCmd, checkCmd, describeCmd)

	getCmd.Flags().String("type", "", "Restrict the lookup to one kind: bool, numeric or string")
}
