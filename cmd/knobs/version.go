package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/knobs"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of knobs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "knobs version %s\n", strings.TrimSpace(knobs.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
