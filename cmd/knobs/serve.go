package main

import (
	"context"
	"fmt"

	"github.com/aretw0/knobs/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the parameters over a JSON API:

  GET  /params          list every parameter
  POST /params          apply a JSON array of name=value assignments
  GET  /params/{name}   one parameter
  PUT  /params/{name}   assign the raw request body
  GET  /snapshot        current values
  GET  /metrics         Prometheus metrics

With --key, values are restored from the store at startup and saved back on shutdown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		key, _ := cmd.Flags().GetString("key")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		err := cli.Serve(ctx, cmd.OutOrStdout(), options(cmd), cli.ServeOptions{
			Addr: ":" + port,
			Key:  key,
		})
		if sig := ctx.Signal(); sig != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "stopped by %v\n", sig)
		}
		return err
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the parameters as MCP tools over stdio: list_parameters, get_parameter
and set_parameter. This lets AI agents inspect and tune the parameters.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		return cli.ServeMCP(cmd.Context(), options(cmd), key)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, mcpCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("key", "", "Snapshot key to restore at startup and save on shutdown")
	mcpCmd.Flags().String("key", "", "Snapshot key to restore at startup")
}
