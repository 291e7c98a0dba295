package cmd

import (
	"github.com/mj1618/gamectl/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing gamectl tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the controller
operations for the selected profile as tools.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Logs go to stderr, so stdio stays reserved for the protocol.

Examples:
  gamectl serve --profile starrail
  gamectl serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	ctrl, err := newController(cmd)
	if err != nil {
		return err
	}
	return server.New(ctrl).Serve(server.Config{Transport: transport, Port: port})
}
