package cmd

import (
	"github.com/mj1618/atspi-inspect/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing inspection tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes application listing
and inspection as tools. Name matches that would prompt on the command line
are declined unless the tool call sets accept_partial.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  atspi-inspect serve
  atspi-inspect serve --transport streamable-http --port 8080`,
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

	bus, err := connectBus()
	if err != nil {
		return err
	}
	defer bus.Close()

	return server.New(bus, logger).Serve(server.Config{Transport: transport, Port: port})
}
