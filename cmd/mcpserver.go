package cmd

import (
	"github.com/spf13/cobra"

	"gcpctx/internal/mcpserver"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve context operations as MCP tools over stdio",
		Long: `Runs an MCP (Model Context Protocol) server on stdin/stdout exposing
the context operations (list, current, switch, save, delete) as tools,
so MCP-capable clients can drive gcpctx directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			return mcpserver.New(eng, rootCmd.Version).Start()
		},
	}
}
