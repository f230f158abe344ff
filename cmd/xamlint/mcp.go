package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xamlint/xamlint/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP (Model Context Protocol) server for LLM tool integration",
	Long: `Starts an MCP server over stdio transport that exposes the linter as
tools LLMs can invoke. This lets AI assistants validate XAML documents
and analyze markup or code-behind for performance problems.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "xamlint": {
        "command": "xamlint",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - validate_xaml          Structural and compatibility validation
  - analyze_performance    Performance analysis for XAML or C# input`,
	RunE: runMCP,
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the MCP server manifest (server.json)",
	RunE:  runMCPManifest,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(manifestCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	server := mcpserver.NewServer(version)
	return server.Run(context.Background())
}

func runMCPManifest(cmd *cobra.Command, args []string) error {
	data, err := mcpserver.GenerateManifest(version)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
