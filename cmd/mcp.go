package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mckimdesign/archsite/internal/content"
	mcpserver "github.com/mckimdesign/archsite/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the site's projects, pages, and settings to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		provider, err := content.New(cfg)
		if err != nil {
			return fmt.Errorf("creating content provider: %w", err)
		}

		mcpserver.Version = Version
		return mcpserver.NewServer(provider).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
