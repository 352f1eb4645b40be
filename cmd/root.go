package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "archsite",
	Short: "Static site generator and contact endpoint for an architecture firm",
	Long: `archsite builds the firm's brochure website from local mock content or a
headless GraphQL CMS, serves it with a rate-limited contact form endpoint,
and exposes the same normalized content to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".archsite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print each generated page")
}
