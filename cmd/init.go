package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mckimdesign/archsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize archsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the content backend and contact delivery, and writes a .archsite.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
