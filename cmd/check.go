package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mckimdesign/archsite/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch and validate content without writing anything",
	Long:  `Loads every page, project, and setting from the configured backend and checks each against the content schemas. Useful in CI before a deploy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		provider, err := content.New(cfg)
		if err != nil {
			return fmt.Errorf("creating content provider: %w", err)
		}

		snap, err := content.Fetch(context.Background(), provider)
		if err != nil {
			return err
		}
		if err := content.ValidateSnapshot(snap); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Content OK (%s backend)\n", provider.Name())
		fmt.Fprintf(os.Stderr, "  Pages: %d\n", len(snap.Pages))
		fmt.Fprintf(os.Stderr, "  Projects: %d\n", len(snap.Projects))
		for _, cat := range snap.Categories {
			fmt.Fprintf(os.Stderr, "    %-14s %d\n", cat, len(content.ProjectsInCategory(snap.Projects, cat)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
