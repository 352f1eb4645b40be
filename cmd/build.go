package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mckimdesign/archsite/internal/content"
	"github.com/mckimdesign/archsite/internal/progress"
	"github.com/mckimdesign/archsite/internal/site"
)

var (
	buildOutput  string
	buildBaseURL string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static website",
	Long: `Fetches all content from the configured backend, validates it, and renders
every page, the stylesheet, the script bundle, and sitemap.xml into the output
directory. Nothing is written when the content fails to load or validate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}
		if buildBaseURL != "" {
			cfg.BaseURL = buildBaseURL
		}

		provider, err := content.New(cfg)
		if err != nil {
			return fmt.Errorf("creating content provider: %w", err)
		}

		opts := site.OptionsFromConfig(cfg)
		opts.Reporter = progress.NewReporter("Building site")
		if verbose {
			opts.Reporter = &progress.CIReporter{Out: os.Stderr, Description: "Building site"}
		}
		gen, err := site.NewGenerator(provider, opts)
		if err != nil {
			return err
		}

		start := time.Now()
		n, err := gen.Generate(context.Background())
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Built %d pages from %s content into %s in %s\n",
			n, provider.Name(), cfg.OutputDir, time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides output_dir)")
	buildCmd.Flags().StringVar(&buildBaseURL, "base-url", "", "absolute site URL used in sitemap.xml")
	rootCmd.AddCommand(buildCmd)
}
