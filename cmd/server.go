package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mckimdesign/archsite/internal/contact"
	"github.com/mckimdesign/archsite/internal/content"
	"github.com/mckimdesign/archsite/internal/server"
	"github.com/mckimdesign/archsite/internal/site"
)

var (
	serverPort  int
	serverLive  bool
	serverBuild bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the generated site and the contact endpoint",
	Long: `Serves a previously built site from the output directory together with the
POST /api/contact endpoint. Accepted inquiries are stored in SQLite before
delivery so none are lost when the notifier fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serverPort != 0 {
			cfg.Server.Port = serverPort
		}

		provider, err := content.New(cfg)
		if err != nil {
			return fmt.Errorf("creating content provider: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var gen *site.Generator
		if serverBuild || serverLive {
			gen, err = site.NewGenerator(provider, site.OptionsFromConfig(cfg))
			if err != nil {
				return err
			}
		}
		if serverBuild {
			if _, err := gen.Generate(ctx); err != nil {
				return fmt.Errorf("building site: %w", err)
			}
		}
		if _, err := os.Stat(cfg.OutputDir); err != nil {
			return fmt.Errorf("no site at %s: run `archsite build` first or pass --build", cfg.OutputDir)
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		svc, err := newContactService(ctx, cfg, provider, database)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			SiteDir:        cfg.OutputDir,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}, database)

		r := srv.Router()
		contact.RegisterRoutes(r, svc)
		if serverLive {
			server.RegisterLiveProjects(r, gen)
		}

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "archsite server v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Site: %s\n", cfg.OutputDir)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
		fmt.Fprintf(os.Stderr, "  Contact: %s notifier, %d attempts per %d minutes\n",
			cfg.Contact.Notifier, cfg.Contact.MaxAttempts, cfg.Contact.WindowMinutes)
		if serverLive {
			fmt.Fprintf(os.Stderr, "  Project pages: rendered live from %s backend\n", provider.Name())
		}

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "port to listen on (overrides server.port)")
	serverCmd.Flags().BoolVar(&serverLive, "live", false, "render project pages per request from the content backend")
	serverCmd.Flags().BoolVar(&serverBuild, "build", false, "build the site before serving")
	rootCmd.AddCommand(serverCmd)
}
