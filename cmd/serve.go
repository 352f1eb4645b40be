package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mckimdesign/archsite/internal/config"
	"github.com/mckimdesign/archsite/internal/contact"
	"github.com/mckimdesign/archsite/internal/content"
	"github.com/mckimdesign/archsite/internal/livereload"
	"github.com/mckimdesign/archsite/internal/progress"
	"github.com/mckimdesign/archsite/internal/server"
	"github.com/mckimdesign/archsite/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it with live reload for local development",
	Long: `Builds the site, serves it with caching disabled, and rebuilds whenever
files under the content or static directories change. Open browser tabs reload
automatically after each successful rebuild. Project pages are rendered per
request so content edits show up without waiting for a rebuild.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		provider, err := content.New(cfg)
		if err != nil {
			return fmt.Errorf("creating content provider: %w", err)
		}

		opts := site.OptionsFromConfig(cfg)
		opts.LiveReload = true
		opts.Reporter = progress.Nop{}
		gen, err := site.NewGenerator(provider, opts)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		n, err := gen.Generate(ctx)
		if err != nil {
			return fmt.Errorf("building site: %w", err)
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
			Port:     cfg.Server.Port,
			SiteDir:  cfg.OutputDir,
			AllowAll: true,
			NoCache:  true,
		}, database)

		hub := livereload.NewHub()
		r := srv.Router()
		contact.RegisterRoutes(r, svc)
		server.RegisterLiveProjects(r, gen)
		r.Get(livereload.Path, hub.ServeHTTP)

		watcher := livereload.NewWatcher(watchDirs(cfg), func(ctx context.Context) error {
			_, err := gen.Generate(ctx)
			return err
		})
		watcher.OnRebuild = hub.Broadcast
		go watcher.Run(ctx)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "archsite dev server v%s starting on http://localhost:%d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Content: %s backend (%d pages)\n", provider.Name(), n)
		fmt.Fprintf(os.Stderr, "  Output: %s\n", cfg.OutputDir)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
		fmt.Fprintf(os.Stderr, "  Watching: %v\n", watchDirs(cfg))

		return srv.Start()
	},
}

// watchDirs lists the local source directories that trigger a rebuild. A
// CMS backend has no local content dir to watch.
func watchDirs(cfg *config.Config) []string {
	var dirs []string
	if cfg.Backend == config.BackendMock && cfg.ContentDir != "" {
		dirs = append(dirs, cfg.ContentDir)
	}
	if cfg.StaticDir != "" {
		dirs = append(dirs, cfg.StaticDir)
	}
	return dirs
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
