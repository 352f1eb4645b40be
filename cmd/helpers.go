package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mckimdesign/archsite/internal/config"
	"github.com/mckimdesign/archsite/internal/contact"
	"github.com/mckimdesign/archsite/internal/content"
	"github.com/mckimdesign/archsite/internal/db"
)

const dbFile = "archsite.db"

// loadConfig loads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `archsite init` to create a configuration file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openDatabase opens the SQLite database under the configured data dir.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	path := filepath.Join(cfg.Server.DataDir, dbFile)
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}

// newContactService builds the contact service. The company name from the
// site settings is used in outgoing mail; a fetch failure only costs the
// name.
func newContactService(ctx context.Context, cfg *config.Config, provider content.Provider, database *db.DB) (*contact.Service, error) {
	name := "archsite"
	settings, err := provider.SiteSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load site settings: %v\n", err)
	} else if settings.Branding.CompanyName != "" {
		name = settings.Branding.CompanyName
	}
	svc, err := contact.FromConfig(cfg, database, name)
	if err != nil {
		return nil, fmt.Errorf("configuring contact form: %w", err)
	}
	return svc, nil
}
