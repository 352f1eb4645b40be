// Package content fetches site content from a mock fixture directory or a
// headless GraphQL CMS and normalizes both into one schema.
package content

import (
	"context"
	"fmt"

	"github.com/mckimdesign/archsite/internal/config"
	"github.com/mckimdesign/archsite/internal/content/graphql"
)

// Provider produces normalized content. Implementations must return equal
// shapes regardless of how the backend stores them.
type Provider interface {
	// Name identifies the backend in errors and logs.
	Name() string
	SiteSettings(ctx context.Context) (SiteSettings, error)
	// Projects returns every project grouped by category order.
	Projects(ctx context.Context) ([]Project, error)
	// ProjectBySlug returns false, without error, for an unknown slug.
	ProjectBySlug(ctx context.Context, slug string) (Project, bool, error)
	PageContent(ctx context.Context, kind PageKind) (PageContent, error)
}

// New returns the Provider selected by cfg.Backend. The choice is made once
// and callers hold the result for the life of the process.
func New(cfg *config.Config) (Provider, error) {
	switch cfg.Backend {
	case config.BackendMock:
		return NewMockProvider(cfg.ContentDir), nil
	case config.BackendCMS:
		if cfg.CMS.Endpoint == "" {
			return nil, fmt.Errorf("cms backend requires an endpoint")
		}
		client := graphql.NewClient(cfg.CMS.Endpoint,
			graphql.WithToken(cfg.CMS.Token),
			graphql.WithTimeout(cfg.CMSTimeout()),
			graphql.WithRate(cfg.CMS.RequestsPerSecond, graphql.DefaultBurst),
		)
		return NewCMSProvider(client), nil
	default:
		return nil, fmt.Errorf("unsupported content backend: %q", cfg.Backend)
	}
}

// Snapshot is every piece of content one generation pass needs.
type Snapshot struct {
	Settings   SiteSettings
	Projects   []Project
	Categories []string
	Pages      map[PageKind]PageContent
}

// Fetch loads a complete Snapshot from p, failing on the first error.
func Fetch(ctx context.Context, p Provider) (*Snapshot, error) {
	settings, err := p.SiteSettings(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := p.Projects(ctx)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{
		Settings:   settings,
		Projects:   projects,
		Categories: Categories(projects, settings.CategoryOrder),
		Pages:      make(map[PageKind]PageContent, len(PageKinds)),
	}
	for _, kind := range PageKinds {
		page, err := p.PageContent(ctx, kind)
		if err != nil {
			return nil, err
		}
		snap.Pages[kind] = page
	}
	return snap, nil
}

// ProjectsInCategory filters projects to those whose normalized category
// matches category, which may be given in any case.
func ProjectsInCategory(projects []Project, category string) []Project {
	want := NormalizeCategory(category)
	out := []Project{}
	for _, p := range projects {
		if p.Category == want {
			out = append(out, p)
		}
	}
	return out
}
