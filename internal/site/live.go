package site

import (
	"context"
	"io"
)

// RenderProject renders the detail page for slug straight from the
// provider, for serving without a prior build. An unknown slug renders the
// not-found page and reports false.
func (g *Generator) RenderProject(ctx context.Context, w io.Writer, slug string) (bool, error) {
	settings, err := g.provider.SiteSettings(ctx)
	if err != nil {
		return false, err
	}
	p, ok, err := g.provider.ProjectBySlug(ctx, slug)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, g.render(w, settings, "404", "404", notFoundView{
			Message: "We could not find that project.",
		})
	}

	all, err := g.provider.Projects(ctx)
	if err != nil {
		return false, err
	}
	return true, g.render(w, settings, "project", "projects", newProjectView(p, all))
}
