package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mckimdesign/archsite/internal/content"
)

// projectSummary is the list_projects entry; full details come from
// get_project.
type projectSummary struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Location string `json:"location,omitempty"`
	Year     string `json:"year,omitempty"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) fetchFailed(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("fetching content from %s backend failed: %v", s.provider.Name(), err))
}

// handleListProjects lists projects, filtered by category when given.
func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := s.provider.Projects(ctx)
	if err != nil {
		return s.fetchFailed(err), nil
	}
	if category := request.GetString("category", ""); category != "" {
		projects = content.ProjectsInCategory(projects, category)
	}

	out := make([]projectSummary, len(projects))
	for i, p := range projects {
		out[i] = projectSummary{
			Slug:     p.Slug,
			Title:    p.Title,
			Category: p.Category,
			Location: p.Location,
			Year:     p.Year,
		}
	}
	return jsonResult(out)
}

// handleGetProject returns one project. An unknown slug is reported as a
// tool error so the client can correct it.
func (s *Server) handleGetProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: slug"), nil
	}

	p, ok, err := s.provider.ProjectBySlug(ctx, slug)
	if err != nil {
		return s.fetchFailed(err), nil
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no project with slug %q. Use list_projects to see available slugs.", slug)), nil
	}
	return jsonResult(p)
}

func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	settings, err := s.provider.SiteSettings(ctx)
	if err != nil {
		return s.fetchFailed(err), nil
	}
	projects, err := s.provider.Projects(ctx)
	if err != nil {
		return s.fetchFailed(err), nil
	}
	return jsonResult(content.Categories(projects, settings.CategoryOrder))
}

func (s *Server) handleGetSiteSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	settings, err := s.provider.SiteSettings(ctx)
	if err != nil {
		return s.fetchFailed(err), nil
	}
	return jsonResult(settings)
}

func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: kind"), nil
	}
	kind, ok := content.ParsePageKind(raw)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown page kind %q: must be one of home, about, services, contact", raw)), nil
	}

	page, err := s.provider.PageContent(ctx, kind)
	if err != nil {
		return s.fetchFailed(err), nil
	}
	return jsonResult(page.Body())
}
