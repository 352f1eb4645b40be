package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mckimdesign/archsite/internal/content"
)

const fixtureDir = "../../content/mock"

func newTestServer() *Server {
	return NewServer(content.NewMockProvider(fixtureDir))
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func call(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_projects", listProjectsTool, "list_projects"},
		{"get_project", getProjectTool, "get_project"},
		{"list_categories", listCategoriesTool, "list_categories"},
		{"get_site_settings", getSiteSettingsTool, "get_site_settings"},
		{"get_page", getPageTool, "get_page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer()
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.provider.Name() != "mock" {
		t.Errorf("provider = %q, want mock", srv.provider.Name())
	}
}

func TestHandleListProjects(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		result, err := srv.handleListProjects(ctx, call(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got []projectSummary
		if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 6 {
			t.Errorf("projects = %d, want 6", len(got))
		}
		if got[0].Category != "Educational" {
			t.Errorf("first category = %q, want Educational", got[0].Category)
		}
	})

	t.Run("by category", func(t *testing.T) {
		result, err := srv.handleListProjects(ctx, call(map[string]any{"category": "RESIDENTIAL"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got []projectSummary
		json.Unmarshal([]byte(resultText(t, result)), &got)
		if len(got) != 2 {
			t.Fatalf("residential projects = %d, want 2", len(got))
		}
		for _, p := range got {
			if p.Category != "Residential" {
				t.Errorf("project %s category = %q", p.Slug, p.Category)
			}
		}
	})
}

func TestHandleGetProject(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	t.Run("existing", func(t *testing.T) {
		result, err := srv.handleGetProject(ctx, call(map[string]any{"slug": "willow-glen-residence"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		var p content.Project
		json.Unmarshal([]byte(resultText(t, result)), &p)
		if p.Slug != "willow-glen-residence" || p.Category != "Residential" {
			t.Errorf("project = %+v", p)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		result, err := srv.handleGetProject(ctx, call(map[string]any{"slug": "nope"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected tool error for unknown slug")
		}
	})

	t.Run("missing slug", func(t *testing.T) {
		result, _ := srv.handleGetProject(ctx, call(map[string]any{}))
		if !result.IsError {
			t.Error("expected error for missing slug")
		}
	})
}

func TestHandleListCategories(t *testing.T) {
	srv := newTestServer()
	result, err := srv.handleListCategories(context.Background(), call(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	json.Unmarshal([]byte(resultText(t, result)), &got)
	want := []string{"Educational", "Residential", "Commercial"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("categories = %v, want %v", got, want)
	}
}

func TestHandleGetSiteSettings(t *testing.T) {
	srv := newTestServer()
	result, err := srv.handleGetSiteSettings(context.Background(), call(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "McKim Design Group") {
		t.Error("company name missing from settings")
	}
}

func TestHandleGetPage(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	for _, kind := range []string{"home", "about", "services", "contact"} {
		t.Run(kind, func(t *testing.T) {
			result, err := srv.handleGetPage(ctx, call(map[string]any{"kind": kind}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsError {
				t.Fatalf("unexpected tool error: %v", result.Content)
			}
			if text := resultText(t, result); text == "null" {
				t.Error("page body is null")
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		result, _ := srv.handleGetPage(ctx, call(map[string]any{"kind": "blog"}))
		if !result.IsError {
			t.Error("expected error for unknown kind")
		}
	})
}

type brokenProvider struct{ content.Provider }

func (brokenProvider) Projects(context.Context) ([]content.Project, error) {
	return nil, &content.FetchError{Backend: "cms", Op: "Projects", Err: errors.New("connection refused")}
}

func TestFetchFailureIsToolError(t *testing.T) {
	srv := NewServer(brokenProvider{content.NewMockProvider(fixtureDir)})
	result, err := srv.handleListProjects(context.Background(), call(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error")
	}
	if !strings.Contains(resultText(t, result), "connection refused") {
		t.Errorf("error text = %q", resultText(t, result))
	}
}
