package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listProjectsTool defines the list_projects MCP tool.
var listProjectsTool = mcp.NewTool("list_projects",
	mcp.WithDescription("List portfolio projects in display order, optionally limited to one category."),
	mcp.WithString("category",
		mcp.Description("Category name in any case, e.g. \"residential\""),
	),
)

// getProjectTool defines the get_project MCP tool.
var getProjectTool = mcp.NewTool("get_project",
	mcp.WithDescription("Get one project by slug, including its gallery and description."),
	mcp.WithString("slug",
		mcp.Required(),
		mcp.Description("Project slug as used in /projects/<slug>/"),
	),
)

// listCategoriesTool defines the list_categories MCP tool.
var listCategoriesTool = mcp.NewTool("list_categories",
	mcp.WithDescription("List project categories in the order the site shows them."),
)

// getSiteSettingsTool defines the get_site_settings MCP tool.
var getSiteSettingsTool = mcp.NewTool("get_site_settings",
	mcp.WithDescription("Get branding, contact details and metadata for the site."),
)

// getPageTool defines the get_page MCP tool.
var getPageTool = mcp.NewTool("get_page",
	mcp.WithDescription("Get the structured content of one page."),
	mcp.WithString("kind",
		mcp.Required(),
		mcp.Description("Page to fetch"),
		mcp.Enum("home", "about", "services", "contact"),
	),
)
