package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mckimdesign/archsite/internal/content"
	"github.com/mckimdesign/archsite/internal/scroll"
)

// pageData is passed to the layout for every page.
type pageData struct {
	Page          string
	Settings      content.SiteSettings
	Nav           []navLink
	Primary       string
	FontHeading   string
	FontBody      string
	StyleVersion  string
	ScriptVersion string
	Year          int
	LiveReload    bool
	Body          any
}

type navLink struct {
	Label   string
	Href    string
	Current bool
}

var navItems = []navLink{
	{Label: "About", Href: "/about/"},
	{Label: "Projects", Href: "/projects/"},
	{Label: "Services", Href: "/services/"},
	{Label: "Contact", Href: "/contact/"},
}

func navFor(page string) []navLink {
	out := make([]navLink, len(navItems))
	for i, n := range navItems {
		n.Current = strings.Trim(n.Href, "/") == page
		out[i] = n
	}
	return out
}

// homeView claims one ordinal range for the work tiles and the next for
// the contact boxes so both families share the page's scroll tracker.
type homeView struct {
	Page      *content.HomePage
	WorkRange scroll.Range
	BoxRange  scroll.Range
}

func newHomeView(p *content.HomePage) homeView {
	ranges := scroll.NewRanges()
	return homeView{
		Page:      p,
		WorkRange: ranges.Claim(len(p.Work)),
		BoxRange:  ranges.Claim(len(p.ContactBoxes)),
	}
}

type categoryLink struct {
	Name string
	Slug string
}

type projectsView struct {
	Categories []categoryLink
	Projects   []content.Project
	Range      scroll.Range
}

func newProjectsView(projects []content.Project, categories []string) projectsView {
	links := make([]categoryLink, len(categories))
	for i, c := range categories {
		links[i] = categoryLink{Name: c, Slug: categorySlug(c)}
	}
	return projectsView{
		Categories: links,
		Projects:   projects,
		Range:      scroll.NewRanges().Claim(len(projects)),
	}
}

// maxRelated caps the "more projects" list on a project page.
const maxRelated = 3

type projectView struct {
	Project content.Project
	Related []content.Project
}

func newProjectView(p content.Project, all []content.Project) projectView {
	v := projectView{Project: p}
	for _, other := range content.ProjectsInCategory(all, p.Category) {
		if other.Slug == p.Slug {
			continue
		}
		v.Related = append(v.Related, other)
		if len(v.Related) == maxRelated {
			break
		}
	}
	return v
}

type contactView struct {
	Page      *content.ContactPage
	Endpoint  string
	MinLength int
	MaxLength int
}

type notFoundView struct {
	Message string
}

// categorySlug is the lower-case form used in ?category= and data
// attributes.
func categorySlug(category string) string {
	return content.Slugify(category)
}

var funcs = template.FuncMap{
	// raw marks backend rich text as trusted HTML.
	"raw":          func(s string) template.HTML { return template.HTML(s) },
	"ordinal":      func(rg scroll.Range, i int) int { return rg.Index(i) },
	"categorySlug": categorySlug,
}

// parseTemplates builds one template set per page, each a clone of the
// layout with the page's "title" and "content" blocks.
func parseTemplates() (map[string]*template.Template, error) {
	layout, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	pages := map[string]string{
		"home":     homeTemplate,
		"about":    aboutTemplate,
		"services": servicesTemplate,
		"projects": projectsTemplate,
		"project":  projectTemplate,
		"contact":  contactTemplate,
		"404":      notFoundTemplate,
	}
	out := make(map[string]*template.Template, len(pages))
	for name, src := range pages {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if t, err = t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}
