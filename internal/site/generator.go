// Package site renders normalized content into the static website.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mckimdesign/archsite/internal/assets"
	"github.com/mckimdesign/archsite/internal/config"
	"github.com/mckimdesign/archsite/internal/content"
	"github.com/mckimdesign/archsite/internal/progress"
	"github.com/mckimdesign/archsite/internal/scroll"
)

// DefaultContactEndpoint is where the contact form posts.
const DefaultContactEndpoint = "/api/contact"

// Options controls a Generator.
type Options struct {
	OutputDir       string
	StaticDir       string
	StaticInclude   []string
	StaticExclude   []string
	BaseURL         string
	ContactEndpoint string
	// LiveReload makes pages connect to the /__livereload websocket.
	LiveReload bool
	Scroll     scroll.Params
	Reporter   progress.Reporter
}

// OptionsFromConfig maps the site settings of cfg onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		OutputDir:       cfg.OutputDir,
		StaticDir:       cfg.StaticDir,
		StaticInclude:   cfg.StaticInclude,
		StaticExclude:   cfg.StaticExclude,
		BaseURL:         cfg.BaseURL,
		ContactEndpoint: DefaultContactEndpoint,
		Scroll:          scroll.DefaultParams(),
	}
}

// Generator builds the site from a content Provider.
type Generator struct {
	provider content.Provider
	opts     Options
	tmpl     map[string]*template.Template
	now      func() time.Time

	styleVersion  string
	scriptVersion string
	script        []byte
}

// NewGenerator parses the page templates and prepares the generated
// stylesheet and script.
func NewGenerator(p content.Provider, opts Options) (*Generator, error) {
	if opts.ContactEndpoint == "" {
		opts.ContactEndpoint = DefaultContactEndpoint
	}
	if opts.Scroll == (scroll.Params{}) {
		opts.Scroll = scroll.DefaultParams()
	}
	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	script, err := buildScript(opts.Scroll)
	if err != nil {
		return nil, err
	}
	return &Generator{
		provider:      p,
		opts:          opts,
		tmpl:          tmpl,
		now:           time.Now,
		styleVersion:  assets.HashBytes([]byte(cssContent)),
		scriptVersion: assets.HashBytes(script),
		script:        script,
	}, nil
}

// buildScript embeds the tracker parameters into script.js.
func buildScript(p scroll.Params) ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding scroll params: %w", err)
	}
	return []byte(strings.Replace(jsContent, scrollParamsPlaceholder, string(raw), 1)), nil
}

// output is one HTML file to write.
type output struct {
	path string // Relative to the output dir, slash-separated.
	url  string // Site path, "" for pages left out of the sitemap.
	tmpl string
	page string
	body any
}

// Generate fetches all content and writes the complete site. It returns
// the number of HTML pages written. Any content error aborts the build
// before anything is written.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	snap, err := content.Fetch(ctx, g.provider)
	if err != nil {
		return 0, err
	}
	if err := content.ValidateSnapshot(snap); err != nil {
		return 0, fmt.Errorf("%s content: %w", g.provider.Name(), err)
	}

	outputs := g.plan(snap)

	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return 0, err
	}

	rep := g.opts.Reporter
	rep.Start(len(outputs))
	for i, out := range outputs {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := g.writePage(snap.Settings, out); err != nil {
			return i, fmt.Errorf("rendering %s: %w", out.path, err)
		}
		rep.Update(i+1, out.path)
	}
	rep.Finish()

	if err := g.writeFile("style.css", []byte(cssContent)); err != nil {
		return len(outputs), err
	}
	if err := g.writeFile("script.js", g.script); err != nil {
		return len(outputs), err
	}
	if err := g.writeSitemap(outputs); err != nil {
		return len(outputs), fmt.Errorf("writing sitemap: %w", err)
	}

	var files []assets.File
	if g.opts.StaticDir != "" {
		files, err = assets.Copy(assets.Options{
			Src:     g.opts.StaticDir,
			Dst:     g.opts.OutputDir,
			Include: g.opts.StaticInclude,
			Exclude: g.opts.StaticExclude,
		})
		if err != nil {
			return len(outputs), err
		}
	}
	copied := 0
	for _, f := range files {
		if f.Copied {
			copied++
		}
	}
	log.Printf("site: %d pages, %d static files (%d updated) from %s backend", len(outputs), len(files), copied, g.provider.Name())

	return len(outputs), nil
}

// plan lists every page of the site.
func (g *Generator) plan(snap *content.Snapshot) []output {
	home := snap.Pages[content.PageHome].Home
	outputs := []output{
		{path: "index.html", url: "/", tmpl: "home", page: "home", body: newHomeView(home)},
		{path: "about/index.html", url: "/about/", tmpl: "about", page: "about", body: snap.Pages[content.PageAbout].About},
		{path: "services/index.html", url: "/services/", tmpl: "services", page: "services", body: snap.Pages[content.PageServices].Services},
		{path: "projects/index.html", url: "/projects/", tmpl: "projects", page: "projects", body: newProjectsView(snap.Projects, snap.Categories)},
	}
	for _, p := range snap.Projects {
		outputs = append(outputs, output{
			path: "projects/" + p.Slug + "/index.html",
			url:  "/projects/" + p.Slug + "/",
			tmpl: "project",
			page: "projects",
			body: newProjectView(p, snap.Projects),
		})
	}
	outputs = append(outputs,
		output{path: "contact/index.html", url: "/contact/", tmpl: "contact", page: "contact", body: g.contactView(snap.Pages[content.PageContact].Contact)},
		output{path: "404.html", tmpl: "404", page: "404", body: notFoundView{Message: "The page you are looking for does not exist."}},
	)
	return outputs
}

func (g *Generator) contactView(p *content.ContactPage) contactView {
	if p == nil {
		p = &content.ContactPage{}
	}
	return contactView{
		Page:      p,
		Endpoint:  g.opts.ContactEndpoint,
		MinLength: 10,
		MaxLength: 5000,
	}
}

func (g *Generator) pageData(settings content.SiteSettings, page string, body any) pageData {
	b := settings.Branding
	return pageData{
		Page:          page,
		Settings:      settings,
		Nav:           navFor(page),
		Primary:       orDefault(b.PrimaryColor, "#7819b1"),
		FontHeading:   orDefault(b.FontHeading, "Montserrat"),
		FontBody:      orDefault(b.FontBody, "Lato"),
		StyleVersion:  g.styleVersion,
		ScriptVersion: g.scriptVersion,
		Year:          g.now().Year(),
		LiveReload:    g.opts.LiveReload,
		Body:          body,
	}
}

func (g *Generator) render(w io.Writer, settings content.SiteSettings, tmpl, page string, body any) error {
	t, ok := g.tmpl[tmpl]
	if !ok {
		return fmt.Errorf("no template %q", tmpl)
	}
	return t.ExecuteTemplate(w, "layout", g.pageData(settings, page, body))
}

func (g *Generator) writePage(settings content.SiteSettings, out output) error {
	var buf bytes.Buffer
	if err := g.render(&buf, settings, out.tmpl, out.page, out.body); err != nil {
		return err
	}
	return g.writeFile(out.path, buf.Bytes())
}

func (g *Generator) writeFile(rel string, data []byte) error {
	path := filepath.Join(g.opts.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
