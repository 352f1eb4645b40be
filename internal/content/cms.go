package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/mckimdesign/archsite/internal/content/graphql"
)

const cmsBackend = "cms"

// Querier runs a GraphQL document. *graphql.Client satisfies it.
type Querier interface {
	Do(ctx context.Context, query string, vars map[string]any, out any) error
}

var _ Querier = (*graphql.Client)(nil)

// CMSProvider reads content from a Hygraph-style GraphQL API. Unlike the
// mock backend it enforces integrity rules, so authoring mistakes fail the
// build instead of publishing incomplete pages.
type CMSProvider struct {
	q Querier
}

// NewCMSProvider creates a CMSProvider backed by q.
func NewCMSProvider(q Querier) *CMSProvider {
	return &CMSProvider{q: q}
}

func (c *CMSProvider) Name() string { return cmsBackend }

func (c *CMSProvider) query(ctx context.Context, op, doc string, vars map[string]any, out any) error {
	if err := c.q.Do(ctx, doc, vars, out); err != nil {
		return &FetchError{Backend: cmsBackend, Op: op, Err: err}
	}
	return nil
}

// asset is a CMS media reference.
type asset struct {
	URL string `json:"url"`
}

func (a *asset) url() string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a.URL)
}

// richText is a CMS rich text field rendered server-side.
type richText struct {
	HTML string `json:"html"`
}

func (r *richText) html() string {
	if r == nil {
		return ""
	}
	return r.HTML
}

const siteSettingsQuery = `query SiteSettings {
  siteSettings {
    meta { title description keywords }
    branding {
      companyName companyFullName primaryColor fontHeading fontBody
      desktopLogo { url } mobileLogo { url } favicon { url }
    }
    contact { address phone fax email }
    projects { categoryOrder }
  }
}`

type cmsSiteSettings struct {
	Meta *struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Keywords    string `json:"keywords"`
	} `json:"meta"`
	Branding *struct {
		CompanyName     string `json:"companyName"`
		CompanyFullName string `json:"companyFullName"`
		PrimaryColor    string `json:"primaryColor"`
		FontHeading     string `json:"fontHeading"`
		FontBody        string `json:"fontBody"`
		DesktopLogo     *asset `json:"desktopLogo"`
		MobileLogo      *asset `json:"mobileLogo"`
		Favicon         *asset `json:"favicon"`
	} `json:"branding"`
	Contact  *ContactInfo `json:"contact"`
	Projects *struct {
		CategoryOrder string `json:"categoryOrder"`
	} `json:"projects"`
}

func (c *CMSProvider) SiteSettings(ctx context.Context) (SiteSettings, error) {
	var data struct {
		SiteSettings *cmsSiteSettings `json:"siteSettings"`
	}
	if err := c.query(ctx, "site settings", siteSettingsQuery, nil, &data); err != nil {
		return SiteSettings{}, err
	}
	return settingsFromCMS(data.SiteSettings), nil
}

// settingsFromCMS tolerates any missing branch, including the whole record.
func settingsFromCMS(raw *cmsSiteSettings) SiteSettings {
	var s SiteSettings
	if raw == nil {
		finishSettings(&s)
		return s
	}
	if m := raw.Meta; m != nil {
		s.Meta = Meta{Title: m.Title, Description: m.Description, Keywords: m.Keywords}
	}
	if b := raw.Branding; b != nil {
		s.Branding = Branding{
			CompanyName:     b.CompanyName,
			CompanyFullName: b.CompanyFullName,
			DesktopLogo:     b.DesktopLogo.url(),
			MobileLogo:      b.MobileLogo.url(),
			Favicon:         b.Favicon.url(),
			PrimaryColor:    b.PrimaryColor,
			FontHeading:     b.FontHeading,
			FontBody:        b.FontBody,
		}
	}
	if raw.Contact != nil {
		s.Contact = *raw.Contact
	}
	if raw.Projects != nil {
		s.CategoryOrder = SplitCategoryOrder(raw.Projects.CategoryOrder)
	}
	finishSettings(&s)
	return s
}

const projectFields = `title slug location year size status designLead type
      hero { url } images { url } description { html }`

// Projects are grouped by category in the CMS; the category order
// preference is fetched in the same round trip.
var projectsQuery = `query Projects {
  pageProjectsPlural {
    category
    projectList {
      ` + projectFields + `
    }
  }
  siteSettings { projects { categoryOrder } }
}`

var projectBySlugQuery = `query ProjectBySlug($slug: String!) {
  pageProjectsPlural {
    category
    projectList(where: { slug: $slug }) {
      ` + projectFields + `
    }
  }
}`

type cmsProject struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Location    string     `json:"location"`
	Year        flexString `json:"year"`
	Size        flexString `json:"size"`
	Status      string     `json:"status"`
	DesignLead  string     `json:"designLead"`
	Type        string     `json:"type"`
	Hero        *asset     `json:"hero"`
	Images      []asset    `json:"images"`
	Description *richText  `json:"description"`
}

type cmsProjectGroup struct {
	Category    string       `json:"category"`
	ProjectList []cmsProject `json:"projectList"`
}

// flattenGroups turns category groups into projects, enforcing that every
// project has a hero image.
func flattenGroups(groups []cmsProjectGroup) ([]Project, error) {
	var out []Project
	for _, g := range groups {
		for _, r := range g.ProjectList {
			hero := r.Hero.url()
			if hero == "" {
				name := r.Slug
				if name == "" {
					name = r.Title
				}
				return nil, &IntegrityError{Backend: cmsBackend, Subject: "project " + name, Problem: "missing hero image"}
			}
			var images []string
			for _, img := range r.Images {
				if u := img.url(); u != "" {
					images = append(images, u)
				}
			}
			out = append(out, Project{
				Slug:        r.Slug,
				Title:       r.Title,
				Category:    g.Category,
				Location:    r.Location,
				Hero:        hero,
				Images:      images,
				Year:        r.Year.String(),
				Size:        r.Size.String(),
				Status:      r.Status,
				DesignLead:  r.DesignLead,
				Type:        r.Type,
				Description: r.Description.html(),
			})
		}
	}
	return out, nil
}

func (c *CMSProvider) Projects(ctx context.Context) ([]Project, error) {
	var data struct {
		PageProjectsPlural []cmsProjectGroup `json:"pageProjectsPlural"`
		SiteSettings       *cmsSiteSettings  `json:"siteSettings"`
	}
	if err := c.query(ctx, "projects", projectsQuery, nil, &data); err != nil {
		return nil, err
	}
	projects, err := flattenGroups(data.PageProjectsPlural)
	if err != nil {
		return nil, err
	}
	order := settingsFromCMS(data.SiteSettings).CategoryOrder
	return finishProjects(cmsBackend, projects, order)
}

// ProjectBySlug asks the CMS for the one project first. Projects without a
// stored slug are addressed by their title slug, which the server cannot
// filter on, so a miss falls back to scanning every project.
func (c *CMSProvider) ProjectBySlug(ctx context.Context, slug string) (Project, bool, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Project{}, false, nil
	}

	var data struct {
		PageProjectsPlural []cmsProjectGroup `json:"pageProjectsPlural"`
	}
	vars := map[string]any{"slug": slug}
	if err := c.query(ctx, "project "+slug, projectBySlugQuery, vars, &data); err != nil {
		return Project{}, false, err
	}
	// The server may ignore the filter, so matches are re-checked here.
	groups := groupsWithSlug(data.PageProjectsPlural, slug)
	if len(groups) == 0 {
		data.PageProjectsPlural = nil
		if err := c.query(ctx, "project "+slug, projectsQuery, nil, &data); err != nil {
			return Project{}, false, err
		}
		groups = groupsWithSlug(data.PageProjectsPlural, slug)
	}
	if len(groups) == 0 {
		return Project{}, false, nil
	}

	matches, err := flattenGroups(groups)
	if err != nil {
		return Project{}, false, err
	}
	matches, err = finishProjects(cmsBackend, matches, nil)
	if err != nil {
		return Project{}, false, err
	}
	return matches[0], true, nil
}

// groupsWithSlug keeps only the raw records addressed by slug, so other
// projects' defects cannot fail the lookup.
func groupsWithSlug(groups []cmsProjectGroup, slug string) []cmsProjectGroup {
	var out []cmsProjectGroup
	for _, g := range groups {
		var list []cmsProject
		for _, r := range g.ProjectList {
			if r.slug() == slug {
				list = append(list, r)
			}
		}
		if len(list) > 0 {
			out = append(out, cmsProjectGroup{Category: g.Category, ProjectList: list})
		}
	}
	return out
}

// slug is the address the site gives r: its stored slug, or its title
// slugified when none is stored.
func (r cmsProject) slug() string {
	if s := strings.TrimSpace(r.Slug); s != "" {
		return s
	}
	return Slugify(r.Title)
}

func (c *CMSProvider) PageContent(ctx context.Context, kind PageKind) (PageContent, error) {
	page := PageContent{Kind: kind}
	var err error
	switch kind {
	case PageHome:
		page.Home, err = c.home(ctx)
	case PageAbout:
		page.About, err = c.about(ctx)
	case PageServices:
		page.Services, err = c.services(ctx)
	case PageContact:
		page.Contact, err = c.contact(ctx)
	default:
		return PageContent{}, fmt.Errorf("unknown page kind %q", kind)
	}
	if err != nil {
		return PageContent{}, err
	}
	finishPage(&page)
	return page, nil
}

const teamFields = `teamMembers(orderBy: order_ASC) {
    name position bio { html } image { url }
  }`

type cmsLeader struct {
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Bio      *richText `json:"bio"`
	Image    *asset    `json:"image"`
}

func leadersFromCMS(raw []cmsLeader) []Leader {
	out := make([]Leader, 0, len(raw))
	for _, r := range raw {
		out = append(out, Leader{Name: r.Name, Position: r.Position, Bio: r.Bio.html(), Image: r.Image.url()})
	}
	return out
}

var homeQuery = `query HomePage {
  pageHome {
    siteTitle
    heroSlides { image { url } caption color }
    sectionUs {
      title
      tabs { title buttonLabel motto content { html } link linkText }
    }
    sectionWork { title image { url } }
    contactBoxes { header title caption link }
  }
  ` + teamFields + `
}`

type cmsHome struct {
	SiteTitle  string `json:"siteTitle"`
	HeroSlides []struct {
		Image   *asset `json:"image"`
		Caption string `json:"caption"`
		Color   string `json:"color"`
	} `json:"heroSlides"`
	SectionUs *struct {
		Title string `json:"title"`
		Tabs  []struct {
			Title       string    `json:"title"`
			ButtonLabel string    `json:"buttonLabel"`
			Motto       string    `json:"motto"`
			Content     *richText `json:"content"`
			Link        string    `json:"link"`
			LinkText    string    `json:"linkText"`
		} `json:"tabs"`
	} `json:"sectionUs"`
	SectionWork []struct {
		Title string `json:"title"`
		Image *asset `json:"image"`
	} `json:"sectionWork"`
	ContactBoxes []ContactBox `json:"contactBoxes"`
}

func (c *CMSProvider) home(ctx context.Context) (*HomePage, error) {
	var data struct {
		PageHome    *cmsHome    `json:"pageHome"`
		TeamMembers []cmsLeader `json:"teamMembers"`
	}
	if err := c.query(ctx, "home page", homeQuery, nil, &data); err != nil {
		return nil, err
	}
	raw := data.PageHome
	if raw == nil {
		return nil, &IntegrityError{Backend: cmsBackend, Subject: "home page", Problem: "not published"}
	}
	if len(raw.HeroSlides) == 0 {
		return nil, &IntegrityError{Backend: cmsBackend, Subject: "home page", Problem: "hero slides are empty"}
	}

	h := &HomePage{Title: raw.SiteTitle}
	for i, s := range raw.HeroSlides {
		img := s.Image.url()
		if img == "" {
			return nil, &IntegrityError{
				Backend: cmsBackend,
				Subject: fmt.Sprintf("home page slide %d", i+1),
				Problem: "missing image",
			}
		}
		color := s.Color
		if color == "" {
			color = "white"
		}
		h.Slides = append(h.Slides, Slide{Image: img, Caption: s.Caption, Color: color})
	}
	if us := raw.SectionUs; us != nil {
		h.SectionUs.Title = us.Title
		for _, t := range us.Tabs {
			h.SectionUs.Tabs = append(h.SectionUs.Tabs, Tab{
				Title:       t.Title,
				ButtonLabel: t.ButtonLabel,
				Motto:       t.Motto,
				Content:     t.Content.html(),
				Link:        t.Link,
				LinkText:    t.LinkText,
			})
		}
	}
	for _, l := range leadersFromCMS(data.TeamMembers) {
		h.LeadershipImages = append(h.LeadershipImages, l.Image)
	}
	for _, w := range raw.SectionWork {
		h.Work = append(h.Work, WorkItem{Title: w.Title, Image: w.Image.url()})
	}
	h.ContactBoxes = raw.ContactBoxes
	return h, nil
}

var aboutQuery = `query AboutPage {
  pageAbout {
    companyImage { url }
    storyTitle
    story { html }
    stats { stat desc }
    valueSlides { title caption }
  }
  ` + teamFields + `
}`

func (c *CMSProvider) about(ctx context.Context) (*AboutPage, error) {
	var data struct {
		PageAbout *struct {
			CompanyImage *asset       `json:"companyImage"`
			StoryTitle   string       `json:"storyTitle"`
			Story        *richText    `json:"story"`
			Stats        []Stat       `json:"stats"`
			ValueSlides  []ValueSlide `json:"valueSlides"`
		} `json:"pageAbout"`
		TeamMembers []cmsLeader `json:"teamMembers"`
	}
	if err := c.query(ctx, "about page", aboutQuery, nil, &data); err != nil {
		return nil, err
	}
	raw := data.PageAbout
	if raw == nil {
		return nil, &IntegrityError{Backend: cmsBackend, Subject: "about page", Problem: "not published"}
	}
	return &AboutPage{
		CompanyImage: raw.CompanyImage.url(),
		StoryTitle:   raw.StoryTitle,
		Story:        raw.Story.html(),
		Stats:        raw.Stats,
		Leadership:   leadersFromCMS(data.TeamMembers),
		ValueSlides:  raw.ValueSlides,
	}, nil
}

const servicesQuery = `query ServicesPage {
  pageServices {
    title subtitle heroImage { url }
    services { name items }
  }
}`

func (c *CMSProvider) services(ctx context.Context) (*ServicesPage, error) {
	var data struct {
		PageServices *struct {
			Title     string    `json:"title"`
			Subtitle  string    `json:"subtitle"`
			HeroImage *asset    `json:"heroImage"`
			Services  []Service `json:"services"`
		} `json:"pageServices"`
	}
	if err := c.query(ctx, "services page", servicesQuery, nil, &data); err != nil {
		return nil, err
	}
	raw := data.PageServices
	if raw == nil {
		return nil, &IntegrityError{Backend: cmsBackend, Subject: "services page", Problem: "not published"}
	}
	return &ServicesPage{
		Title:     raw.Title,
		Subtitle:  raw.Subtitle,
		HeroImage: raw.HeroImage.url(),
		Services:  raw.Services,
	}, nil
}

const contactQuery = `query ContactPage {
  pageContact { title intro image { url } }
}`

func (c *CMSProvider) contact(ctx context.Context) (*ContactPage, error) {
	var data struct {
		PageContact *struct {
			Title string `json:"title"`
			Intro string `json:"intro"`
			Image *asset `json:"image"`
		} `json:"pageContact"`
	}
	if err := c.query(ctx, "contact page", contactQuery, nil, &data); err != nil {
		return nil, err
	}
	// The contact page has no required fields; an unpublished record
	// renders with the site settings alone.
	if data.PageContact == nil {
		return &ContactPage{}, nil
	}
	return &ContactPage{
		Title: data.PageContact.Title,
		Intro: data.PageContact.Intro,
		Image: data.PageContact.Image.url(),
	}, nil
}
