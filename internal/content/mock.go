package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mckimdesign/archsite/internal/richtext"
)

const mockBackend = "mock"

// MockProvider reads curated fixtures from a directory, one file per
// content kind. Fixtures are trusted: missing images or empty collections
// are passed through rather than rejected.
type MockProvider struct {
	dir string
	md  *richtext.Renderer
}

// NewMockProvider creates a MockProvider rooted at dir.
func NewMockProvider(dir string) *MockProvider {
	return &MockProvider{dir: dir, md: richtext.New()}
}

func (m *MockProvider) Name() string { return mockBackend }

// Dir returns the fixture directory.
func (m *MockProvider) Dir() string { return m.dir }

// load decodes <name>.json, <name>.yaml or <name>.yml, in that order of
// preference.
func (m *MockProvider) load(op, name string, v any) error {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(m.dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return &FetchError{Backend: mockBackend, Op: op, Err: err}
		}
		if ext == ".json" {
			err = json.Unmarshal(data, v)
		} else {
			err = yaml.Unmarshal(data, v)
		}
		if err != nil {
			return &FetchError{Backend: mockBackend, Op: op, Err: fmt.Errorf("parsing %s: %w", path, err)}
		}
		return nil
	}
	return &FetchError{
		Backend: mockBackend,
		Op:      op,
		Err:     fmt.Errorf("no %s.json or %s.yaml in %s: %w", name, name, m.dir, fs.ErrNotExist),
	}
}

type mockSite struct {
	Title           string `json:"title" yaml:"title"`
	Description     string `json:"description" yaml:"description"`
	Keywords        string `json:"keywords" yaml:"keywords"`
	CompanyName     string `json:"companyName" yaml:"companyName"`
	CompanyFullName string `json:"companyFullName" yaml:"companyFullName"`
	DesktopLogo     string `json:"desktopLogo" yaml:"desktopLogo"`
	MobileLogo      string `json:"mobileLogo" yaml:"mobileLogo"`
	Favicon         string `json:"favicon" yaml:"favicon"`
	PrimaryColor    string `json:"primaryColor" yaml:"primaryColor"`
	FontHeading     string `json:"fontHeading" yaml:"fontHeading"`
	FontBody        string `json:"fontBody" yaml:"fontBody"`
	Address         string `json:"address" yaml:"address"`
	Phone           string `json:"phone" yaml:"phone"`
	Fax             string `json:"fax" yaml:"fax"`
	Email           string `json:"email" yaml:"email"`
}

type mockCategory struct {
	Name  string `json:"name" yaml:"name"`
	Order int    `json:"order" yaml:"order"`
}

func (m *MockProvider) SiteSettings(ctx context.Context) (SiteSettings, error) {
	var raw mockSite
	if err := m.load("site settings", "site", &raw); err != nil {
		return SiteSettings{}, err
	}
	order, err := m.categoryOrder()
	if err != nil {
		return SiteSettings{}, err
	}
	s := SiteSettings{
		Meta: Meta{Title: raw.Title, Description: raw.Description, Keywords: raw.Keywords},
		Branding: Branding{
			CompanyName:     raw.CompanyName,
			CompanyFullName: raw.CompanyFullName,
			DesktopLogo:     raw.DesktopLogo,
			MobileLogo:      raw.MobileLogo,
			Favicon:         raw.Favicon,
			PrimaryColor:    raw.PrimaryColor,
			FontHeading:     raw.FontHeading,
			FontBody:        raw.FontBody,
		},
		Contact:       ContactInfo{Address: raw.Address, Phone: raw.Phone, Fax: raw.Fax, Email: raw.Email},
		CategoryOrder: order,
	}
	finishSettings(&s)
	return s, nil
}

func (m *MockProvider) categoryOrder() ([]string, error) {
	var cats []mockCategory
	if err := m.load("categories", "categories", &cats); err != nil {
		return nil, err
	}
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Order < cats[j].Order })
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if n := NormalizeCategory(c.Name); n != "" {
			out = append(out, n)
		}
	}
	return out, nil
}

type mockProject struct {
	Slug            string     `json:"slug" yaml:"slug"`
	Title           string     `json:"title" yaml:"title"`
	Category        string     `json:"category" yaml:"category"`
	Location        string     `json:"location" yaml:"location"`
	Hero            string     `json:"hero" yaml:"hero"`
	Images          []string   `json:"images" yaml:"images"`
	Year            flexString `json:"year" yaml:"year"`
	Size            flexString `json:"size" yaml:"size"`
	Status          string     `json:"status" yaml:"status"`
	DesignLead      string     `json:"designLead" yaml:"designLead"`
	Type            string     `json:"type" yaml:"type"`
	Description     string     `json:"description" yaml:"description"`
	DescriptionHTML string     `json:"descriptionHtml" yaml:"descriptionHtml"`
}

func (m *MockProvider) Projects(ctx context.Context) ([]Project, error) {
	var raw []mockProject
	if err := m.load("projects", "projects", &raw); err != nil {
		return nil, err
	}
	order, err := m.categoryOrder()
	if err != nil {
		return nil, err
	}
	projects := make([]Project, 0, len(raw))
	for _, r := range raw {
		desc := r.DescriptionHTML
		if desc == "" {
			if desc, err = m.md.Render(r.Description); err != nil {
				return nil, &FetchError{Backend: mockBackend, Op: "projects", Err: fmt.Errorf("project %s: %w", r.Slug, err)}
			}
		}
		projects = append(projects, Project{
			Slug:        r.Slug,
			Title:       r.Title,
			Category:    r.Category,
			Location:    r.Location,
			Hero:        r.Hero,
			Images:      r.Images,
			Year:        r.Year.String(),
			Size:        r.Size.String(),
			Status:      r.Status,
			DesignLead:  r.DesignLead,
			Type:        r.Type,
			Description: desc,
		})
	}
	return finishProjects(mockBackend, projects, order)
}

func (m *MockProvider) ProjectBySlug(ctx context.Context, slug string) (Project, bool, error) {
	projects, err := m.Projects(ctx)
	if err != nil {
		return Project{}, false, err
	}
	for _, p := range projects {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return Project{}, false, nil
}

func (m *MockProvider) PageContent(ctx context.Context, kind PageKind) (PageContent, error) {
	page := PageContent{Kind: kind}
	var err error
	switch kind {
	case PageHome:
		page.Home, err = m.home()
	case PageAbout:
		page.About, err = m.about()
	case PageServices:
		page.Services, err = m.services()
	case PageContact:
		page.Contact, err = m.contact()
	default:
		return PageContent{}, fmt.Errorf("unknown page kind %q", kind)
	}
	if err != nil {
		return PageContent{}, err
	}
	finishPage(&page)
	return page, nil
}

type mockLeader struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position" yaml:"position"`
	Bio      string `json:"bio" yaml:"bio"`
	Image    string `json:"image" yaml:"image"`
}

func (m *MockProvider) leadership() ([]Leader, error) {
	var raw []mockLeader
	if err := m.load("leadership", "leadership", &raw); err != nil {
		return nil, err
	}
	sort.SliceStable(raw, func(i, j int) bool { return raw[i].ID < raw[j].ID })
	out := make([]Leader, 0, len(raw))
	for _, r := range raw {
		bio, err := m.md.Render(r.Bio)
		if err != nil {
			return nil, &FetchError{Backend: mockBackend, Op: "leadership", Err: err}
		}
		out = append(out, Leader{Name: r.Name, Position: r.Position, Bio: bio, Image: r.Image})
	}
	return out, nil
}

type mockHome struct {
	SiteTitle    string   `json:"siteTitle" yaml:"siteTitle"`
	HeroImages   []string `json:"heroImages" yaml:"heroImages"`
	HeroCaptions []struct {
		Text  string `json:"text" yaml:"text"`
		Color string `json:"color" yaml:"color"`
	} `json:"heroCaptions" yaml:"heroCaptions"`
	SectionUs struct {
		Title string `json:"title" yaml:"title"`
		Tabs  []Tab  `json:"tabs" yaml:"tabs"`
	} `json:"sectionUs" yaml:"sectionUs"`
	SectionWork []struct {
		Title string `json:"title" yaml:"title"`
		Image string `json:"image" yaml:"image"`
	} `json:"sectionWork" yaml:"sectionWork"`
	ContactBoxes []ContactBox `json:"contactBoxes" yaml:"contactBoxes"`
}

func (m *MockProvider) home() (*HomePage, error) {
	var raw mockHome
	if err := m.load("home page", "index", &raw); err != nil {
		return nil, err
	}
	leaders, err := m.leadership()
	if err != nil {
		return nil, err
	}

	h := &HomePage{
		Title:     raw.SiteTitle,
		SectionUs: SectionUs{Title: raw.SectionUs.Title},
	}
	for i, img := range raw.HeroImages {
		s := Slide{Image: img, Color: "white"}
		if i < len(raw.HeroCaptions) {
			s.Caption = raw.HeroCaptions[i].Text
			if c := raw.HeroCaptions[i].Color; c != "" {
				s.Color = c
			}
		}
		h.Slides = append(h.Slides, s)
	}
	for _, tab := range raw.SectionUs.Tabs {
		if tab.Content, err = m.md.Render(tab.Content); err != nil {
			return nil, &FetchError{Backend: mockBackend, Op: "home page", Err: err}
		}
		h.SectionUs.Tabs = append(h.SectionUs.Tabs, tab)
	}
	for _, l := range leaders {
		h.LeadershipImages = append(h.LeadershipImages, l.Image)
	}
	for _, w := range raw.SectionWork {
		h.Work = append(h.Work, WorkItem{Title: w.Title, Image: w.Image})
	}
	h.ContactBoxes = raw.ContactBoxes
	return h, nil
}

type mockAbout struct {
	CompanyImage struct {
		BgImage string `json:"bgImage" yaml:"bgImage"`
	} `json:"companyImage" yaml:"companyImage"`
	OurStory struct {
		Title   string `json:"title" yaml:"title"`
		Content string `json:"content" yaml:"content"`
	} `json:"ourStory" yaml:"ourStory"`
	Stats       []Stat       `json:"stats" yaml:"stats"`
	ValueSlides []ValueSlide `json:"valueSlides" yaml:"valueSlides"`
}

func (m *MockProvider) about() (*AboutPage, error) {
	var raw mockAbout
	if err := m.load("about page", "about", &raw); err != nil {
		return nil, err
	}
	leaders, err := m.leadership()
	if err != nil {
		return nil, err
	}
	story, err := m.md.Render(raw.OurStory.Content)
	if err != nil {
		return nil, &FetchError{Backend: mockBackend, Op: "about page", Err: err}
	}
	return &AboutPage{
		CompanyImage: raw.CompanyImage.BgImage,
		StoryTitle:   raw.OurStory.Title,
		Story:        story,
		Stats:        raw.Stats,
		Leadership:   leaders,
		ValueSlides:  raw.ValueSlides,
	}, nil
}

func (m *MockProvider) services() (*ServicesPage, error) {
	var raw ServicesPage
	if err := m.load("services page", "services", &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

func (m *MockProvider) contact() (*ContactPage, error) {
	var raw ContactPage
	if err := m.load("contact page", "contact", &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}
