package content

// Meta holds the document-level metadata shared by every page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// Branding holds logos, colours and font families.
type Branding struct {
	CompanyName     string `json:"companyName"`
	CompanyFullName string `json:"companyFullName"`
	DesktopLogo     string `json:"desktopLogo"`
	MobileLogo      string `json:"mobileLogo"`
	Favicon         string `json:"favicon"`
	PrimaryColor    string `json:"primaryColor"`
	FontHeading     string `json:"fontHeading"`
	FontBody        string `json:"fontBody"`
}

// ContactInfo is the firm's published contact block.
type ContactInfo struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Fax     string `json:"fax"`
	Email   string `json:"email"`
}

// SiteSettings is always structurally complete: absent upstream fields are
// empty strings and CategoryOrder is never nil.
type SiteSettings struct {
	Meta          Meta        `json:"meta"`
	Branding      Branding    `json:"branding"`
	Contact       ContactInfo `json:"contact"`
	CategoryOrder []string    `json:"categoryOrder"`
}

// Project is a single portfolio entry. Slug is unique across projects.
type Project struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Hero        string   `json:"hero"`
	Images      []string `json:"images"`
	Year        string   `json:"year"`
	Size        string   `json:"size"`
	Status      string   `json:"status"`
	DesignLead  string   `json:"designLead"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
}

// PageKind names a page whose content is fetched as a unit.
type PageKind string

const (
	PageHome     PageKind = "home"
	PageAbout    PageKind = "about"
	PageServices PageKind = "services"
	PageContact  PageKind = "contact"
)

// PageKinds lists every page kind in navigation order.
var PageKinds = []PageKind{PageHome, PageAbout, PageServices, PageContact}

// ParsePageKind validates s as a PageKind.
func ParsePageKind(s string) (PageKind, bool) {
	for _, k := range PageKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// PageContent is the page-specific bag for one PageKind. Exactly the field
// matching Kind is set.
type PageContent struct {
	Kind     PageKind      `json:"kind"`
	Home     *HomePage     `json:"home,omitempty"`
	About    *AboutPage    `json:"about,omitempty"`
	Services *ServicesPage `json:"services,omitempty"`
	Contact  *ContactPage  `json:"contact,omitempty"`
}

// Body returns the typed page held by p.
func (p PageContent) Body() any {
	switch {
	case p.Kind == PageHome && p.Home != nil:
		return p.Home
	case p.Kind == PageAbout && p.About != nil:
		return p.About
	case p.Kind == PageServices && p.Services != nil:
		return p.Services
	case p.Kind == PageContact && p.Contact != nil:
		return p.Contact
	}
	return nil
}

// Slide is one hero slideshow frame.
type Slide struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
	Color   string `json:"color"`
}

// Tab is one panel of the home page "about us" section.
type Tab struct {
	Title       string `json:"title" yaml:"title"`
	ButtonLabel string `json:"buttonLabel" yaml:"buttonLabel"`
	Motto       string `json:"motto" yaml:"motto"`
	Content     string `json:"content" yaml:"content"`
	Link        string `json:"link" yaml:"link"`
	LinkText    string `json:"linkText" yaml:"linkText"`
}

// SectionUs is the tabbed introduction on the home page.
type SectionUs struct {
	Title string `json:"title"`
	Tabs  []Tab  `json:"tabs"`
}

// WorkItem links a category tile on the home page to the filtered project list.
type WorkItem struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// ContactBox is a call-to-action card at the foot of the home page.
type ContactBox struct {
	Header  string `json:"header" yaml:"header"`
	Title   string `json:"title" yaml:"title"`
	Caption string `json:"caption" yaml:"caption"`
	Link    string `json:"link" yaml:"link"`
}

// HomePage is the content of "/".
type HomePage struct {
	Title            string       `json:"title"`
	Slides           []Slide      `json:"slides"`
	SectionUs        SectionUs    `json:"sectionUs"`
	LeadershipImages []string     `json:"leadershipImages"`
	Work             []WorkItem   `json:"work"`
	ContactBoxes     []ContactBox `json:"contactBoxes"`
}

// Stat is a headline figure on the about page.
type Stat struct {
	Stat string `json:"stat" yaml:"stat"`
	Desc string `json:"desc" yaml:"desc"`
}

// Leader is a member of the leadership team.
type Leader struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// ValueSlide is one word/caption pair in the about page values reel.
type ValueSlide struct {
	Title   string `json:"title" yaml:"title"`
	Caption string `json:"caption" yaml:"caption"`
}

// AboutPage is the content of "/about".
type AboutPage struct {
	CompanyImage string       `json:"companyImage"`
	StoryTitle   string       `json:"storyTitle"`
	Story        string       `json:"story"`
	Stats        []Stat       `json:"stats"`
	Leadership   []Leader     `json:"leadership"`
	ValueSlides  []ValueSlide `json:"valueSlides"`
}

// Service is a named group of offered services.
type Service struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

// ServicesPage is the content of "/services".
type ServicesPage struct {
	Title     string    `json:"title" yaml:"title"`
	Subtitle  string    `json:"subtitle" yaml:"subtitle"`
	HeroImage string    `json:"heroImage" yaml:"heroImage"`
	Services  []Service `json:"services" yaml:"services"`
}

// ContactPage is the content of "/contact".
type ContactPage struct {
	Title string `json:"title" yaml:"title"`
	Intro string `json:"intro" yaml:"intro"`
	Image string `json:"image" yaml:"image"`
}
