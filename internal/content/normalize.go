package content

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory collapses whitespace and title-cases a free-text
// category label, so "  commercial " and "COMMERCIAL" both become
// "Commercial".
func NormalizeCategory(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// Casers are not safe for concurrent use; build one per call.
	return cases.Title(language.English).String(s)
}

// OrderCategories returns the distinct normalized categories in seen,
// ordered by explicit first and then by first appearance in seen.
// Explicit entries that never occur in seen are dropped.
func OrderCategories(seen, explicit []string) []string {
	present := make(map[string]bool)
	var firstSeen []string
	for _, c := range seen {
		n := NormalizeCategory(c)
		if n == "" || present[n] {
			continue
		}
		present[n] = true
		firstSeen = append(firstSeen, n)
	}

	out := make([]string, 0, len(firstSeen))
	placed := make(map[string]bool)
	for _, c := range explicit {
		n := NormalizeCategory(c)
		if present[n] && !placed[n] {
			placed[n] = true
			out = append(out, n)
		}
	}
	for _, n := range firstSeen {
		if !placed[n] {
			out = append(out, n)
		}
	}
	return out
}

// SplitCategoryOrder parses a comma-separated ordering preference.
func SplitCategoryOrder(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if n := NormalizeCategory(part); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Categories returns the ordered categories of projects, honouring the
// explicit preference in order.
func Categories(projects []Project, order []string) []string {
	seen := make([]string, len(projects))
	for i, p := range projects {
		seen[i] = p.Category
	}
	return OrderCategories(seen, order)
}

// groupByCategory stably reorders projects so that categories appear in
// the order OrderCategories yields. Projects keep their relative order
// within a category.
func groupByCategory(projects []Project, order []string) []Project {
	cats := Categories(projects, order)
	rank := make(map[string]int, len(cats))
	for i, c := range cats {
		rank[c] = i
	}
	out := append([]Project(nil), projects...)
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Category] < rank[out[j].Category]
	})
	return out
}

// Slugify derives a URL-safe identifier from a title.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// finishProjects applies the rules shared by every backend: slugs and
// categories are normalized, galleries fall back to the hero image, slugs
// are unique, and the result is grouped by category order.
func finishProjects(backend string, projects []Project, order []string) ([]Project, error) {
	seen := make(map[string]string, len(projects))
	for i := range projects {
		p := &projects[i]
		finishProject(p)
		if p.Slug == "" {
			return nil, &IntegrityError{Backend: backend, Subject: fmt.Sprintf("project %q", p.Title), Problem: "has no slug"}
		}
		if p.Category == "" {
			return nil, &IntegrityError{Backend: backend, Subject: "project " + p.Slug, Problem: "has no category"}
		}
		if prev, dup := seen[p.Slug]; dup {
			return nil, &IntegrityError{
				Backend: backend,
				Subject: "project " + p.Slug,
				Problem: fmt.Sprintf("slug is shared by %q and %q", prev, p.Title),
			}
		}
		seen[p.Slug] = p.Title
	}
	return groupByCategory(projects, order), nil
}

func finishProject(p *Project) {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	} else {
		p.Slug = strings.TrimSpace(p.Slug)
	}
	p.Category = NormalizeCategory(p.Category)
	if len(p.Images) == 0 && p.Hero != "" {
		p.Images = []string{p.Hero}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// finishSettings guarantees non-nil collections.
func finishSettings(s *SiteSettings) {
	if s.CategoryOrder == nil {
		s.CategoryOrder = []string{}
	}
}

// finishPage guarantees non-nil collections on the typed page in p.
func finishPage(p *PageContent) {
	switch p.Kind {
	case PageHome:
		h := p.Home
		h.Slides = nonNil(h.Slides)
		h.SectionUs.Tabs = nonNil(h.SectionUs.Tabs)
		h.LeadershipImages = nonNil(h.LeadershipImages)
		h.Work = nonNil(h.Work)
		h.ContactBoxes = nonNil(h.ContactBoxes)
		for i := range h.Work {
			if h.Work[i].Category == "" {
				h.Work[i].Category = NormalizeCategory(h.Work[i].Title)
			}
		}
	case PageAbout:
		a := p.About
		a.Stats = nonNil(a.Stats)
		a.Leadership = nonNil(a.Leadership)
		a.ValueSlides = nonNil(a.ValueSlides)
	case PageServices:
		s := p.Services
		s.Services = nonNil(s.Services)
		for i := range s.Services {
			s.Services[i].Items = nonNil(s.Services[i].Items)
		}
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
