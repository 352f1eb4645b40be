package site

import (
	"bytes"
	"encoding/xml"
	"strings"
)

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// writeSitemap lists every page that has a public URL. Locations are
// absolute when a base URL is configured.
func (g *Generator) writeSitemap(outputs []output) error {
	base := strings.TrimSuffix(g.opts.BaseURL, "/")
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, out := range outputs {
		if out.url == "" {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: base + out.url})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return g.writeFile("sitemap.xml", buf.Bytes())
}
