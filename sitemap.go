package ogpress

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// RenderSitemap returns a sitemap listing the site origin and the canonical URL
// of every page.
func RenderSitemap(cfg SiteConfig, pages []Page) ([]byte, error) {
	urls := []sitemapURL{
		{Loc: cfg.URL + "/"},
	}
	for _, p := range pages {
		urls = append(urls, sitemapURL{
			Loc:     CanonicalURL(cfg.URL, p.Slug),
			LastMod: p.Post.PublishDate,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteSitemap writes sitemap.xml into cfg.OutputDir and returns its path.
func WriteSitemap(cfg SiteConfig, pages []Page) (string, error) {
	data, err := RenderSitemap(cfg, pages)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(cfg.OutputDir, "sitemap.xml")
	return path, writeFileReplace(path, data)
}
