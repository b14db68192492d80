package ogpress

import "strings"

// SiteConfig holds all configuration for an ogpress build.
type SiteConfig struct {
	Name          string // Site name, appended to titles and used as og:site_name (default "Blog")
	URL           string // Site origin for canonical and absolute links (default "http://localhost:3000")
	Description   string // Fallback meta description for posts without an excerpt
	Author        string // Author used when a post has none
	DefaultImage  string // Image used when a post has none (default "/og-image.jpg")
	TwitterHandle string // twitter:creator, e.g. "@someone"; omitted when empty

	TemplatePath string // Compiled HTML shell (default "dist/index.html")
	OutputDir    string // Output root (default "dist")
	CatalogPath  string // Post catalog file or SQLite store (default "content/posts.yaml")
	PublicDir    string // Static asset root for image probing; probing is off when empty

	Sitemap bool // Also write sitemap.xml into OutputDir
	Feed    bool // Also write feed.xml into OutputDir

	Addr string // Preview server listen address (default ":4173")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.DefaultImage == "" {
		c.DefaultImage = "/og-image.jpg"
	}
	if c.TemplatePath == "" {
		c.TemplatePath = "dist/index.html"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.CatalogPath == "" {
		c.CatalogPath = "content/posts.yaml"
	}
	if c.Addr == "" {
		c.Addr = ":4173"
	}
	if c.TwitterHandle != "" && !strings.HasPrefix(c.TwitterHandle, "@") {
		c.TwitterHandle = "@" + c.TwitterHandle
	}
}

// WithDefaults returns a copy of c with defaults applied.
func (c SiteConfig) WithDefaults() SiteConfig {
	c.setDefaults()
	return c
}
