package ogpress

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

// RenderFeed returns an RSS 2.0 feed of pages, newest first.
func RenderFeed(cfg SiteConfig, pages []Page) ([]byte, error) {
	sorted := append([]Page(nil), pages...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Post.PublishDate > sorted[j].Post.PublishDate
	})

	items := make([]rssItem, 0, len(sorted))
	for _, p := range sorted {
		postURL := CanonicalURL(cfg.URL, p.Slug)
		description := p.Post.Excerpt
		if description == "" {
			description = cfg.Description
		}
		items = append(items, rssItem{
			Title:       p.Post.Title,
			Link:        postURL,
			Description: description,
			Categories:  p.Post.Tags,
			PubDate:     rssDate(p.Post.PublishDate),
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        cfg.URL + "/",
			Description: cfg.Description,
			Items:       items,
		},
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func rssDate(s string) string {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format(time.RFC1123Z)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(time.RFC1123Z)
	}
	return ""
}

// WriteFeed writes feed.xml into cfg.OutputDir and returns its path.
func WriteFeed(cfg SiteConfig, pages []Page) (string, error) {
	data, err := RenderFeed(cfg, pages)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(cfg.OutputDir, "feed.xml")
	return path, writeFileReplace(path, data)
}
