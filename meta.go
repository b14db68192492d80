package ogpress

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// BuildPageMeta derives the metadata for one post. img holds the probed image
// dimensions, if any.
func BuildPageMeta(cfg SiteConfig, p Post, img ImageInfo) PageMeta {
	author := p.Author
	if author == "" {
		author = cfg.Author
	}
	description := p.Excerpt
	if description == "" {
		description = cfg.Description
	}
	image := p.Image
	if image == "" {
		image = cfg.DefaultImage
	}
	return PageMeta{
		Title:        p.Title,
		Description:  description,
		CanonicalURL: CanonicalURL(cfg.URL, p.Slug),
		ImageURL:     ResolveImageURL(cfg.URL, image),
		ImageWidth:   img.Width,
		ImageHeight:  img.Height,
		PublishDate:  p.PublishDate,
		Author:       author,
		Tags:         append([]string(nil), p.Tags...),
	}
}

// HeadTags returns a component rendering the <head> fragment that replaces the
// shell's <title>: document title, description, keywords, canonical link, Open
// Graph, article and Twitter Card tags, and an Article JSON-LD block.
func HeadTags(cfg SiteConfig, m PageMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b headWriter
		title := EscapeHTML(m.Title)
		description := EscapeHTML(m.Description)
		author := EscapeHTML(m.Author)
		url := EscapeHTML(m.CanonicalURL)
		image := EscapeHTML(m.ImageURL)

		b.comment("Primary Meta Tags")
		b.line("<title>" + title + " | " + EscapeHTML(cfg.Name) + "</title>")
		b.meta("name", "title", title)
		b.meta("name", "description", description)
		b.meta("name", "author", author)
		b.meta("name", "keywords", EscapeHTML(JoinTags(m.Tags)))
		b.meta("name", "robots", "index, follow")
		b.line(`<link rel="canonical" href="` + url + `" />`)

		b.comment("Open Graph / Facebook")
		b.meta("property", "og:type", "article")
		b.meta("property", "og:url", url)
		b.meta("property", "og:title", title)
		b.meta("property", "og:description", description)
		b.meta("property", "og:image", image)
		if m.ImageWidth > 0 && m.ImageHeight > 0 {
			b.meta("property", "og:image:width", strconv.Itoa(m.ImageWidth))
			b.meta("property", "og:image:height", strconv.Itoa(m.ImageHeight))
		}
		b.meta("property", "og:site_name", EscapeHTML(cfg.Name))
		b.meta("property", "article:published_time", EscapeHTML(m.PublishDate))
		b.meta("property", "article:author", author)
		for _, tag := range m.Tags {
			b.meta("property", "article:tag", EscapeHTML(tag))
		}

		b.comment("Twitter")
		b.meta("name", "twitter:card", "summary_large_image")
		b.meta("name", "twitter:url", url)
		b.meta("name", "twitter:title", title)
		b.meta("name", "twitter:description", description)
		b.meta("name", "twitter:image", image)
		if cfg.TwitterHandle != "" {
			b.meta("name", "twitter:creator", EscapeHTML(cfg.TwitterHandle))
		}

		b.line(`<script type="application/ld+json">` + ArticleJsonLD(cfg, m) + `</script>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RenderHead renders HeadTags into a byte slice.
func RenderHead(ctx context.Context, cfg SiteConfig, m PageMeta) ([]byte, error) {
	var buf bytes.Buffer
	if err := HeadTags(cfg, m).Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// headWriter lays out the fragment one tag per line, indented to sit inside <head>.
// Values passed to it are already escaped.
type headWriter struct {
	strings.Builder
	started bool
}

func (b *headWriter) line(s string) {
	if b.started {
		b.WriteString("\n    ")
	}
	b.started = true
	b.WriteString(s)
}

func (b *headWriter) comment(s string) {
	if b.started {
		b.WriteString("\n")
	}
	b.line("<!-- " + s + " -->")
}

func (b *headWriter) meta(attr, key, content string) {
	b.line(`<meta ` + attr + `="` + key + `" content="` + content + `" />`)
}
