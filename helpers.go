package ogpress

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// JoinURL appends path segments to base without adding a trailing slash.
func JoinURL(base string, pathSegments ...string) string {
	out := strings.TrimRight(base, "/")
	for _, seg := range pathSegments {
		seg = strings.Trim(seg, "/")
		if seg == "" {
			continue
		}
		out += "/" + seg
	}
	return out
}

// CanonicalURL returns <origin>/<slug>.
func CanonicalURL(origin, slug string) string {
	return JoinURL(origin, slug)
}

// ResolveImageURL returns image unchanged when it is an absolute http(s) URL and
// prefixes it with origin otherwise.
func ResolveImageURL(origin, image string) string {
	if isAbsoluteURL(image) {
		return image
	}
	origin = strings.TrimRight(origin, "/")
	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}
	return origin + image
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	}
	return false
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// EscapeHTML escapes text for use in HTML text nodes and double-quoted attributes.
// Quotes become &quot; rather than the numeric &#34; that html.EscapeString emits.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// ArticleJsonLD returns a schema.org Article JSON-LD document for meta.
func ArticleJsonLD(cfg SiteConfig, meta PageMeta) string {
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      meta.Title,
		"description":   meta.Description,
		"image":         meta.ImageURL,
		"datePublished": meta.PublishDate,
		"dateModified":  meta.PublishDate,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   meta.CanonicalURL,
		},
	}
	if meta.Author != "" {
		person := map[string]string{
			"@type": "Person",
			"name":  meta.Author,
			"url":   cfg.URL,
		}
		data["author"] = person
		data["publisher"] = person
	}
	if len(meta.Tags) > 0 {
		data["keywords"] = JoinTags(meta.Tags)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
