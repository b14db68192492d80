package ogpress

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() SiteConfig {
	return SiteConfig{
		Name:          "Test Site",
		URL:           "https://example.test/",
		Description:   "Site description",
		Author:        "Site Owner",
		TwitterHandle: "owner",
	}.WithDefaults()
}

func TestBuildPageMeta(t *testing.T) {
	cfg := testSite()
	p := Post{
		ID: "1", Slug: "hello-world", Title: "Hello", Excerpt: "Intro",
		Author: "Ann", PublishDate: "2024-01-01", Tags: []string{"a"}, Image: "/img.png",
	}
	m := BuildPageMeta(cfg, p, ImageInfo{Width: 1200, Height: 630})

	assert.Equal(t, PageMeta{
		Title:        "Hello",
		Description:  "Intro",
		CanonicalURL: "https://example.test/hello-world",
		ImageURL:     "https://example.test/img.png",
		ImageWidth:   1200,
		ImageHeight:  630,
		PublishDate:  "2024-01-01",
		Author:       "Ann",
		Tags:         []string{"a"},
	}, m)
}

func TestBuildPageMetaFallbacks(t *testing.T) {
	cfg := testSite()
	m := BuildPageMeta(cfg, Post{ID: "1", Slug: "s", Title: "T", PublishDate: "2024-01-01"}, ImageInfo{})

	assert.Equal(t, "Site Owner", m.Author)
	assert.Equal(t, "Site description", m.Description)
	assert.Equal(t, "https://example.test/og-image.jpg", m.ImageURL)
	assert.Zero(t, m.ImageWidth)
}

func renderHeadDoc(t *testing.T, cfg SiteConfig, m PageMeta) (string, *goquery.Document) {
	t.Helper()
	head, err := RenderHead(context.Background(), cfg, m)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><head>" + string(head) + "</head></html>"))
	require.NoError(t, err)
	return string(head), doc
}

func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).Attr("content")
	return v
}

func TestHeadTags(t *testing.T) {
	cfg := testSite()
	m := BuildPageMeta(cfg, Post{
		ID: "1", Slug: "hello-world", Title: "Hello", Excerpt: "Intro",
		PublishDate: "2024-01-01", Tags: []string{"A", "B", "C"}, Image: "/img.png",
	}, ImageInfo{})
	head, doc := renderHeadDoc(t, cfg, m)

	assert.True(t, strings.HasPrefix(head, "<!-- Primary Meta Tags -->\n    <title>Hello | Test Site</title>"))
	assert.Equal(t, 1, doc.Find("title").Length())

	assert.Equal(t, "Hello", metaContent(doc, `meta[name="title"]`))
	assert.Equal(t, "Intro", metaContent(doc, `meta[name="description"]`))
	assert.Equal(t, "Site Owner", metaContent(doc, `meta[name="author"]`))
	assert.Equal(t, "A, B, C", metaContent(doc, `meta[name="keywords"]`))
	assert.Equal(t, "index, follow", metaContent(doc, `meta[name="robots"]`))
	href, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://example.test/hello-world", href)

	assert.Equal(t, "article", metaContent(doc, `meta[property="og:type"]`))
	assert.Equal(t, "https://example.test/hello-world", metaContent(doc, `meta[property="og:url"]`))
	assert.Equal(t, "Hello", metaContent(doc, `meta[property="og:title"]`))
	assert.Equal(t, "Intro", metaContent(doc, `meta[property="og:description"]`))
	assert.Equal(t, "https://example.test/img.png", metaContent(doc, `meta[property="og:image"]`))
	assert.Equal(t, "Test Site", metaContent(doc, `meta[property="og:site_name"]`))
	assert.Equal(t, "2024-01-01", metaContent(doc, `meta[property="article:published_time"]`))
	assert.Equal(t, "Site Owner", metaContent(doc, `meta[property="article:author"]`))
	assert.Equal(t, 0, doc.Find(`meta[property="og:image:width"]`).Length())

	var tags []string
	doc.Find(`meta[property="article:tag"]`).Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("content")
		tags = append(tags, v)
	})
	assert.Equal(t, []string{"A", "B", "C"}, tags)

	assert.Equal(t, "summary_large_image", metaContent(doc, `meta[name="twitter:card"]`))
	assert.Equal(t, "https://example.test/hello-world", metaContent(doc, `meta[name="twitter:url"]`))
	assert.Equal(t, "Hello", metaContent(doc, `meta[name="twitter:title"]`))
	assert.Equal(t, "Intro", metaContent(doc, `meta[name="twitter:description"]`))
	assert.Equal(t, "https://example.test/img.png", metaContent(doc, `meta[name="twitter:image"]`))
	assert.Equal(t, "@owner", metaContent(doc, `meta[name="twitter:creator"]`))

	assert.Equal(t, 1, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestHeadTagsOptionalTags(t *testing.T) {
	cfg := testSite()
	cfg.TwitterHandle = ""
	m := BuildPageMeta(cfg, Post{ID: "1", Slug: "s", Title: "T", PublishDate: "2024-01-01"}, ImageInfo{Width: 800, Height: 400})
	_, doc := renderHeadDoc(t, cfg, m)

	assert.Equal(t, 0, doc.Find(`meta[name="twitter:creator"]`).Length())
	assert.Equal(t, 0, doc.Find(`meta[property="article:tag"]`).Length())
	assert.Equal(t, "", metaContent(doc, `meta[name="keywords"]`))
	assert.Equal(t, "800", metaContent(doc, `meta[property="og:image:width"]`))
	assert.Equal(t, "400", metaContent(doc, `meta[property="og:image:height"]`))
}

func TestHeadTagsEscapesUserText(t *testing.T) {
	cfg := testSite()
	m := BuildPageMeta(cfg, Post{
		ID: "1", Slug: "s", Title: `<b>"Bold"</b> & co`, Excerpt: `It's "quoted"`,
		PublishDate: "2024-01-01", Tags: []string{`a"b`},
	}, ImageInfo{})
	head, doc := renderHeadDoc(t, cfg, m)

	assert.Contains(t, head, `<title>&lt;b&gt;&quot;Bold&quot;&lt;/b&gt; &amp; co | Test Site</title>`)
	assert.Contains(t, head, `content="It&#39;s &quot;quoted&quot;"`)
	assert.Contains(t, head, `<meta property="article:tag" content="a&quot;b" />`)
	assert.NotContains(t, head, "&#34;")

	assert.Equal(t, `<b>"Bold"</b> & co`, metaContent(doc, `meta[property="og:title"]`))
	assert.Equal(t, 0, doc.Find("b").Length())
}
