package ogpress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
- id: "1"
  title: Hello World
  slug: hello-world
  excerpt: First post
  author: A. Uthor
  publishDate: "2024-01-01"
  readTime: 3
  tags: [Intro, Go]
  image: /img.png
- id: "2"
  title: WIP
  slug: secret
  publishDate: "2024-02-01"
  draft: true
- id: "3"
  title: Later
  slug: later
  publishDate: "2024-03-01"
  tags: [go]
`

func TestParseCatalogSequence(t *testing.T) {
	posts, err := ParseCatalog([]byte(yamlCatalog))
	require.NoError(t, err)
	require.Len(t, posts, 3)

	p := posts[0]
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "hello-world", p.Slug)
	assert.Equal(t, "2024-01-01", p.PublishDate)
	assert.Equal(t, 3, p.ReadTime)
	assert.Equal(t, []string{"Intro", "Go"}, p.Tags)
	assert.False(t, p.Draft)
	assert.True(t, posts[1].Draft)
}

func TestParseCatalogMapping(t *testing.T) {
	posts, err := ParseCatalog([]byte("posts:\n  - id: \"1\"\n    slug: a\n    title: A\n    publishDate: \"2024-01-01\"\n"))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Slug)
}

func TestParseCatalogJSON(t *testing.T) {
	data := `[{"id":"1","slug":"a","title":"A","publishDate":"2024-01-01","tags":["x"],"contentFile":"a.md","draft":false}]`
	posts, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, []string{"x"}, posts[0].Tags)
	assert.Equal(t, "a.md", posts[0].ContentFile)
}

func TestParseCatalogRejectsScalar(t *testing.T) {
	_, err := ParseCatalog([]byte("just a string"))
	assert.Error(t, err)
}

func TestParseCatalogEmpty(t *testing.T) {
	posts, err := ParseCatalog(nil)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalogPublishedExcludesDrafts(t *testing.T) {
	posts, err := ParseCatalog([]byte(yamlCatalog))
	require.NoError(t, err)
	c := NewCatalog(posts...)

	published := c.Published()
	require.Len(t, published, 2)
	assert.Equal(t, "hello-world", published[0].Slug)
	assert.Equal(t, "later", published[1].Slug)
}

func TestCatalogListingNewestFirst(t *testing.T) {
	c := NewCatalog(
		Post{Slug: "a", PublishDate: "2024-01-01"},
		Post{Slug: "b", PublishDate: "2024-03-01"},
		Post{Slug: "c", PublishDate: "2024-01-01"},
		Post{Slug: "d", PublishDate: "2024-05-01", Draft: true},
	)
	var slugs []string
	for _, p := range c.Listing() {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"b", "a", "c"}, slugs)
}

func TestCatalogGet(t *testing.T) {
	posts, err := ParseCatalog([]byte(yamlCatalog))
	require.NoError(t, err)
	c := NewCatalog(posts...)

	p, err := c.Get("later")
	require.NoError(t, err)
	assert.Equal(t, "Later", p.Title)

	_, err = c.Get("secret")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogTags(t *testing.T) {
	posts, err := ParseCatalog([]byte(yamlCatalog))
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "intro"}, NewCatalog(posts...).Tags())
}

func TestCatalogIsNotMutatedByCallers(t *testing.T) {
	src := []Post{{ID: "1", Slug: "a", Tags: []string{"x"}}}
	c := NewCatalog(src...)
	src[0].Tags[0] = "changed"

	got := c.Posts()
	assert.Equal(t, "x", got[0].Tags[0])

	got[0].Tags[0] = "mutated"
	got[0].Slug = "b"
	assert.Equal(t, "x", c.Published()[0].Tags[0])
	assert.Equal(t, "a", c.Published()[0].Slug)
}
