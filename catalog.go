package ogpress

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the ordered, read-only set of posts shared by the client listing
// views and the generator. Build one with LoadCatalog or NewCatalog.
type Catalog struct {
	posts []Post
}

// NewCatalog returns a catalog holding copies of posts in the given order.
func NewCatalog(posts ...Post) *Catalog {
	return &Catalog{posts: clonePosts(posts)}
}

// LoadCatalog reads a catalog from path. YAML and JSON files may hold either a
// sequence of posts or a mapping with a "posts" key; .db, .sqlite and .sqlite3
// paths are opened as a SQLite catalog store.
func LoadCatalog(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("ogpress: open catalog: %w", err)
		}
		s, err := NewStore(path)
		if err != nil {
			return nil, fmt.Errorf("ogpress: open catalog store: %w", err)
		}
		defer s.Close()
		posts, err := s.ListPosts()
		if err != nil {
			return nil, fmt.Errorf("ogpress: read catalog store: %w", err)
		}
		return &Catalog{posts: posts}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ogpress: read catalog: %w", err)
	}
	posts, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("ogpress: parse catalog %s: %w", path, err)
	}
	return &Catalog{posts: posts}, nil
}

// ParseCatalog decodes YAML or JSON catalog data.
func ParseCatalog(data []byte) ([]Post, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, nil
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	var posts []Post
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&posts); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var wrapped struct {
			Posts []Post `yaml:"posts"`
		}
		if err := doc.Decode(&wrapped); err != nil {
			return nil, err
		}
		posts = wrapped.Posts
	default:
		return nil, errors.New("catalog must be a list of posts or a mapping with a posts key")
	}
	return posts, nil
}

// Len returns the number of posts, drafts included.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// Posts returns every post in declaration order.
func (c *Catalog) Posts() []Post {
	return clonePosts(c.posts)
}

// Published returns the posts that are not drafts, in declaration order.
func (c *Catalog) Published() []Post {
	var out []Post
	for _, p := range c.posts {
		if !p.Draft {
			out = append(out, clonePost(p))
		}
	}
	return out
}

// Listing returns published posts ordered by publish date, newest first.
// Posts sharing a date keep their declaration order.
func (c *Catalog) Listing() []Post {
	posts := c.Published()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishDate > posts[j].PublishDate
	})
	return posts
}

// Get returns the published post with the given slug.
func (c *Catalog) Get(slug string) (Post, error) {
	for _, p := range c.posts {
		if p.Slug == slug && !p.Draft {
			return clonePost(p), nil
		}
	}
	return Post{}, ErrNotFound
}

// Tags returns the sorted, deduplicated lowercase tags of published posts.
func (c *Catalog) Tags() []string {
	set := make(map[string]struct{})
	for _, p := range c.posts {
		if p.Draft {
			continue
		}
		for _, t := range p.Tags {
			if t = normalizeTag(t); t != "" {
				set[t] = struct{}{}
			}
		}
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

func clonePost(p Post) Post {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

func clonePosts(posts []Post) []Post {
	if posts == nil {
		return nil
	}
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = clonePost(p)
	}
	return out
}
