package ogpress

// Post is one blog article in the catalog.
type Post struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Slug        string   `yaml:"slug" json:"slug"`
	Excerpt     string   `yaml:"excerpt" json:"excerpt"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	PublishDate string   `yaml:"publishDate" json:"publishDate"`
	ReadTime    int      `yaml:"readTime,omitempty" json:"readTime,omitempty"`
	Tags        []string `yaml:"tags" json:"tags"`
	Featured    bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
	Image       string   `yaml:"image,omitempty" json:"image,omitempty"`
	Draft       bool     `yaml:"draft,omitempty" json:"draft,omitempty"`

	// Content and ContentFile belong to the client renderer; ogpress never reads them.
	Content     string `yaml:"content,omitempty" json:"content,omitempty"`
	ContentFile string `yaml:"contentFile,omitempty" json:"contentFile,omitempty"`
}

// PageMeta is the metadata derived for one post during a generation run.
// It is built fresh per post and discarded once the page is written.
type PageMeta struct {
	Title        string
	Description  string
	CanonicalURL string // canonical link, og:url, twitter:url
	ImageURL     string // absolute og:image / twitter:image
	ImageWidth   int    // 0 when unknown
	ImageHeight  int
	PublishDate  string
	Author       string
	Tags         []string
}

// Page records one written output file.
type Page struct {
	Slug     string
	Path     string
	ImageURL string
	Post     Post
}

// Failure records a post that was skipped or could not be written.
type Failure struct {
	ID      string
	Slug    string
	Defects []Defect
	Err     error
}

// Report summarizes a generation run.
type Report struct {
	Generated []Page
	Failed    []Failure
}

// Err returns ErrPostsFailed when at least one post failed, nil otherwise.
func (r Report) Err() error {
	if len(r.Failed) > 0 {
		return ErrPostsFailed
	}
	return nil
}
