package ogpress

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Defect is one problem found in a post record.
type Defect struct {
	Field   string
	Message string
}

func (d Defect) String() string {
	return d.Field + ": " + d.Message
}

// slugPattern admits a single path component: no separators, no whitespace, no
// leading dot.
var slugPattern = regexp.MustCompile(`^[^./\\\s][^/\\\s]*$`)

// ValidatePost checks p and returns its defects sorted by field. A post with no
// defects is safe to generate.
func ValidatePost(p Post) []Defect {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug,
			validation.Required,
			validation.Match(slugPattern).Error("must be a single path component without separators, whitespace or a leading dot"),
		),
		validation.Field(&p.PublishDate, validation.Required, validation.By(isoDate)),
		validation.Field(&p.Image, validation.By(imageRef)),
		validation.Field(&p.Tags, validation.Each(validation.Required.Error("tag cannot be blank"))),
	)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []Defect{{Field: "post", Message: err.Error()}}
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	defects := make([]Defect, 0, len(fields))
	for _, f := range fields {
		defects = append(defects, Defect{Field: f, Message: errs[f].Error()})
	}
	return defects
}

func isoDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return nil
	}
	return errors.New("must be an ISO-8601 date (YYYY-MM-DD or RFC 3339)")
}

func imageRef(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return errors.New("must not contain whitespace")
	}
	if i := strings.Index(s, "://"); i >= 0 && !isAbsoluteURL(s) {
		return fmt.Errorf("unsupported URL scheme %q", s[:i])
	}
	return nil
}

// Validate checks every published post and returns the defects keyed by slug
// (or by id when the slug is empty). Every occurrence of a slug after the first
// is reported as a duplicate.
func (c *Catalog) Validate() map[string][]Defect {
	out := make(map[string][]Defect)
	seen := make(map[string]bool)
	for _, p := range c.Published() {
		defects := ValidatePost(p)
		if p.Slug != "" {
			if seen[p.Slug] {
				defects = append(defects, duplicateSlug(p.Slug))
			}
			seen[p.Slug] = true
		}
		if len(defects) == 0 {
			continue
		}
		key := p.Slug
		if key == "" {
			key = "id:" + p.ID
		}
		out[key] = append(out[key], defects...)
	}
	return out
}

func duplicateSlug(slug string) Defect {
	return Defect{Field: "slug", Message: fmt.Sprintf("duplicate slug %q", slug)}
}
