// Package ogpress generates static, crawler-friendly HTML pages for the posts of a
// single-page blog. Each published post gets <output>/<slug>/index.html: the
// compiled application shell with its <title> element swapped for post-specific
// Open Graph, Twitter Card and article metadata, so link-preview crawlers that do
// not run JavaScript still see the right title, description and image.
//
// The catalog is an explicitly loaded, read-only value (see LoadCatalog) and the
// Generator is a one-shot batch: load shell, validate, render, write.
package ogpress

import "errors"

var (
	// ErrTemplateMissing is returned when the compiled HTML shell cannot be read.
	ErrTemplateMissing = errors.New("template missing")
	// ErrNoTitle is returned when the shell has no <title> element.
	ErrNoTitle = errors.New("template has no <title> element")
	// ErrMultipleTitles is returned when the shell has more than one <title> element.
	ErrMultipleTitles = errors.New("template has more than one <title> element")
	// ErrPostsFailed is returned by Report.Err when at least one post was not generated.
	ErrPostsFailed = errors.New("one or more posts failed")
	// ErrNotFound is returned by catalog lookups for an unknown slug.
	ErrNotFound = errors.New("post not found")
)
