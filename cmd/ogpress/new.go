package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/ogpress"
	"github.com/eringen/ogpress/scaffold"
)

// postStub holds the template variables of the new-post scaffold.
type postStub struct {
	ID          string
	Title       string
	Slug        string
	Author      string
	PublishDate string
}

func (c *cli) newCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Print a draft catalog entry for a new post",
		Long: `Print a YAML catalog entry for a new post: next free id, slug derived from the
title, today's date and draft: true. Paste it into the catalog and fill in the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.siteConfig()

			var posts []ogpress.Post
			catalog, err := ogpress.LoadCatalog(cfg.CatalogPath)
			switch {
			case err == nil:
				posts = catalog.Posts()
			case !errors.Is(err, os.ErrNotExist):
				return err
			}

			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			stub := postStub{
				ID:          nextID(posts),
				Title:       args[0],
				Slug:        ogpress.Slugify(args[0]),
				Author:      cfg.Author,
				PublishDate: date,
			}
			if stub.Slug == "" {
				return fmt.Errorf("cannot derive a slug from %q", args[0])
			}
			return renderStub(cmd.OutOrStdout(), stub)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "publish date, YYYY-MM-DD (default today)")
	return cmd
}

func renderStub(w io.Writer, stub postStub) error {
	tmpl, err := template.ParseFS(scaffold.Templates, "templates/post.yaml.tmpl")
	if err != nil {
		return fmt.Errorf("parse scaffold: %w", err)
	}
	return tmpl.Execute(w, stub)
}

// nextID returns one more than the largest numeric id, or the post count plus one
// when no id is numeric.
func nextID(posts []ogpress.Post) string {
	highest := 0
	for _, p := range posts {
		if n, err := strconv.Atoi(p.ID); err == nil && n > highest {
			highest = n
		}
	}
	if highest == 0 {
		highest = len(posts)
	}
	return strconv.Itoa(highest + 1)
}
