package ogpress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eringen/ogpress/logger"
)

// Generator writes one static page per published post.
type Generator struct {
	cfg    SiteConfig
	log    logger.Logger
	images *ImageProber
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-post and summary output.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// WithImageProber overrides the prober built from SiteConfig.PublicDir.
func WithImageProber(p *ImageProber) Option {
	return func(g *Generator) {
		g.images = p
	}
}

// NewGenerator creates a Generator for cfg. Defaults are applied to cfg.
func NewGenerator(cfg SiteConfig, opts ...Option) *Generator {
	cfg.setDefaults()
	g := &Generator{
		cfg:    cfg,
		log:    logger.NewNop(),
		images: NewImageProber(cfg.PublicDir),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the generator's effective configuration.
func (g *Generator) Config() SiteConfig {
	return g.cfg
}

// Generate renders every published post of c into
// <OutputDir>/<slug>/index.html.
//
// The shell is loaded once up front; if that fails nothing is written and the
// error is returned. Posts that fail validation or cannot be written are
// recorded in Report.Failed and the run continues with the next post.
func (g *Generator) Generate(ctx context.Context, c *Catalog) (Report, error) {
	var report Report

	shell, err := LoadShell(g.cfg.TemplatePath)
	if err != nil {
		g.log.Error("cannot load template", logger.String("path", g.cfg.TemplatePath), logger.Error(err))
		return report, fmt.Errorf("ogpress: %w", err)
	}

	posts := c.Published()
	g.log.Info("generating pages",
		logger.Int("posts", len(posts)),
		logger.String("template", g.cfg.TemplatePath),
		logger.String("output", g.cfg.OutputDir))

	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		defects := ValidatePost(p)
		if p.Slug != "" {
			if seen[p.Slug] {
				defects = append(defects, duplicateSlug(p.Slug))
			}
			seen[p.Slug] = true
		}
		if len(defects) > 0 {
			g.log.Warn("skipping invalid post",
				logger.String("id", p.ID),
				logger.String("slug", p.Slug),
				logger.Strings("defects", defectStrings(defects)))
			report.Failed = append(report.Failed, Failure{ID: p.ID, Slug: p.Slug, Defects: defects})
			continue
		}

		page, err := g.writePage(ctx, shell, p)
		if err != nil {
			g.log.Error("cannot write page",
				logger.String("id", p.ID),
				logger.String("slug", p.Slug),
				logger.Error(err))
			report.Failed = append(report.Failed, Failure{ID: p.ID, Slug: p.Slug, Err: err})
			continue
		}
		g.log.Info("generated page",
			logger.String("slug", page.Slug),
			logger.String("path", page.Path),
			logger.String("image", page.ImageURL))
		report.Generated = append(report.Generated, page)
	}

	if g.cfg.Sitemap {
		path, err := WriteSitemap(g.cfg, report.Generated)
		if err != nil {
			return report, fmt.Errorf("ogpress: write sitemap: %w", err)
		}
		g.log.Info("wrote sitemap", logger.String("path", path))
	}
	if g.cfg.Feed {
		path, err := WriteFeed(g.cfg, report.Generated)
		if err != nil {
			return report, fmt.Errorf("ogpress: write feed: %w", err)
		}
		g.log.Info("wrote feed", logger.String("path", path))
	}

	g.log.Info("generation complete",
		logger.Int("generated", len(report.Generated)),
		logger.Int("failed", len(report.Failed)))
	return report, nil
}

func (g *Generator) writePage(ctx context.Context, shell *Shell, p Post) (Page, error) {
	imageRef := p.Image
	if imageRef == "" {
		imageRef = g.cfg.DefaultImage
	}
	info, err := g.images.Probe(imageRef)
	if err != nil {
		g.log.Debug("image dimensions unavailable", logger.String("image", imageRef), logger.Error(err))
	}

	meta := BuildPageMeta(g.cfg, p, info)
	head, err := RenderHead(ctx, g.cfg, meta)
	if err != nil {
		return Page{}, fmt.Errorf("render head: %w", err)
	}

	dir := filepath.Join(g.cfg.OutputDir, p.Slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Page{}, err
	}
	path := filepath.Join(dir, "index.html")
	if err := writeFileReplace(path, shell.Render(head)); err != nil {
		return Page{}, err
	}
	return Page{Slug: p.Slug, Path: path, ImageURL: meta.ImageURL, Post: p}, nil
}

// writeFileReplace writes data to a temporary file next to path and renames it
// into place, so a failed write never leaves a truncated page behind.
func writeFileReplace(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".ogpress-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func defectStrings(defects []Defect) []string {
	out := make([]string, len(defects))
	for i, d := range defects {
		out[i] = d.String()
	}
	return out
}
