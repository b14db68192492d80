package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/ogpress"
)

func (c *cli) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one static page per published post",
		Long: `Load the catalog and the compiled HTML shell, then write
<output>/<slug>/index.html for every published post. Invalid posts are skipped
and reported; the command exits nonzero if the shell is missing or any post failed.`,
		Args: cobra.NoArgs,
		RunE: c.runGenerate,
	}
	flags := cmd.Flags()
	flags.Bool("sitemap", false, "also write sitemap.xml")
	flags.Bool("feed", false, "also write feed.xml")
	flags.String("public", "", "static asset root used to read image dimensions")
	_ = c.v.BindPFlag("discovery.sitemap", flags.Lookup("sitemap"))
	_ = c.v.BindPFlag("discovery.feed", flags.Lookup("feed"))
	_ = c.v.BindPFlag("paths.public", flags.Lookup("public"))
	return cmd
}

func (c *cli) runGenerate(cmd *cobra.Command, _ []string) error {
	defer c.log.Sync()
	cfg := c.siteConfig()

	catalog, err := ogpress.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	gen := ogpress.NewGenerator(cfg, ogpress.WithLogger(c.log))
	report, err := gen.Generate(cmd.Context(), catalog)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d page(s), %d failed.\n", len(report.Generated), len(report.Failed))
	if err := report.Err(); err != nil {
		return fmt.Errorf("%w: %d of %d", err, len(report.Failed), len(report.Failed)+len(report.Generated))
	}
	return nil
}
