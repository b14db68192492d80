package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/eringen/ogpress"
	"github.com/eringen/ogpress/logger"
)

func (c *cli) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and the HTML shell without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer c.log.Sync()
			cfg := c.siteConfig()

			catalog, err := ogpress.LoadCatalog(cfg.CatalogPath)
			if err != nil {
				return err
			}
			problems := catalog.Validate()
			keys := make([]string, 0, len(problems))
			for k := range problems {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				for _, d := range problems[k] {
					c.log.Warn("invalid post",
						logger.String("post", k),
						logger.String("field", d.Field),
						logger.String("defect", d.Message))
				}
			}

			_, shellErr := ogpress.LoadShell(cfg.TemplatePath)
			if shellErr != nil {
				c.log.Error("template unusable", logger.String("path", cfg.TemplatePath), logger.Error(shellErr))
			}

			published := len(catalog.Published())
			fmt.Fprintf(cmd.OutOrStdout(), "%d post(s), %d published, %d with defects.\n",
				catalog.Len(), published, len(problems))
			switch {
			case shellErr != nil:
				return shellErr
			case len(problems) > 0:
				return fmt.Errorf("%w: %d invalid", ogpress.ErrPostsFailed, len(problems))
			}
			return nil
		},
	}
}
