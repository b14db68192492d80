package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/ogpress"
	"github.com/eringen/ogpress/logger"
)

func (c *cli) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalog-file> <database>",
		Short: "Copy a YAML or JSON catalog into a SQLite catalog store",
		Long: `Replace the contents of a SQLite catalog store with the posts of a YAML or
JSON catalog, keeping their order. Point --catalog at the database afterwards.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer c.log.Sync()
			catalog, err := ogpress.LoadCatalog(args[0])
			if err != nil {
				return err
			}
			store, err := ogpress.NewStore(args[1])
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			if err := store.SavePosts(catalog.Posts()); err != nil {
				return fmt.Errorf("save posts: %w", err)
			}
			c.log.Info("imported catalog",
				logger.String("from", args[0]),
				logger.String("to", args[1]),
				logger.Int("posts", catalog.Len()))
			return nil
		},
	}
}
