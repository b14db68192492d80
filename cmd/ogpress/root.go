package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/ogpress"
	"github.com/eringen/ogpress/logger"
)

// cli carries state shared by every subcommand once the root pre-run has loaded
// configuration.
type cli struct {
	cfgFile string
	v       *viper.Viper
	log     logger.Logger
}

func newRootCommand() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "ogpress",
		Short: "Generate crawler-friendly static pages for blog posts",
		Long: `ogpress reads the post catalog and the compiled HTML shell of the site and
writes <output>/<slug>/index.html for every published post, with Open Graph and
Twitter Card metadata in place of the shell's <title>.

Run it after the front-end build. With no subcommand it runs "generate".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runGenerate,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default ./ogpress.yaml if present)")
	flags.String("template", "", "compiled HTML shell (default dist/index.html)")
	flags.String("output", "", "output root (default dist)")
	flags.String("catalog", "", "post catalog: YAML, JSON or SQLite (default content/posts.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	_ = c.v.BindPFlag("paths.template", flags.Lookup("template"))
	_ = c.v.BindPFlag("paths.output", flags.Lookup("output"))
	_ = c.v.BindPFlag("paths.catalog", flags.Lookup("catalog"))
	_ = c.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		c.generateCommand(),
		c.validateCommand(),
		c.importCommand(),
		c.serveCommand(),
		c.newCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the ogpress version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ogpress %s\n", version)
			},
		},
	)
	return root
}

// setup loads .env files, the optional config file and OGPRESS_* environment
// variables, then builds the logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	c.v.SetEnvPrefix("OGPRESS")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()
	c.v.SetDefault("log.level", "info")
	c.v.SetDefault("log.format", "console")

	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		c.v.SetConfigName("ogpress")
		c.v.SetConfigType("yaml")
		c.v.AddConfigPath(".")
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	log, err := logger.New(logger.Config{
		Level:  c.v.GetString("log.level"),
		Format: c.v.GetString("log.format"),
	})
	if err != nil {
		return err
	}
	c.log = log
	return nil
}

func (c *cli) siteConfig() ogpress.SiteConfig {
	v := c.v
	return ogpress.SiteConfig{
		Name:          v.GetString("site.name"),
		URL:           v.GetString("site.url"),
		Description:   v.GetString("site.description"),
		Author:        v.GetString("site.author"),
		DefaultImage:  v.GetString("site.default_image"),
		TwitterHandle: v.GetString("site.twitter_handle"),
		TemplatePath:  v.GetString("paths.template"),
		OutputDir:     v.GetString("paths.output"),
		CatalogPath:   v.GetString("paths.catalog"),
		PublicDir:     v.GetString("paths.public"),
		Sitemap:       v.GetBool("discovery.sitemap"),
		Feed:          v.GetBool("discovery.feed"),
		Addr:          v.GetString("serve.addr"),
	}.WithDefaults()
}
