package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/ogpress"
	"github.com/eringen/ogpress/logger"
)

func (c *cli) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the output directory the way the static host does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer c.log.Sync()
			cfg := c.siteConfig()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			e := ogpress.NewPreviewServer(cfg, c.log)
			errCh := make(chan error, 1)
			go func() {
				c.log.Info("serving preview", logger.String("addr", cfg.Addr), logger.String("root", cfg.OutputDir))
				errCh <- e.Start(cfg.Addr)
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :4173)")
	_ = c.v.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
