package ogpress

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/eringen/ogpress/logger"
)

// NewPreviewServer returns an Echo instance that serves cfg.OutputDir the way the
// static host does: /<slug> and /<slug>/ resolve to <slug>/index.html, other
// existing files are served as-is, and everything else falls back to the
// application shell at index.html.
func NewPreviewServer(cfg SiteConfig, log logger.Logger) *echo.Echo {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	setupPreviewMiddleware(e, log)

	h := &previewHandler{root: cfg.OutputDir}
	e.Match([]string{http.MethodGet, http.MethodHead}, "/*", h.serve)
	return e
}

type previewHandler struct {
	root string
}

func (h *previewHandler) serve(c echo.Context) error {
	local := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+c.Request().URL.Path)))

	fi, err := os.Stat(local)
	switch {
	case err == nil && fi.IsDir():
		index := filepath.Join(local, "index.html")
		if _, err := os.Stat(index); err == nil {
			return c.File(index)
		}
	case err == nil:
		return c.File(local)
	}

	shell := filepath.Join(h.root, "index.html")
	if _, err := os.Stat(shell); err != nil {
		return renderStatus(c, http.StatusNotFound, notBuiltPage(h.root))
	}
	return c.File(shell)
}
