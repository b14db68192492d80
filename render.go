package ogpress

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// renderStatus writes a templ component as an HTML response with the given code.
func renderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// notBuiltPage is shown by the preview server when the output root has no
// application shell yet.
func notBuiltPage(outputDir string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head><meta charset="utf-8" /><title>Not built | ogpress</title></head>
  <body>
    <h1>Nothing to preview</h1>
    <p>`+EscapeHTML(outputDir)+`/index.html does not exist. Run the site build and ogpress generate first.</p>
  </body>
</html>
`)
		return err
	})
}
