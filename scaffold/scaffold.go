// Package scaffold provides the embedded templates used by the ogpress CLI to
// stub out new catalog entries.
package scaffold

import "embed"

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
