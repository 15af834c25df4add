// Package web holds the embedded HTML template and static assets for the
// upload form.
package web

import "embed"

//go:embed templates/index.html
var Templates embed.FS

//go:embed static
var Static embed.FS
