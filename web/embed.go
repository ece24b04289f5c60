// Package web embeds the page templates and the static files served next to
// the rendered document.
package web

import "embed"

// Templates holds templates/*.html.
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds the stylesheet and the browser script under static/.
//
//go:embed static
var Static embed.FS
