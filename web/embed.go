package web

import "embed"

// TemplatesFS embeds the HTML templates for the server-rendered pages.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
