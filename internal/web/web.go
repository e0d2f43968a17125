// Package web embeds the single-page analyzer UI.
package web

import (
	"embed"
	"html/template"
)

//go:embed index.html
var files embed.FS

// IndexData parameterizes the UI page.
type IndexData struct {
	MaxURLs int
}

// Index is the parsed UI page template.
var Index = template.Must(template.ParseFS(files, "index.html"))
