// Package web embeds and renders the board page: the single-page
// grid in templates/index.tmpl plus its app.css/app.js static assets.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

const indexTemplate = "index.tmpl"

// PageData is passed to the board page template.
type PageData struct {
	Title string
}

var page = template.Must(template.ParseFS(assets, "templates/*.tmpl"))

// Render writes the board page to w.
func Render(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "Sudoku"
	}
	return page.ExecuteTemplate(w, indexTemplate, data)
}

// StaticFS returns a file system serving app.css and app.js under
// /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// In practice this should not fail; fall back to empty FS.
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}
