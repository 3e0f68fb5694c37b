// Package web embeds the HTML page and static assets served at / and /static.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.html static
var assets embed.FS

// Templates parses the embedded HTML templates
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"upper": strings.ToUpper,
	}).ParseFS(assets, "templates/*.html"))
}

// Static returns the embedded static directory as an http.FileSystem
func Static() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return http.FS(sub)
}

// Favicon returns the embedded favicon
func Favicon() ([]byte, error) {
	return assets.ReadFile("static/favicon.svg")
}
