// Package templates embeds the HTML pages rendered by the handlers.
package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed *.html blog/*.html auth/*.html
var files embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
}

// Parse compiles every page. Page names follow their directory, e.g.
// "blog/index" or "auth/login".
func Parse() (*template.Template, error) {
	return template.New("jobboard").Funcs(funcs).ParseFS(files, "*.html", "blog/*.html", "auth/*.html")
}
