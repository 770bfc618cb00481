// Package web embeds the HTML templates and browser scripts.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strconv"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template. It panics on a malformed template,
// which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"co2":      formatKg,
		"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
		"inc":      func(i int) int { return i + 1 },
		"dec":      func(i int) int { return i - 1 },
	}).ParseFS(templateFS, "templates/*.html"))
}

// Static serves the files under static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// formatKg rounds to grams.
func formatKg(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64) + " kg"
}
