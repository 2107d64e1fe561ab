// Package render serves the HTML pages through echo's Renderer hook.
package render

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageIndex   = "index.html"
	PageSuccess = "success.html"
)

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"money": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
		"area":  func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse page templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}
