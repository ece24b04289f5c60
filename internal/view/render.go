package view

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/sakif/portfolio/web"
)

// Renderer writes a Document as a complete HTML page.
//
// Templates are parsed once from the embedded web/templates directory and
// reused for every render.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"css":   func(s string) template.CSS { return template.CSS(s) },
		"icon":  icon,
		"years": formatYears,
	}).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parsing templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render writes doc to w.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	if err := r.templates.ExecuteTemplate(w, "base", doc); err != nil {
		return fmt.Errorf("view: rendering document: %w", err)
	}
	return nil
}

func formatYears(y float64) string {
	switch {
	case y == 1:
		return "1 year"
	case y < 1:
		return strconv.Itoa(int(y*12+0.5)) + " months"
	default:
		return strconv.FormatFloat(y, 'f', -1, 64) + " years"
	}
}
