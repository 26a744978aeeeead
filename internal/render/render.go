// Package render implements echo.Renderer over the embedded HTML pages.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page carries the fields every page's layout reads.
type Page struct {
	Title   string
	Lang    string
	Flashes []string
}

// Renderer renders named pages wrapped in the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// Ensure Renderer implements echo.Renderer
var _ echo.Renderer = (*Renderer)(nil)

var funcs = template.FuncMap{
	"elapsed": func(d time.Duration) string {
		return d.Round(time.Second).String()
	},
	"datetime": func(t time.Time) string {
		return t.Format("02/01/2006 15:04:05 MST")
	},
}

// New parses every embedded page together with the layout.
func New() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := path.Base(file)
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
