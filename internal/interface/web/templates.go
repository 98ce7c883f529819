package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"todo-service/internal/application/common"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/base.layout.html"

type HTMLData struct {
	Title       string
	Path        string
	Flashes     []Flash
	Errors      map[string][]string
	Form        map[string]string
	CurrentUser *common.UserResult
	Task        *common.TaskResult
	Tasks       []*common.TaskResult
	Status      int
	Message     string
}

var functions = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"alertClass": func(category string) string {
		switch category {
		case "success", "danger", "info", "warning":
			return "alert-" + category
		}
		return "alert-secondary"
	},
}

// TemplateRenderer holds one parsed set per page, each paired with the base layout.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.page.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".page.html")
		ts, err := template.New(name).Funcs(functions).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		pages[name] = ts
	}
	return &TemplateRenderer{pages: pages}, nil
}

func (app *App) render(c echo.Context, status int, page string, data *HTMLData) error {
	if data == nil {
		data = &HTMLData{}
	}
	data.Path = c.Request().URL.Path
	if data.CurrentUser == nil {
		data.CurrentUser = currentUser(c)
	}
	data.Flashes = app.popFlashes(c)
	return c.Render(status, page, data)
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	ts, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q does not exist", name)
	}
	return ts.ExecuteTemplate(w, "base", data)
}
