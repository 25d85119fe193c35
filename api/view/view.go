package view

import (
	"embed"
	"html/template"

	"github.com/valyala/fasthttp"

	"github.com/taskdeck/web/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates directly into the response.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

// DashboardData feeds the dashboard template with the logged-in user and
// their tasks, most recent first.
type DashboardData struct {
	User  domain.SessionUser
	Tasks []domain.Task
}

// Render writes the named template to the response with a text/html content type.
func (r *Renderer) Render(ctx *fasthttp.RequestCtx, name string, data interface{}) error {
	ctx.SetContentType("text/html; charset=utf-8")
	return r.templates.ExecuteTemplate(ctx, name, data)
}
