package views

import (
	"bytes"
	"embed"
	"fmt"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/exceptions"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

const (
	PageSignIn    = "signin.html"
	PageDashboard = "dashboard.html"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

type SignInPage struct {
	Texts dashboard.Texts
	Email string
	From  string
	Error string
}

type DashboardPage struct {
	User models.User
	View dashboard.View
}

type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format(constvars.DateLayout)
	},
	"month": func(t time.Time) string {
		return t.Format(constvars.MonthLayout)
	},
}

func NewRenderer() (*Renderer, error) {
	renderer := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageSignIn, PageDashboard} {
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFiles, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		renderer.pages[page] = tmpl
	}
	return renderer, nil
}

// Render executes page into a buffer first so a template error can still be
// answered with a clean error response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return exceptions.ErrRenderTemplate(fmt.Errorf("unknown page"), page)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return exceptions.ErrRenderTemplate(err, page)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
