package views

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"time"

	"github.com/MKhiriev/go-agent-console/models"
)

const partialsGlob = "partials/*.html"

// renderer parses page templates together with the shared partials.
type renderer struct {
	templatesFS fs.FS
	basePath    string
	funcs       template.FuncMap
}

func newRenderer(templatesFS fs.FS, basePath string) *renderer {
	r := &renderer{
		templatesFS: templatesFS,
		basePath:    basePath,
	}
	r.funcs = r.templateFuncs()
	return r
}

// parse returns the template set for page, e.g. "chat.html".
func (r *renderer) parse(page string) (*template.Template, error) {
	tmpl, err := template.New(page).Funcs(r.funcs).ParseFS(r.templatesFS, partialsGlob, page)
	if err != nil {
		return nil, fmt.Errorf("parse page template %s: %w", page, err)
	}
	return tmpl, nil
}

func (r *renderer) templateFuncs() template.FuncMap {
	md := newMarkdownRenderer()
	return template.FuncMap{
		"link":       r.link,
		"markdown":   md.Render,
		"formatTime": formatTime,
		"roleClass":  roleClass,
	}
}

// link joins p to the base path the views are served under.
func (r *renderer) link(p string) string {
	return path.Join("/", r.basePath, p)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.TimeOnly)
}

func roleClass(role models.ChatRole) string {
	switch role {
	case models.RoleUser:
		return "message-user"
	case models.RoleAgent:
		return "message-agent"
	case models.RoleError:
		return "message-error"
	default:
		return "message"
	}
}
