package view

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns entity lists and outcomes into container markup.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("flighthub").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WrapFail(err, "parse templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNewRenderer is NewRenderer for callers that treat broken templates as a
// programming error.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Flights(flights []models.Flight) (template.HTML, error) {
	return r.exec("flights", flights)
}

func (r *Renderer) Airports(airports []models.Airport) (template.HTML, error) {
	return r.exec("airports", airports)
}

func (r *Renderer) Airlines(airlines []models.Airline) (template.HTML, error) {
	return r.exec("airlines", airlines)
}

func (r *Renderer) Aircraft(aircraft []models.Airplane) (template.HTML, error) {
	return r.exec("aircraft", aircraft)
}

func (r *Renderer) Empty(msg string) template.HTML {
	out, err := r.exec("empty", msg)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(msg))
	}
	return out
}

func (r *Renderer) Error(msg string) template.HTML {
	out, err := r.exec("error", msg)
	if err != nil {
		return template.HTML("Error: " + template.HTMLEscapeString(msg))
	}
	return out
}

// Page renders the dashboard shell.
func (r *Renderer) Page(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, "page", data)
	if err != nil {
		return nil, errors.WrapFail(err, "render page")
	}
	return buf.Bytes(), nil
}

func (r *Renderer) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, name, data)
	if err != nil {
		return "", errors.WrapFailf(err, "render %s", name)
	}
	return template.HTML(buf.String()), nil
}
