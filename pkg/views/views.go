// Package views renders the admissions page.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"

	"github.com/digitalocean/admissions-form/pkg/models"
	"github.com/digitalocean/admissions-form/pkg/services"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	SuccessMessage = "Thanks! We’ll contact you within 24 hours."
	SubmitLabel    = "Request Callback"
	LoadingLabel   = "Submitting…"
	FormPath       = "/admissions"
)

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("admissions").ParseFS(templateFS, "templates/*.html"))
}

// FormView is the data the form template renders.
type FormView struct {
	services.FormState
	Prefill services.Prefill
}

func (v FormView) Cities() []string    { return models.Cities }
func (v FormView) AgeGroups() []string { return models.AgeGroups }
func (v FormView) HowHeard() []string  { return models.HowHeard }

func (v FormView) SuccessMessage() string { return SuccessMessage }
func (v FormView) LoadingLabel() string   { return LoadingLabel }

// ButtonLabel is the submit button text for the current state.
func (v FormView) ButtonLabel() string {
	if v.Loading {
		return LoadingLabel
	}
	return SubmitLabel
}

// Action posts back to the form page, keeping the prefill so a reset after
// success restores it.
func (v FormView) Action() string {
	if v.Prefill.PreferredCity == "" {
		return FormPath
	}
	q := url.Values{services.PreferredCityParam: {v.Prefill.PreferredCity}}
	return FormPath + "?" + q.Encode()
}

func (v FormView) Value(name string) string { return v.Values.Get(name) }

func (v FormView) Selected(name, option string) bool { return v.Values.Get(name) == option }

func (v FormView) Checked(name string) bool { return v.Values.Checked(name) }

func (v FormView) FieldError(name string) string { return v.FieldErrors[name] }

// Page is the data the page template renders.
type Page struct {
	Form template.HTML
}

// Boundary renders the form section, falling back to the placeholder when
// the form cannot be rendered, so the rest of the page still loads.
func Boundary(tmpl *template.Template, view FormView) (template.HTML, error) {
	var buf bytes.Buffer
	formErr := tmpl.ExecuteTemplate(&buf, "form", view)
	if formErr == nil {
		return template.HTML(buf.String()), nil
	}

	buf.Reset()
	if err := tmpl.ExecuteTemplate(&buf, "placeholder", nil); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), formErr
}
