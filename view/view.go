// Package view renders the intake page from a localized form definition.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/mbolis/intake-form/form"
	"github.com/mbolis/intake-form/lang"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page chrome that is not part of the questionnaire itself.
var (
	brandText  = form.Text{AR: "مساعد المكالمات الذكي", EN: "AI Call Assistant"}
	submitText = form.Text{AR: "إرسال", EN: "Submit"}
	printText  = form.Text{AR: "طباعة / حفظ PDF", EN: "Print / Save as PDF"}
	thanksText = form.Text{AR: "شكراً لكم، تم استلام النموذج.", EN: "Thank you, the form was received."}
	toggleText = map[lang.Language]string{lang.Arabic: "العربية", lang.English: "English"}
)

type Toggle struct {
	Lang   lang.Language
	Label  string
	Active bool
}

type Home struct {
	Form      form.Page
	Brand     string
	LogoURL   string
	Toggles   []Toggle
	Submit    string
	Print     string
	Thanks    string
	Submitted bool
}

// NewHome prepares the page for l. Exactly one localized form is carried.
func NewHome(def form.Definition, l lang.Language, logoURL string, submitted bool) Home {
	h := Home{
		Form:      def.Localize(l),
		Brand:     brandText.In(l),
		LogoURL:   logoURL,
		Submit:    submitText.In(l),
		Print:     printText.In(l),
		Thanks:    thanksText.In(l),
		Submitted: submitted,
	}
	for _, other := range lang.All {
		h.Toggles = append(h.Toggles, Toggle{Lang: other, Label: toggleText[other], Active: other == l})
	}
	return h
}

type View struct {
	tmpl *template.Template
}

func New() (*View, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"deref": deref}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &View{tmpl: tmpl}, nil
}

// Home renders the whole page to w. It buffers first so that a template
// error never leaves a half written page.
func (v *View) Home(w io.Writer, data Home) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, "home", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet and logo.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
