package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mbolis/intake-form/form"
	"github.com/mbolis/intake-form/lang"
)

func render(t *testing.T, v *View, l lang.Language, submitted bool) string {
	t.Helper()
	var buf bytes.Buffer
	if err := v.Home(&buf, NewHome(form.Intake(), l, "/static/logo.svg", submitted)); err != nil {
		t.Fatalf("Home(%s) error = %v", l, err)
	}
	return buf.String()
}

func TestHomeArabic(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	page := render(t, v, lang.Arabic, false)

	for _, want := range []string{
		`<html lang="ar" dir="rtl">`,
		"معلومات الجامعة",
		"ملاحظات إضافية",
		`name="universityName"`,
		`action="/?lang=ar"`,
		`data-print`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("Arabic page lacks %q", want)
		}
	}
	if strings.Contains(page, "University Information") {
		t.Fatalf("Arabic page also renders the English form")
	}
	if strings.Contains(page, `role="status"`) {
		t.Fatalf("notice rendered without a submission")
	}
}

func TestHomeEnglish(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	page := render(t, v, lang.English, true)

	for _, want := range []string{
		`<html lang="en" dir="ltr">`,
		"University Information",
		"Knowledge Base",
		`value="Reduce caller wait time"`,
		`min="0" max="100"`,
		`role="status"`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("English page lacks %q", want)
		}
	}
	if strings.Contains(page, "معلومات الجامعة") {
		t.Fatalf("English page also renders the Arabic form")
	}
}

func TestYesNoGroupHasNoDefault(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	page := render(t, v, lang.English, false)

	if !strings.Contains(page, `name="hasIVR" value="yes"`) || !strings.Contains(page, `name="hasIVR" value="no"`) {
		t.Fatalf("hasIVR radio pair not rendered")
	}
	if strings.Contains(page, "checked") {
		t.Fatalf("page preselects a choice")
	}
}

func TestRequiredMarkerIsDecorative(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	page := render(t, v, lang.English, false)

	if !strings.Contains(page, `University name <span class="required">*</span>`) {
		t.Fatalf("required marker missing on universityName")
	}
	if strings.Contains(page, " required") {
		t.Fatalf("required attribute rendered, the marker must stay visual")
	}
}

func TestSwitchingBackRendersTheSamePage(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	first := render(t, v, lang.Arabic, false)
	render(t, v, lang.English, false)
	again := render(t, v, lang.Arabic, false)

	if first != again {
		t.Fatalf("Arabic page differs after switching to English and back")
	}
}

func TestStaticServesLogo(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logo.svg", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
