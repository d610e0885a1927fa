package routes

import (
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/mbolis/intake-form/app"
	"github.com/mbolis/intake-form/httpx"
	"github.com/mbolis/intake-form/lang"
	"github.com/mbolis/intake-form/log"
	"github.com/mbolis/intake-form/model"
	"github.com/mbolis/intake-form/view"
)

func Home(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := lang.FromContext(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "home.lang_state", err)
			return
		}
		l := state.Language()

		data := view.NewHome(app.Form, l, app.LogoURL, r.URL.Query().Get("submitted") == "1")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Language", string(l))
		err = app.View.Home(w, data)
		if err != nil {
			httpx.LogInternalError(w, r, "home.render", err)
			return
		}
		app.Metrics.PageViews.WithLabelValues(string(l)).Inc()
	}
}

// Submit receives the browser form post and sends the user back to the page
// they came from.
func Submit(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := receive(app, w, r)
		if !ok {
			return
		}

		target := url.URL{Path: "/", RawQuery: url.Values{
			"lang":      {string(sub.Lang)},
			"submitted": {"1"},
		}.Encode()}
		http.Redirect(w, r, target.String(), http.StatusSeeOther)
	}
}

// PublicSubmit is Submit for scripts: same form encoding in, JSON out.
func PublicSubmit(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := receive(app, w, r)
		if !ok {
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id":     sub.ID,
			"lang":   sub.Lang,
			"fields": sub.Fields,
		})
	}
}

func receive(app app.App, w http.ResponseWriter, r *http.Request) (sub model.Submission, ok bool) {
	state, err := lang.FromContext(r.Context())
	if err != nil {
		httpx.LogInternalError(w, r, "submit.lang_state", err)
		return
	}

	err = r.ParseForm()
	if err != nil {
		httpx.LogStatus(w, r, http.StatusBadRequest, log.DebugLevel, "request.parse_form")
		return
	}

	sub = model.Submission{
		ID:     uuid.NewString(),
		Time:   time.Now().UTC(),
		IP:     clientIP(r),
		Lang:   state.Language(),
		Fields: model.Collect(app.Form, r.PostForm),
	}
	app.Metrics.Submissions.WithLabelValues(string(sub.Lang)).Inc()

	// the log line is always written first, a failing archive does not
	// cost the user their submission
	err = app.Reporter.Report(r.Context(), sub)
	if err != nil {
		app.Metrics.ReportFailures.Inc()
		log.WithField("submission_id", sub.ID).Errorf("submit.report: %s", err)
	}

	return sub, true
}

// clientIP strips the port, middleware.RealIP may already have.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
