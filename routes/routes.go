package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/mbolis/intake-form/app"
	"github.com/mbolis/intake-form/lang"
	"github.com/mbolis/intake-form/routes/middlewares"
	"github.com/mbolis/intake-form/view"
)

func Wire(app app.App) http.Handler {
	language := middlewares.Language(func(r *http.Request, l lang.Language) {
		if isToggle(r) {
			app.Metrics.LanguageSwitch.WithLabelValues(string(l)).Inc()
		}
	})

	root := chi.NewRouter()
	root.Use(middleware.RequestID, middleware.RealIP, middlewares.RequestLogger, middleware.Recoverer)

	root.Get("/healthz", Health(app))
	root.Handle("/metrics", app.Metrics.Handler())
	root.Mount("/static", http.StripPrefix("/static", view.Static()))

	root.With(language).Get("/", Home(app))
	root.With(language).Post("/", Submit(app))

	root.Mount("/api", apiRouter(app, language))

	return root
}

// isToggle tells the language toggle link apart from form posts and the
// page shown after a submit, which carry the language along.
func isToggle(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/" && !r.URL.Query().Has("submitted")
}

func apiRouter(app app.App, language func(http.Handler) http.Handler) http.Handler {
	api := chi.NewRouter()

	api.With(language).Post("/submissions", PublicSubmit(app))

	// the admin surface only exists with an archive to look at
	if app.Store == nil || app.BearerServer == nil {
		return api
	}

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.TokenSecret))

		r.Get("/submissions", ListSubmissions(app))
		r.Get("/submissions.xlsx", ExportSubmissions(app))
		r.Get("/submissions/{id}", GetSubmission(app))
		r.Delete("/submissions/{id}", DeleteSubmission(app))
	})

	return api
}

func Health(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{
			"status":  "ok",
			"archive": app.Store != nil,
		})
	}
}
