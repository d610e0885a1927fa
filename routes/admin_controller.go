package routes

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mbolis/intake-form/app"
	"github.com/mbolis/intake-form/database"
	"github.com/mbolis/intake-form/export"
	"github.com/mbolis/intake-form/httpx"
	"github.com/mbolis/intake-form/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func ListSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := app.Store.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "db.list_submissions", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"submissions": submissions,
		})
	}
}

func GetSubmission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		submission, err := app.Store.Get(r.Context(), id)
		switch {
		case errors.Is(err, database.ErrNotFound):
			httpx.LogNotFound(w, r, "get_submission", id)
			return
		case err != nil:
			httpx.LogInternalError(w, r, "db.get_submission", err)
			return
		}

		render.JSON(w, r, submission)
	}
}

func DeleteSubmission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := app.Store.Delete(r.Context(), id)
		switch {
		case errors.Is(err, database.ErrNotFound):
			httpx.LogNotFound(w, r, "delete_submission", id)
			return
		case err != nil:
			httpx.LogInternalError(w, r, "db.delete_submission", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ExportSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := app.Store.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "db.export_submissions", err)
			return
		}

		var buf bytes.Buffer
		err = export.WriteXLSX(&buf, app.Form, submissions)
		if err != nil {
			httpx.LogInternalError(w, r, "export.xlsx", err)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="submissions.xlsx"`)
		_, err = buf.WriteTo(w)
		if err != nil {
			log.Debugf("export.write: %s", err)
		}
	}
}
