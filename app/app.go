package app

import (
	"github.com/go-chi/oauth"

	"github.com/mbolis/intake-form/config"
	"github.com/mbolis/intake-form/database"
	"github.com/mbolis/intake-form/form"
	"github.com/mbolis/intake-form/metrics"
	"github.com/mbolis/intake-form/report"
	"github.com/mbolis/intake-form/view"
)

// App is what the handlers share. Store and BearerServer are nil unless the
// archive is enabled.
type App struct {
	config.Config
	Form     form.Definition
	View     *view.View
	Reporter report.Reporter
	Metrics  *metrics.Metrics

	Store        *database.SubmissionStore
	BearerServer *oauth.BearerServer
}
