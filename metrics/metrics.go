package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	PageViews       *prometheus.CounterVec
	Submissions     *prometheus.CounterVec
	LanguageSwitch  *prometheus.CounterVec
	ReportFailures  prometheus.Counter
	RetentionPurges prometheus.Counter

	gatherer prometheus.Gatherer
}

// New registers the intake counters on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_page_views_total",
			Help: "Rendered intake pages by language.",
		}, []string{"lang"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Received submissions by language.",
		}, []string{"lang"}),
		LanguageSwitch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_language_switches_total",
			Help: "Language toggle links followed, by target language.",
		}, []string{"to"}),
		ReportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intake_report_failures_total",
			Help: "Submissions a reporter failed to handle.",
		}),
		RetentionPurges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intake_retention_purged_total",
			Help: "Archived submissions deleted by the retention sweep.",
		}),
		gatherer: reg,
	}
	reg.MustRegister(m.PageViews, m.Submissions, m.LanguageSwitch, m.ReportFailures, m.RetentionPurges)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
