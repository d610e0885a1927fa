package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mbolis/intake-form/app"
	"github.com/mbolis/intake-form/config"
	"github.com/mbolis/intake-form/database"
	"github.com/mbolis/intake-form/form"
	"github.com/mbolis/intake-form/httpx"
	"github.com/mbolis/intake-form/log"
	"github.com/mbolis/intake-form/metrics"
	"github.com/mbolis/intake-form/report"
	"github.com/mbolis/intake-form/routes"
	"github.com/mbolis/intake-form/view"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if err = log.SetFormat(cfg.LogFormat); err != nil {
		log.Fatal("main.config.log_format:", err)
	}

	def := form.Intake()
	if err = def.Validate(); err != nil {
		log.Fatal("main.form:", err)
	}

	v, err := view.New()
	if err != nil {
		log.Fatal("main.view:", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := app.App{
		Config:   cfg,
		Form:     def,
		View:     v,
		Reporter: report.LogReporter{},
		Metrics:  metrics.New(reg),
	}

	if cfg.ArchiveEnabled() {
		db, err := database.Open(cfg.DBUrl)
		if err != nil {
			log.Fatal("main.db.open:", err)
		}
		defer db.Close()

		err = database.EnsureAdmin(context.Background(), db, cfg.AdminUser, cfg.AdminPassword)
		if err != nil {
			log.Fatal("main.db.admin:", err)
		}

		app.Store = database.NewSubmissionStore(db)
		app.BearerServer = httpx.NewBearerServer(db, cfg.TokenSecret, cfg.TokenTTL)
		app.Reporter = report.Multi{report.LogReporter{}, report.ArchiveReporter{Store: app.Store}}

		if cfg.Retention > 0 {
			retention := database.NewRetention(app.Store, cfg.Retention)
			retention.OnPurge = func(n int64) { app.Metrics.RetentionPurges.Add(float64(n)) }
			if err = retention.Start(cfg.RetentionSpec); err != nil {
				log.Fatal("main.retention:", err)
			}
			defer retention.Stop()
		}
		log.Infof("Archiving submissions to %s", cfg.DBUrl)
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Error("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Error("main.server.shutdown:", err)
		}
	}()

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
