package database

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mbolis/intake-form/log"
)

// Retention periodically purges archived submissions older than MaxAge.
type Retention struct {
	store  *SubmissionStore
	maxAge time.Duration
	engine *cron.Cron
	now    func() time.Time

	// OnPurge, when set, is told how many submissions each sweep removed.
	OnPurge func(n int64)
}

func NewRetention(store *SubmissionStore, maxAge time.Duration) *Retention {
	return &Retention{
		store:  store,
		maxAge: maxAge,
		engine: cron.New(cron.WithLocation(time.UTC)),
		now:    time.Now,
	}
}

// Start schedules the sweep on spec, e.g. "@daily" or "0 3 * * *".
func (r *Retention) Start(spec string) error {
	_, err := r.engine.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		r.Sweep(ctx)
	})
	if err != nil {
		return err
	}
	r.engine.Start()
	log.Infof("retention: purging submissions older than %s on %q", r.maxAge, spec)
	return nil
}

// Stop waits for a running sweep to finish.
func (r *Retention) Stop() {
	<-r.engine.Stop().Done()
}

func (r *Retention) Sweep(ctx context.Context) (int64, error) {
	cutoff := r.now().Add(-r.maxAge)
	n, err := r.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		log.Errorf("retention.sweep: %s", err)
		return 0, err
	}
	log.WithFields(log.Fields{"purged": n, "cutoff": cutoff.Format(time.RFC3339)}).Debug("retention sweep done")
	if r.OnPurge != nil {
		r.OnPurge(n)
	}
	return n, nil
}
