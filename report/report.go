// Package report hands received submissions to their recipients: the log
// always, the archive when one is configured.
package report

import (
	"context"
	"errors"

	"github.com/mbolis/intake-form/log"
	"github.com/mbolis/intake-form/model"
)

type Reporter interface {
	Report(ctx context.Context, sub model.Submission) error
}

// LogReporter writes the submission to the application log.
type LogReporter struct{}

func (LogReporter) Report(_ context.Context, sub model.Submission) error {
	log.WithFields(log.Fields{
		"submission_id": sub.ID,
		"lang":          sub.Lang,
		"ip":            sub.IP,
		"fields":        sub.Fields,
	}).Info("submission received")
	return nil
}

type archive interface {
	Insert(ctx context.Context, sub model.Submission) error
}

// ArchiveReporter stores submissions, see database.SubmissionStore.
type ArchiveReporter struct {
	Store archive
}

func (a ArchiveReporter) Report(ctx context.Context, sub model.Submission) error {
	return a.Store.Insert(ctx, sub)
}

// Multi runs every reporter, even after one fails, and returns all their
// errors joined.
type Multi []Reporter

func (m Multi) Report(ctx context.Context, sub model.Submission) error {
	var errs []error
	for _, r := range m {
		if err := r.Report(ctx, sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
