package report

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/mbolis/intake-form/lang"
	"github.com/mbolis/intake-form/log"
	"github.com/mbolis/intake-form/model"
)

type stubArchive struct {
	got []model.Submission
	err error
}

func (s *stubArchive) Insert(_ context.Context, sub model.Submission) error {
	s.got = append(s.got, sub)
	return s.err
}

func TestLogReporter(t *testing.T) {
	hook := test.NewLocal(log.Logger)
	defer hook.Reset()

	sub := model.Submission{
		ID:     "id-1",
		Lang:   lang.English,
		Fields: model.SubmissionRecord{"universityName": {"Future University"}},
	}
	if err := (LogReporter{}).Report(context.Background(), sub); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.InfoLevel {
		t.Fatalf("no INFO entry logged: %+v", entry)
	}
	fields, ok := entry.Data["fields"].(model.SubmissionRecord)
	if !ok || fields.Get("universityName") != "Future University" {
		t.Fatalf("logged fields = %v", entry.Data["fields"])
	}
	if entry.Data["submission_id"] != "id-1" {
		t.Fatalf("logged submission_id = %v", entry.Data["submission_id"])
	}
}

func TestMultiRunsEveryReporter(t *testing.T) {
	diskFull := errors.New("disk full")
	locked := errors.New("database is locked")
	first := &stubArchive{err: diskFull}
	healthy := &stubArchive{}
	second := &stubArchive{err: locked}

	err := Multi{ArchiveReporter{first}, ArchiveReporter{healthy}, ArchiveReporter{second}}.Report(context.Background(), model.Submission{ID: "x"})
	if !errors.Is(err, diskFull) || !errors.Is(err, locked) {
		t.Fatalf("Report() error = %v, want both failures", err)
	}
	if len(first.got) != 1 || len(healthy.got) != 1 || len(second.got) != 1 {
		t.Fatalf("reporters called %d/%d/%d times, want 1/1/1", len(first.got), len(healthy.got), len(second.got))
	}
}

func TestMultiWithoutFailures(t *testing.T) {
	err := Multi{LogReporter{}, ArchiveReporter{&stubArchive{}}}.Report(context.Background(), model.Submission{ID: "x"})
	if err != nil {
		t.Fatalf("Report() error = %v, want nil", err)
	}
}
