package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mbolis/intake-form/lang"
	"github.com/mbolis/intake-form/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "archive.sqlite"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.sqlite")
	for i := 0; i < 2; i++ {
		db, err := Open(path)
		if err != nil {
			t.Fatalf("Open() #%d error = %v", i+1, err)
		}
		db.Close()
	}
}

func TestSubmissionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSubmissionStore(openTestDB(t))

	received := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	want := model.Submission{
		ID:   "0f8e2f4c-6c1e-4bb0-9b7c-3c1c0b0a0001",
		Time: received,
		IP:   "10.0.0.7",
		Lang: lang.English,
		Fields: model.SubmissionRecord{
			"universityName": {"Future University"},
			"projectGoals":   {"Reduce staff workload", "Provide 24/7 service"},
		},
	}
	if err := store.Insert(ctx, want); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := store.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.Time.Equal(want.Time) {
		t.Fatalf("Time = %v, want %v", got.Time, want.Time)
	}
	got.Time = want.Time
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Get() = %+v, want %+v", got, want)
	}
}

func TestSubmissionStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewSubmissionStore(openTestDB(t))

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"b", "a", "c"} {
		sub := model.Submission{ID: id, Time: base.Add(time.Duration(i) * time.Hour), Lang: lang.Arabic, Fields: model.SubmissionRecord{}}
		if err := store.Insert(ctx, sub); err != nil {
			t.Fatalf("Insert(%s) error = %v", id, err)
		}
	}

	subs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(subs) != 3 || subs[0].ID != "b" || subs[2].ID != "c" {
		t.Fatalf("List() = %+v, want b, a, c by time", subs)
	}
	if len(subs[0].Fields) != 0 {
		t.Fatalf("empty submission came back with fields %v", subs[0].Fields)
	}

	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete() error = %v, want ErrNotFound", err)
	}
	if _, err := store.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestRetentionSweep(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewSubmissionStore(db)

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	old := model.Submission{ID: "old", Time: now.Add(-40 * 24 * time.Hour), Lang: lang.Arabic,
		Fields: model.SubmissionRecord{"universityName": {"Old"}}}
	fresh := model.Submission{ID: "fresh", Time: now.Add(-time.Hour), Lang: lang.Arabic, Fields: model.SubmissionRecord{}}
	for _, sub := range []model.Submission{old, fresh} {
		if err := store.Insert(ctx, sub); err != nil {
			t.Fatalf("Insert(%s) error = %v", sub.ID, err)
		}
	}

	var reported int64
	r := NewRetention(store, 30*24*time.Hour)
	r.now = func() time.Time { return now }
	r.OnPurge = func(n int64) { reported = n }

	n, err := r.Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if n != 1 || reported != 1 {
		t.Fatalf("Sweep() purged %d (reported %d), want 1", n, reported)
	}

	subs, _ := store.List(ctx)
	if len(subs) != 1 || subs[0].ID != "fresh" {
		t.Fatalf("List() after sweep = %+v, want only fresh", subs)
	}

	var orphans int
	db.QueryRow(`SELECT COUNT(*) FROM submission_field WHERE submission_id = 'old'`).Scan(&orphans)
	if orphans != 0 {
		t.Fatalf("%d fields of the purged submission left behind", orphans)
	}
}

func TestRetentionStartRejectsBadSpec(t *testing.T) {
	r := NewRetention(NewSubmissionStore(openTestDB(t)), time.Hour)
	if err := r.Start("every now and then"); err == nil {
		r.Stop()
		t.Fatalf("Start() error = nil, want a cron parse error")
	}
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if err := EnsureAdmin(ctx, db, "admin", ""); err == nil {
		t.Fatalf("EnsureAdmin() without password on an empty db succeeded")
	}
	if err := EnsureAdmin(ctx, db, "admin", "first"); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}
	if err := EnsureAdmin(ctx, db, "admin", "second"); err != nil {
		t.Fatalf("EnsureAdmin() update error = %v", err)
	}
	if err := EnsureAdmin(ctx, db, "admin", ""); err != nil {
		t.Fatalf("EnsureAdmin() keeping the hash error = %v", err)
	}

	var hash []byte
	if err := db.QueryRow(`SELECT password_hash FROM user WHERE username = 'admin'`).Scan(&hash); err != nil {
		t.Fatalf("select hash: %v", err)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte("second")) != nil {
		t.Fatalf("stored hash does not match the latest password")
	}
}
