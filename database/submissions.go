package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mbolis/intake-form/lang"
	"github.com/mbolis/intake-form/model"
)

// SubmissionStore archives submissions in the submission and
// submission_field tables.
type SubmissionStore struct {
	db *sql.DB
}

func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db}
}

func (s *SubmissionStore) Insert(ctx context.Context, sub model.Submission) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO submission (id, time, ip, lang) VALUES (?, ?, ?, ?)`,
		sub.ID,
		sub.Time.UTC(),
		sub.IP,
		string(sub.Lang),
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO submission_field (submission_id, name, position, value)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare fields: %w", err)
	}
	defer stmt.Close()

	for name, values := range sub.Fields {
		for i, v := range values {
			_, err = stmt.ExecContext(ctx, sub.ID, name, i, v)
			if err != nil {
				return fmt.Errorf("insert field %s: %w", name, err)
			}
		}
	}

	return tx.Commit()
}

// List returns every archived submission, oldest first.
func (s *SubmissionStore) List(ctx context.Context) ([]model.Submission, error) {
	return s.query(ctx, "", nil)
}

func (s *SubmissionStore) Get(ctx context.Context, id string) (model.Submission, error) {
	subs, err := s.query(ctx, "WHERE s.id = ?", []any{id})
	if err != nil {
		return model.Submission{}, err
	}
	if len(subs) == 0 {
		return model.Submission{}, ErrNotFound
	}
	return subs[0], nil
}

func (s *SubmissionStore) query(ctx context.Context, where string, args []any) ([]model.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			s.id, s.time, s.ip, s.lang,
			f.name, f.value
		FROM submission s
		LEFT OUTER JOIN submission_field f ON (s.id = f.submission_id)
		`+where+`
		ORDER BY s.time, s.id, f.name, f.position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		var (
			sub         model.Submission
			language    string
			name, value sql.NullString
		)
		err = rows.Scan(&sub.ID, &sub.Time, &sub.IP, &language, &name, &value)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}

		last := len(submissions) - 1
		if last < 0 || submissions[last].ID != sub.ID {
			sub.Lang = lang.Language(language)
			sub.Fields = model.SubmissionRecord{}
			submissions = append(submissions, sub)
			last++
		}
		if name.Valid {
			fields := submissions[last].Fields
			fields[name.String] = append(fields[name.String], value.String)
		}
	}
	return submissions, rows.Err()
}

func (s *SubmissionStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM submission WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

// DeleteBefore removes submissions received before t and reports how many
// went away.
func (s *SubmissionStore) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM submission WHERE time < ?`, t.UTC())
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}
	return res.RowsAffected()
}
