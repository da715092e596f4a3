package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const interviewColumns = `id, title, subject_name, interviewer, occupation,
	political_affiliation, comments, raw_transcript, date_conducted,
	subject_age, created_at`

// GetInterview fetches one interview by id, ErrNotFound when absent.
func (s *Store) GetInterview(ctx context.Context, id string) (*Interview, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = ?`, id)

	iv, err := scanInterview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("interview %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}
	return iv, nil
}

// ListInterviews returns all interviews, newest first.
func (s *Store) ListInterviews(ctx context.Context) ([]Interview, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+interviewColumns+` FROM interviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		interviews = append(interviews, *iv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interviews: %w", err)
	}
	return interviews, nil
}

// DeleteInterview removes an interview; its chunks go with it via the
// foreign-key cascade.
func (s *Store) DeleteInterview(ctx context.Context, id string) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM interviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete interview: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("interview %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInterview(r rowScanner) (*Interview, error) {
	var iv Interview
	var subjectName, interviewer, occupation, affiliation sql.NullString
	var comments, rawTranscript, dateConducted, subjectAge sql.NullString

	err := r.Scan(&iv.ID, &iv.Title, &subjectName, &interviewer, &occupation,
		&affiliation, &comments, &rawTranscript, &dateConducted, &subjectAge,
		&iv.CreatedAt)
	if err != nil {
		return nil, err
	}

	iv.SubjectName = subjectName.String
	iv.Interviewer = interviewer.String
	iv.Occupation = occupation.String
	iv.PoliticalAffiliation = affiliation.String
	iv.Comments = comments.String
	iv.RawTranscript = rawTranscript.String
	iv.DateConducted = dateConducted.String
	iv.SubjectAge = subjectAge.String
	return &iv, nil
}
