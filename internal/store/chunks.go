package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SaveInterview persists an interview and all its chunk rows in a single
// transaction. If any insert fails nothing is left persisted.
func (s *Store) SaveInterview(ctx context.Context, iv *Interview, chunks []ChunkRow) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if iv.CreatedAt.IsZero() {
		iv.CreatedAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO interviews (
			id, title, subject_name, interviewer, occupation,
			political_affiliation, comments, raw_transcript, date_conducted,
			subject_age, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		iv.ID, iv.Title, iv.SubjectName, iv.Interviewer, iv.Occupation,
		iv.PoliticalAffiliation, iv.Comments, iv.RawTranscript,
		iv.DateConducted, iv.SubjectAge, iv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}

	if err := insertChunks(ctx, tx, chunks); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SaveChunks attaches chunk rows to an existing interview, transactionally.
// The parent must exist before any work begins.
func (s *Store) SaveChunks(ctx context.Context, interviewID string, chunks []ChunkRow) error {
	if _, err := s.GetInterview(ctx, interviewID); err != nil {
		return err
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertChunks(ctx, tx, chunks); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertChunks(ctx context.Context, tx *sql.Tx, chunks []ChunkRow) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO interview_chunks (
			id, interview_id, sequence, content, speaker, vector,
			start_time, end_time, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare chunk insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range chunks {
		vectorJSON, err := json.Marshal(c.Vector)
		if err != nil {
			return fmt.Errorf("marshal vector for chunk %d: %w", c.Sequence, err)
		}
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		if _, err := stmt.ExecContext(ctx, c.ID, c.InterviewID, c.Sequence,
			c.Content, c.Speaker, string(vectorJSON), c.StartTime, c.EndTime,
			createdAt); err != nil {
			return fmt.Errorf("insert chunk %d: %w", c.Sequence, err)
		}
	}

	return nil
}

// ChunksByInterview returns the chunks of one interview in sequence order.
// The parent must exist.
func (s *Store) ChunksByInterview(ctx context.Context, interviewID string) ([]ChunkRow, error) {
	if _, err := s.GetInterview(ctx, interviewID); err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx, `SELECT
			id, interview_id, sequence, content, speaker, vector,
			start_time, end_time, created_at
		FROM interview_chunks WHERE interview_id = ? ORDER BY sequence`,
		interviewID)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []ChunkRow
	for rows.Next() {
		c, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chunks: %w", err)
	}
	return chunks, nil
}

// AllChunks returns every chunk in the archive joined with its parent's
// identifying fields, for global search.
func (s *Store) AllChunks(ctx context.Context) ([]GlobalChunkRow, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT
			c.id, c.interview_id, c.sequence, c.content, c.speaker, c.vector,
			c.start_time, c.end_time, c.created_at, i.title, i.subject_name
		FROM interview_chunks c
		JOIN interviews i ON c.interview_id = i.id
		ORDER BY i.created_at, c.sequence`)
	if err != nil {
		return nil, fmt.Errorf("query all chunks: %w", err)
	}
	defer rows.Close()

	var chunks []GlobalChunkRow
	for rows.Next() {
		var g GlobalChunkRow
		var speaker, subjectName sql.NullString
		var vectorJSON string

		err := rows.Scan(&g.ID, &g.InterviewID, &g.Sequence, &g.Content,
			&speaker, &vectorJSON, &g.StartTime, &g.EndTime, &g.CreatedAt,
			&g.Title, &subjectName)
		if err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}

		if err := json.Unmarshal([]byte(vectorJSON), &g.Vector); err != nil {
			return nil, fmt.Errorf("unmarshal vector for chunk %s: %w", g.ID, err)
		}
		g.Speaker = speaker.String
		g.SubjectName = subjectName.String
		chunks = append(chunks, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chunks: %w", err)
	}
	return chunks, nil
}

func scanChunk(r rowScanner) (*ChunkRow, error) {
	var c ChunkRow
	var speaker sql.NullString
	var vectorJSON string

	err := r.Scan(&c.ID, &c.InterviewID, &c.Sequence, &c.Content, &speaker,
		&vectorJSON, &c.StartTime, &c.EndTime, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan chunk: %w", err)
	}

	if err := json.Unmarshal([]byte(vectorJSON), &c.Vector); err != nil {
		return nil, fmt.Errorf("unmarshal vector for chunk %s: %w", c.ID, err)
	}
	c.Speaker = speaker.String
	return &c, nil
}
