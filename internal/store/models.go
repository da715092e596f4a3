package store

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a referenced interview does not exist.
var ErrNotFound = errors.New("not found")

// DimensionError reports an embedding vector whose width disagrees with
// the schema expectation. It is raised before any row is inserted.
type DimensionError struct {
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: got %d, want %d", e.Got, e.Want)
}

// Interview is the parent record owning a sequence of persisted chunks.
type Interview struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	SubjectName          string    `json:"subject_name,omitempty"`
	Interviewer          string    `json:"interviewer,omitempty"`
	Occupation           string    `json:"occupation,omitempty"`
	PoliticalAffiliation string    `json:"political_affiliation,omitempty"`
	Comments             string    `json:"comments,omitempty"`
	RawTranscript        string    `json:"raw_transcript,omitempty"`
	DateConducted        string    `json:"date_conducted,omitempty"`
	SubjectAge           string    `json:"subject_age,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// ChunkRow is one persisted transcript chunk with its embedding vector.
type ChunkRow struct {
	ID          string    `json:"id"`
	InterviewID string    `json:"interview_id"`
	Sequence    int       `json:"sequence"`
	Content     string    `json:"content"`
	Speaker     string    `json:"speaker,omitempty"`
	Vector      []float64 `json:"-"`
	StartTime   float64   `json:"start_time"`
	EndTime     float64   `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

// GlobalChunkRow carries the parent identifying fields needed by
// archive-wide search results.
type GlobalChunkRow struct {
	ChunkRow
	Title       string `json:"title"`
	SubjectName string `json:"subject_name,omitempty"`
}
