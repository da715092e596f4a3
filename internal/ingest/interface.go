package ingest

import (
	"context"
	"errors"
)

// ErrValidation is wrapped by pre-insert validation failures, like
// non-finite chunk timestamps.
var ErrValidation = errors.New("validation failure")

// InterviewMeta is the caller-supplied metadata for a new interview.
type InterviewMeta struct {
	Title                string
	SubjectName          string
	Interviewer          string
	Occupation           string
	PoliticalAffiliation string
	Comments             string
	DateConducted        string
	SubjectAge           string
}

// Result reports a completed (or skipped) ingestion run.
type Result struct {
	InterviewID   string
	ChunksCreated int
	Skipped       bool
	SummaryPath   string
}

// Ingestor runs the full pipeline for one media or transcript file:
// transcode, transcribe, parse, optionally label speakers, merge, embed
// and persist.
type Ingestor interface {
	Ingest(ctx context.Context, mediaPath string, meta InterviewMeta) (*Result, error)
}
