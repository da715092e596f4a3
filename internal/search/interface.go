package search

import "context"

// Result is one ranked chunk from a single-interview search.
type Result struct {
	ChunkID    string  `json:"id"`
	Content    string  `json:"content"`
	Speaker    string  `json:"speaker,omitempty"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Similarity float64 `json:"similarity"`
}

// GlobalResult adds the parent identifying fields for archive-wide
// searches. Distance is populated by the raw-distance Nearest mode.
type GlobalResult struct {
	Result
	InterviewID string  `json:"interview_id"`
	Title       string  `json:"title"`
	SubjectName string  `json:"subject_name,omitempty"`
	Distance    float64 `json:"distance,omitempty"`
}

// Searcher ranks stored chunks against a query string by embedding
// distance. Limits of zero fall back to configured defaults.
type Searcher interface {
	// SearchInterview ranks the chunks of one interview by cosine
	// distance, most similar first.
	SearchInterview(ctx context.Context, interviewID, query string, limit int) ([]Result, error)
	// SearchGlobal ranks every chunk in the archive by cosine distance.
	SearchGlobal(ctx context.Context, query string, limit int) ([]GlobalResult, error)
	// Nearest ranks every chunk by raw Euclidean distance.
	Nearest(ctx context.Context, query string, limit int) ([]GlobalResult, error)
}
