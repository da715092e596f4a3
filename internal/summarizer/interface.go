package summarizer

import "context"

// Summarizer produces an LLM-written summary of an interview transcript
// and exports it in the configured format.
type Summarizer interface {
	// Summarize condenses the merged transcript chunks into one
	// markdown summary.
	Summarize(ctx context.Context, chunkTexts []string) (string, error)
	// Export writes the summary to the configured directory and
	// returns the written path.
	Export(ctx context.Context, title, summary string) (string, error)
}
