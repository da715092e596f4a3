package speaker

import (
	"context"

	"github.com/workerlens/transcript-archive/internal/transcript"
)

// Labeler attributes each utterance to the interviewer or the subject.
// Output has the same length and order as the input.
type Labeler interface {
	LabelSpeakers(ctx context.Context, utterances []transcript.Utterance) ([]transcript.LabeledUtterance, error)
}
