package media

import "context"

// ConversionResult reports a transcode outcome. Skipped inputs (text
// documents, unknown formats) are not errors.
type ConversionResult struct {
	OutputPath string
	Skipped    bool
	Message    string
}

// Transcoder normalizes input media into a mono 16kHz WAV file suitable
// for the transcription engine.
type Transcoder interface {
	ToWav(ctx context.Context, inputPath string) (*ConversionResult, error)
}

// Transcriber turns a WAV file into a transcript artifact.
type Transcriber interface {
	// TranscribeSRT returns the subtitle-formatted transcript text.
	TranscribeSRT(ctx context.Context, wavPath string) (string, error)
	// TranscribeJSON returns the segment-JSON transcript text.
	TranscribeJSON(ctx context.Context, wavPath string) (string, error)
}
