package transcript

import (
	"fmt"
	"strings"
)

// Parser converts a raw transcript artifact into an ordered utterance
// sequence. Malformed segments are skipped, not fatal; the utterance
// order follows the artifact, timestamps are not re-sorted.
type Parser interface {
	Parse(raw []byte) ([]Utterance, error)
}

// ForFormat returns the parser for a transcript artifact format.
// Recognized formats: "srt", "json", "vtt" (extensions accepted with
// or without the leading dot).
func ForFormat(format string) (Parser, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "srt":
		return &srtParser{}, nil
	case "json":
		return &segmentJSONParser{}, nil
	case "vtt":
		return &vttParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported transcript format: %q", format)
	}
}
