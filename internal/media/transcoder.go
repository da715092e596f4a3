package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	convertibleFormats = map[string]bool{
		".mp3": true, ".mp4": true, ".m4a": true,
		".aac": true, ".webm": true, ".wav": true,
	}
	textFormats = map[string]bool{
		".md": true, ".txt": true, ".docx": true, ".pdf": true,
	}
)

// ToWav converts an audio/video file to 16kHz mono PCM WAV. Text
// documents and unknown formats are skipped, files already in WAV pass
// through unchanged.
func (t *implTranscoder) ToWav(ctx context.Context, inputPath string) (*ConversionResult, error) {
	ext := strings.ToLower(filepath.Ext(inputPath))

	if textFormats[ext] {
		return &ConversionResult{
			Skipped: true,
			Message: fmt.Sprintf("skipped conversion for text file: %s", ext),
		}, nil
	}

	if ext == ".wav" {
		return &ConversionResult{
			OutputPath: inputPath,
			Message:    "file is already in WAV format",
		}, nil
	}

	if !convertibleFormats[ext] {
		return &ConversionResult{
			Skipped: true,
			Message: fmt.Sprintf("unknown format %s, skipping conversion", ext),
		}, nil
	}

	outputPath := strings.TrimSuffix(inputPath, ext) + ".wav"

	t.logger.Info(ctx, "Converting to WAV: %s", inputPath)

	// 16kHz mono PCM is what the transcription engine expects.
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		outputPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return nil, fmt.Errorf("ffmpeg convert to wav: %w", err)
	}

	t.logger.Info(ctx, "Converted %s -> %s", inputPath, outputPath)
	return &ConversionResult{
		OutputPath: outputPath,
		Message:    fmt.Sprintf("converted %s to WAV", ext),
	}, nil
}
