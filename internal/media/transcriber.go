package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TranscribeSRT runs whisper over the WAV file and returns the generated
// subtitle text.
func (t *implTranscriber) TranscribeSRT(ctx context.Context, wavPath string) (string, error) {
	outputPrefix, err := t.run(ctx, wavPath, "-osrt")
	if err != nil {
		return "", err
	}

	srtPath := outputPrefix + ".srt"
	defer os.Remove(srtPath)

	content, err := os.ReadFile(srtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", srtPath, err)
	}
	return string(content), nil
}

// TranscribeJSON runs whisper in JSON output mode and returns the
// segment-JSON text.
func (t *implTranscriber) TranscribeJSON(ctx context.Context, wavPath string) (string, error) {
	outputPrefix, err := t.run(ctx, wavPath, "-oj")
	if err != nil {
		return "", err
	}

	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	content, err := os.ReadFile(jsonPath)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", jsonPath, err)
	}
	return string(content), nil
}

func (t *implTranscriber) run(ctx context.Context, wavPath, outputFlag string) (string, error) {
	// Whisper resolves a bare --output-file prefix against its working
	// directory, so run it in the wav's directory to keep the sidecar
	// artifact next to the input.
	dir := filepath.Dir(wavPath)
	base := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, wavPath)

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", wavPath,
		outputFlag,
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", base,
	}

	if _, err := t.executor.ExecuteInDir(ctx, dir, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed: %s", wavPath)
	return filepath.Join(dir, base), nil
}
