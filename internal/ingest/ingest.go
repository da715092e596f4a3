package ingest

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/workerlens/transcript-archive/internal/store"
	"github.com/workerlens/transcript-archive/internal/transcript"
)

// Ingest runs the pipeline for one file. The whole run is sequential;
// chunks are embedded one at a time in order so sequence numbering and
// error attribution stay deterministic. All rows for the interview are
// persisted in a single transaction, so a mid-run failure leaves nothing
// behind.
func (p *implIngestor) Ingest(ctx context.Context, mediaPath string, meta InterviewMeta) (*Result, error) {
	startTime := time.Now()
	p.logger.Info(ctx, "Starting ingestion: %s", mediaPath)

	raw, format, skipped, err := p.transcriptArtifact(ctx, mediaPath)
	if err != nil {
		return nil, err
	}
	if skipped {
		p.logger.Info(ctx, "Skipping non-transcribable input: %s", mediaPath)
		return &Result{Skipped: true}, nil
	}

	parser, err := transcript.ForFormat(format)
	if err != nil {
		return nil, err
	}
	utterances, err := parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	p.logger.Info(ctx, "Parsed %d utterances (%s)", len(utterances), format)

	rows, rawTranscript, err := p.buildRows(ctx, utterances)
	if err != nil {
		return nil, err
	}

	title := meta.Title
	if title == "" {
		title = filepath.Base(mediaPath)
	}

	interview := &store.Interview{
		ID:                   uuid.NewString(),
		Title:                title,
		SubjectName:          meta.SubjectName,
		Interviewer:          meta.Interviewer,
		Occupation:           meta.Occupation,
		PoliticalAffiliation: meta.PoliticalAffiliation,
		Comments:             meta.Comments,
		RawTranscript:        rawTranscript,
		DateConducted:        meta.DateConducted,
		SubjectAge:           meta.SubjectAge,
	}
	for i := range rows {
		rows[i].InterviewID = interview.ID
	}

	if err := p.store.SaveInterview(ctx, interview, rows); err != nil {
		return nil, fmt.Errorf("persist interview: %w", err)
	}

	result := &Result{InterviewID: interview.ID, ChunksCreated: len(rows)}

	if p.summarizer != nil && len(rows) > 0 {
		texts := make([]string, 0, len(rows))
		for _, r := range rows {
			texts = append(texts, r.Content)
		}
		summary, err := p.summarizer.Summarize(ctx, texts)
		if err != nil {
			p.logger.Warn(ctx, "Summary generation failed for %s: %v", interview.ID, err)
		} else if path, err := p.summarizer.Export(ctx, title, summary); err != nil {
			p.logger.Warn(ctx, "Summary export failed for %s: %v", interview.ID, err)
		} else {
			result.SummaryPath = path
		}
	}

	p.logger.Info(ctx, "Ingested %s: %d chunks in %s",
		interview.ID, len(rows), time.Since(startTime))
	return result, nil
}

// transcriptArtifact resolves the raw transcript bytes and their format.
// Transcript files are read directly; media files go through transcode
// and transcription first.
func (p *implIngestor) transcriptArtifact(ctx context.Context, mediaPath string) ([]byte, string, bool, error) {
	ext := strings.ToLower(filepath.Ext(mediaPath))

	switch ext {
	case ".srt", ".vtt", ".json":
		raw, err := os.ReadFile(mediaPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("read transcript file: %w", err)
		}
		return raw, ext, false, nil
	}

	conv, err := p.transcoder.ToWav(ctx, mediaPath)
	if err != nil {
		return nil, "", false, fmt.Errorf("transcode: %w", err)
	}
	if conv.Skipped {
		return nil, "", true, nil
	}
	if conv.OutputPath != mediaPath {
		defer p.cleanupTempFile(ctx, conv.OutputPath)
	}

	if p.cfg.Whisper.OutputFormat == "json" {
		jsonText, err := p.transcriber.TranscribeJSON(ctx, conv.OutputPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("transcribe: %w", err)
		}
		return []byte(jsonText), "json", false, nil
	}

	srtText, err := p.transcriber.TranscribeSRT(ctx, conv.OutputPath)
	if err != nil {
		return nil, "", false, fmt.Errorf("transcribe: %w", err)
	}
	return []byte(srtText), "srt", false, nil
}

// buildRows merges utterances into chunks (speaker-aware when enabled)
// and embeds them, returning row values ready for one transactional save.
func (p *implIngestor) buildRows(ctx context.Context, utterances []transcript.Utterance) ([]store.ChunkRow, string, error) {
	if p.cfg.Chunking.LabelSpeakers {
		labeled, err := p.labeler.LabelSpeakers(ctx, utterances)
		if err != nil {
			return nil, "", fmt.Errorf("label speakers: %w", err)
		}

		chunks := transcript.MergeLabeled(labeled,
			p.cfg.Chunking.LabeledTargetDurationSec, p.cfg.Chunking.LabeledMaxWords)

		var texts []string
		rows := make([]store.ChunkRow, 0, len(chunks))
		for i, c := range chunks {
			row, err := p.embedChunk(ctx, i+1, c.Chunk, c.LabeledText, string(c.Speaker))
			if err != nil {
				return nil, "", err
			}
			rows = append(rows, *row)
			texts = append(texts, c.Text)
		}
		return rows, strings.TrimSpace(strings.Join(texts, " ")), nil
	}

	chunks := transcript.Merge(utterances,
		p.cfg.Chunking.TargetDurationSec, p.cfg.Chunking.MaxWords)

	var texts []string
	rows := make([]store.ChunkRow, 0, len(chunks))
	for i, c := range chunks {
		row, err := p.embedChunk(ctx, i+1, c, c.Text, "")
		if err != nil {
			return nil, "", err
		}
		rows = append(rows, *row)
		texts = append(texts, c.Text)
	}
	return rows, strings.TrimSpace(strings.Join(texts, " ")), nil
}

// embedChunk validates one merged chunk and attaches its embedding vector.
func (p *implIngestor) embedChunk(ctx context.Context, sequence int, c transcript.Chunk, content, speaker string) (*store.ChunkRow, error) {
	if !isFinite(c.Start) || !isFinite(c.End) {
		return nil, fmt.Errorf("chunk %d has non-finite timestamps (%v, %v): %w",
			sequence, c.Start, c.End, ErrValidation)
	}

	vec, err := p.provider.Embed(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("embed chunk %d: %w", sequence, err)
	}
	if len(vec) != p.cfg.LLM.Dimensions {
		return nil, &store.DimensionError{Want: p.cfg.LLM.Dimensions, Got: len(vec)}
	}

	return &store.ChunkRow{
		ID:        uuid.NewString(),
		Sequence:  sequence,
		Content:   content,
		Speaker:   speaker,
		StartTime: c.Start,
		EndTime:   c.End,
		Vector:    vec,
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p *implIngestor) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
