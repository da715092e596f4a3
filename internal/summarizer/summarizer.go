package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/workerlens/transcript-archive/internal/llm"
)

const chunkPrompt = `Summarize the following oral-history transcript excerpt in a short paragraph.
Keep names, places and dates. Use markdown.

Excerpt:
---
%s
---`

const combinePrompt = `These are summaries of consecutive excerpts from one oral-history interview.
Write a single coherent summary of the whole interview: a one-line overview,
then the main topics in order of appearance as bullet points. Use markdown.

Summaries:
---
%s
---`

// Summarize condenses each chunk, then condenses the chunk summaries
// into one document when there is more than one.
func (s *implSummarizer) Summarize(ctx context.Context, chunkTexts []string) (string, error) {
	if len(chunkTexts) == 0 {
		return "", fmt.Errorf("nothing to summarize")
	}

	summaries := make([]string, 0, len(chunkTexts))
	for i, text := range chunkTexts {
		s.logger.Debug(ctx, "Summarizing chunk %d/%d", i+1, len(chunkTexts))
		summary, err := s.chat(ctx, fmt.Sprintf(chunkPrompt, text))
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d: %w", i+1, err)
		}
		summaries = append(summaries, summary)
	}

	if len(summaries) == 1 {
		return summaries[0], nil
	}

	combined, err := s.chat(ctx, fmt.Sprintf(combinePrompt, strings.Join(summaries, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("combine summaries: %w", err)
	}
	return combined, nil
}

func (s *implSummarizer) chat(ctx context.Context, prompt string) (string, error) {
	resp, err := s.provider.Chat(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: prompt},
	}, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

// Export writes the summary in the configured format (md or docx).
func (s *implSummarizer) Export(ctx context.Context, title, summary string) (string, error) {
	if err := os.MkdirAll(s.cfg.Dir, 0755); err != nil {
		return "", fmt.Errorf("create summary dir: %w", err)
	}

	base := filepath.Join(s.cfg.Dir, sanitizeFilename(title))

	switch s.cfg.Format {
	case "md":
		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			title,
			time.Now().Format("2006-01-02 15:04"),
			summary,
		)
		path := base + ".md"
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			return "", fmt.Errorf("write summary: %w", err)
		}
		s.logger.Info(ctx, "Summary written: %s", path)
		return path, nil

	case "docx":
		path := base + ".docx"
		if err := markdownToDocx(title, summary, path); err != nil {
			return "", fmt.Errorf("write docx summary: %w", err)
		}
		s.logger.Info(ctx, "Summary written: %s", path)
		return path, nil

	default:
		return "", fmt.Errorf("unsupported summary format: %q", s.cfg.Format)
	}
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "_")
	return replacer.Replace(name)
}
