package summarizer

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/workerlens/transcript-archive/internal/config"
	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/logger"
)

type fakeChat struct {
	responses []string
	calls     int
}

func (f *fakeChat) Chat(ctx context.Context, messages []llm.Message, opts *llm.Options) (*llm.Response, error) {
	if f.calls >= len(f.responses) {
		return nil, errors.New("unexpected chat call")
	}
	resp := &llm.Response{Content: f.responses[f.calls]}
	f.calls++
	return resp, nil
}

func (f *fakeChat) Embed(ctx context.Context, text string) ([]float64, error) {
	return nil, errors.New("not implemented")
}

func TestSummarizeSingleChunk(t *testing.T) {
	fake := &fakeChat{responses: []string{"one chunk summary"}}
	s := New(fake, logger.New("error"), config.SummaryConfig{Format: "md", Dir: t.TempDir()})

	summary, err := s.Summarize(context.Background(), []string{"transcript text"})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary != "one chunk summary" {
		t.Errorf("summary = %q", summary)
	}
	if fake.calls != 1 {
		t.Errorf("chat calls = %d, want 1 (no combine pass for a single chunk)", fake.calls)
	}
}

func TestSummarizeCombinesChunks(t *testing.T) {
	fake := &fakeChat{responses: []string{"sum a", "sum b", "combined"}}
	s := New(fake, logger.New("error"), config.SummaryConfig{Format: "md", Dir: t.TempDir()})

	summary, err := s.Summarize(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary != "combined" {
		t.Errorf("summary = %q, want combine-pass output", summary)
	}
	if fake.calls != 3 {
		t.Errorf("chat calls = %d, want 3", fake.calls)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := New(&fakeChat{}, logger.New("error"), config.SummaryConfig{Format: "md", Dir: t.TempDir()})
	if _, err := s.Summarize(context.Background(), nil); err == nil {
		t.Error("Summarize() should error on empty input")
	}
}

func TestExportMarkdown(t *testing.T) {
	dir := t.TempDir()
	s := New(&fakeChat{}, logger.New("error"), config.SummaryConfig{Format: "md", Dir: dir})

	path, err := s.Export(context.Background(), "Mill Interview", "## Topics\n- cotton")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.HasSuffix(path, "Mill_Interview.md") {
		t.Errorf("path = %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "# Mill Interview") ||
		!strings.Contains(string(content), "- cotton") {
		t.Errorf("exported content = %q", content)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	s := New(&fakeChat{}, logger.New("error"), config.SummaryConfig{Format: "pdf", Dir: t.TempDir()})
	if _, err := s.Export(context.Background(), "x", "y"); err == nil {
		t.Error("Export() should reject unsupported formats")
	}
}
