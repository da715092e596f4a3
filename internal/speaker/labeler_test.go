package speaker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/logger"
	"github.com/workerlens/transcript-archive/internal/transcript"
)

// fakeProvider labels every escalated utterance with a fixed speaker, or
// returns a canned response/error.
type fakeProvider struct {
	speaker  string
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Chat(ctx context.Context, messages []llm.Message, opts *llm.Options) (*llm.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.response != "" {
		return &llm.Response{Content: f.response}, nil
	}

	var items []escalationItem
	if err := json.Unmarshal([]byte(messages[len(messages)-1].Content), &items); err != nil {
		return nil, err
	}
	labels := make([]escalationLabel, 0, len(items))
	for _, it := range items {
		labels = append(labels, escalationLabel{Index: it.Index, Speaker: f.speaker})
	}
	out, _ := json.Marshal(labels)
	return &llm.Response{Content: string(out)}, nil
}

func (f *fakeProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	return nil, errors.New("not implemented")
}

func TestInferHeuristic(t *testing.T) {
	tests := []struct {
		text string
		want transcript.Speaker
	}{
		{"What is your name?", transcript.SpeakerInterviewer},
		{"Tell me about the strike, would you", transcript.SpeakerUnknown},
		{"Would you say it changed things", transcript.SpeakerInterviewer},
		{"I grew up in Ohio.", transcript.SpeakerSubject},
		{"My name is Walter.", transcript.SpeakerSubject},
		{"The weather was nice.", transcript.SpeakerUnknown},
		{"  Did you join the union  ", transcript.SpeakerInterviewer},
		{"i think it mattered a great deal", transcript.SpeakerSubject},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := inferHeuristic(tt.text); got != tt.want {
				t.Errorf("inferHeuristic(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLabelSpeakersHeuristicOnly(t *testing.T) {
	fake := &fakeProvider{speaker: "subject"}
	labeler := New(fake, logger.New("error"))

	utts := []transcript.Utterance{
		{Start: 0, End: 5, Text: "What is your name?"},
		{Start: 5, End: 10, Text: "I grew up in Ohio."},
	}

	labeled, err := labeler.LabelSpeakers(context.Background(), utts)
	if err != nil {
		t.Fatalf("LabelSpeakers() error = %v", err)
	}

	if fake.calls != 0 {
		t.Errorf("provider called %d times, want 0 when heuristics resolve everything", fake.calls)
	}
	if labeled[0].Speaker != transcript.SpeakerInterviewer {
		t.Errorf("speaker[0] = %v", labeled[0].Speaker)
	}
	if labeled[0].LabeledText != "INTERVIEWER: What is your name?" {
		t.Errorf("labeled text = %q", labeled[0].LabeledText)
	}
	if labeled[1].Speaker != transcript.SpeakerSubject {
		t.Errorf("speaker[1] = %v", labeled[1].Speaker)
	}
}

func TestLabelSpeakersEscalation(t *testing.T) {
	fake := &fakeProvider{speaker: "subject"}
	labeler := New(fake, logger.New("error"))

	// 12 ambiguous utterances force two windows of 10 and 2.
	utts := make([]transcript.Utterance, 12)
	for i := range utts {
		utts[i] = transcript.Utterance{
			Start: float64(i), End: float64(i + 1),
			Text: fmt.Sprintf("The mill ran day and night, number %d.", i),
		}
	}

	labeled, err := labeler.LabelSpeakers(context.Background(), utts)
	if err != nil {
		t.Fatalf("LabelSpeakers() error = %v", err)
	}

	if fake.calls != 2 {
		t.Errorf("provider called %d times, want 2 windows", fake.calls)
	}
	if len(labeled) != len(utts) {
		t.Fatalf("output length %d, want %d", len(labeled), len(utts))
	}
	for i, lu := range labeled {
		if lu.Speaker != transcript.SpeakerSubject {
			t.Errorf("utterance %d speaker = %v, want subject after escalation", i, lu.Speaker)
		}
		if lu.LabeledText != "SUBJECT: "+lu.Text {
			t.Errorf("utterance %d labeled text = %q", i, lu.LabeledText)
		}
	}
}

func TestLabelSpeakersMalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "the first one is the interviewer"},
		{"wrong index", `[{"index": 99, "speaker": "subject"}]`},
		{"invalid speaker", `[{"index": 0, "speaker": "narrator"}]`},
		{"missing coverage", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvider{response: tt.response}
			labeler := New(fake, logger.New("error"))

			utts := []transcript.Utterance{{Start: 0, End: 1, Text: "The weather was nice."}}
			_, err := labeler.LabelSpeakers(context.Background(), utts)
			if err == nil {
				t.Fatal("LabelSpeakers() should fail on malformed escalation response")
			}
			if !errors.Is(err, llm.ErrProvider) {
				t.Errorf("error %v should wrap llm.ErrProvider", err)
			}
		})
	}
}

func TestLabelSpeakersProviderError(t *testing.T) {
	fake := &fakeProvider{err: fmt.Errorf("%w: boom", llm.ErrProvider)}
	labeler := New(fake, logger.New("error"))

	utts := []transcript.Utterance{{Start: 0, End: 1, Text: "The weather was nice."}}
	if _, err := labeler.LabelSpeakers(context.Background(), utts); err == nil {
		t.Fatal("LabelSpeakers() should propagate provider errors")
	}
}

func TestParseEscalationCodeFence(t *testing.T) {
	content := "```json\n[{\"index\": 3, \"speaker\": \"interviewer\"}]\n```"
	labels, err := parseEscalation(content, []int{3})
	if err != nil {
		t.Fatalf("parseEscalation() error = %v", err)
	}
	if len(labels) != 1 || labels[0].Index != 3 || labels[0].Speaker != "interviewer" {
		t.Errorf("labels = %+v", labels)
	}
}
