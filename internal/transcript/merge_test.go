package transcript

import (
	"strings"
	"testing"
)

func utt(start, end float64, text string) Utterance {
	return Utterance{Start: start, End: end, Text: text}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(nil, 60, 300); len(got) != 0 {
		t.Errorf("Merge(nil) = %v, want empty", got)
	}
}

func TestMergeSingle(t *testing.T) {
	chunks := Merge([]Utterance{utt(0, 10, "only one")}, 60, 300)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0].Start != 0 || chunks[0].End != 10 || chunks[0].Text != "only one" {
		t.Errorf("chunk = %+v", chunks[0])
	}
}

// Three blocks of 20s, 25s and 30s against 60s/300w bounds: blocks 1-2
// merge (45s still under target), block 3 starts a fresh chunk because
// the 45s chunk fails the bound check at the point of absorption.
func TestMergeDurationScenario(t *testing.T) {
	utts := []Utterance{
		utt(0, 20, "block one"),
		utt(20, 45, "block two"),
		utt(45, 75, "block three"),
	}

	chunks := Merge(utts, 60, 300)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Start != 0 || chunks[0].End != 45 || chunks[0].Text != "block one block two" {
		t.Errorf("chunk 1 = %+v", chunks[0])
	}
	if chunks[1].Start != 45 || chunks[1].End != 75 || chunks[1].Text != "block three" {
		t.Errorf("chunk 2 = %+v", chunks[1])
	}
}

func TestMergeWordBound(t *testing.T) {
	long := strings.Repeat("word ", 300)
	utts := []Utterance{
		utt(0, 1, strings.TrimSpace(long)),
		utt(1, 2, "next"),
	}

	chunks := Merge(utts, 600, 300)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2 (word bound should flush)", len(chunks))
	}
}

func TestMergeOversizedSingletonPassesThrough(t *testing.T) {
	utts := []Utterance{utt(0, 500, "one long monologue")}
	chunks := Merge(utts, 60, 300)
	if len(chunks) != 1 || chunks[0].End != 500 {
		t.Errorf("oversized utterance should pass through unsplit: %+v", chunks)
	}
}

// Concatenating all output texts must reproduce the input texts in order,
// whatever the bounds.
func TestMergeTextCoverage(t *testing.T) {
	utts := []Utterance{
		utt(0, 5, "alpha"),
		utt(5, 12, "beta gamma"),
		utt(12, 30, "delta"),
		utt(30, 100, "epsilon zeta"),
		utt(100, 130, "eta"),
	}

	var wantParts []string
	for _, u := range utts {
		wantParts = append(wantParts, u.Text)
	}
	want := strings.Join(wantParts, " ")

	for _, bounds := range []struct {
		dur   float64
		words int
	}{{60, 300}, {180, 500}, {1, 1}, {1000, 10000}} {
		chunks := Merge(utts, bounds.dur, bounds.words)
		var gotParts []string
		for _, c := range chunks {
			gotParts = append(gotParts, c.Text)
		}
		if got := strings.Join(gotParts, " "); got != want {
			t.Errorf("bounds %v/%d: merged text %q, want %q", bounds.dur, bounds.words, got, want)
		}
	}
}

func TestMergeLabeledSpeakerPurity(t *testing.T) {
	labeled := []LabeledUtterance{
		{Utterance: utt(0, 5, "How are you?"), Speaker: SpeakerInterviewer, LabeledText: "INTERVIEWER: How are you?"},
		{Utterance: utt(5, 10, "Fine thanks."), Speaker: SpeakerSubject, LabeledText: "SUBJECT: Fine thanks."},
		{Utterance: utt(10, 15, "I grew up here."), Speaker: SpeakerSubject, LabeledText: "SUBJECT: I grew up here."},
		{Utterance: utt(15, 20, "And your work?"), Speaker: SpeakerInterviewer, LabeledText: "INTERVIEWER: And your work?"},
	}

	chunks := MergeLabeled(labeled, 60, 300)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	want := []Speaker{SpeakerInterviewer, SpeakerSubject, SpeakerInterviewer}
	for i, c := range chunks {
		if c.Speaker != want[i] {
			t.Errorf("chunk %d speaker = %v, want %v", i, c.Speaker, want[i])
		}
	}

	if chunks[1].Text != "Fine thanks. I grew up here." {
		t.Errorf("same-speaker merge text = %q", chunks[1].Text)
	}
	if chunks[1].LabeledText != "SUBJECT: Fine thanks. I grew up here." {
		t.Errorf("same-speaker merge labeled text = %q", chunks[1].LabeledText)
	}
}

func TestMergeLabeledRespectsBounds(t *testing.T) {
	labeled := []LabeledUtterance{
		{Utterance: utt(0, 40, "part one"), Speaker: SpeakerSubject, LabeledText: "SUBJECT: part one"},
		{Utterance: utt(40, 70, "part two"), Speaker: SpeakerSubject, LabeledText: "SUBJECT: part two"},
		{Utterance: utt(70, 90, "part three"), Speaker: SpeakerSubject, LabeledText: "SUBJECT: part three"},
	}

	chunks := MergeLabeled(labeled, 60, 300)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2 (duration bound should flush)", len(chunks))
	}
}

func TestLabel(t *testing.T) {
	if got := Label(SpeakerInterviewer, "hello"); got != "INTERVIEWER: hello" {
		t.Errorf("Label() = %q", got)
	}
	if got := Label(SpeakerUnknown, "hello"); got != "hello" {
		t.Errorf("Label() = %q, want bare text for unknown speaker", got)
	}
}
