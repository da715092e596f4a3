package speaker

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/transcript"
)

// escalationWindow is the number of ambiguous utterances sent per chat
// call, amortizing request overhead.
const escalationWindow = 10

var (
	reQuestionOpener = regexp.MustCompile(`(?i)^(what|how|why|where|when|who|do you|are you|can you|would you|did you)\b`)
	reFirstPerson    = regexp.MustCompile(`(?i)\b(I am|I was|I think|I believe|I grew up|I work|I live|my name|my age)\b`)
)

// inferHeuristic classifies a single utterance in isolation. Questions
// point at the interviewer, first-person statements at the subject.
func inferHeuristic(text string) transcript.Speaker {
	trimmed := strings.TrimSpace(text)

	if strings.HasSuffix(trimmed, "?") {
		return transcript.SpeakerInterviewer
	}
	if reQuestionOpener.MatchString(trimmed) {
		return transcript.SpeakerInterviewer
	}
	if reFirstPerson.MatchString(trimmed) {
		return transcript.SpeakerSubject
	}

	return transcript.SpeakerUnknown
}

// LabelSpeakers runs the heuristic pass over every utterance, then sends
// the still-unknown ones to the chat provider in fixed windows.
func (l *implLabeler) LabelSpeakers(ctx context.Context, utterances []transcript.Utterance) ([]transcript.LabeledUtterance, error) {
	labeled := make([]transcript.LabeledUtterance, 0, len(utterances))
	var unknownIndices []int

	for i, u := range utterances {
		spk := inferHeuristic(u.Text)
		labeled = append(labeled, transcript.LabeledUtterance{
			Utterance:   u,
			Speaker:     spk,
			LabeledText: transcript.Label(spk, u.Text),
		})
		if spk == transcript.SpeakerUnknown {
			unknownIndices = append(unknownIndices, i)
		}
	}

	if len(unknownIndices) > 0 {
		l.logger.Debug(ctx, "Escalating %d of %d utterances to LLM for speaker attribution",
			len(unknownIndices), len(utterances))
		if err := l.labelUnknown(ctx, labeled, unknownIndices); err != nil {
			return nil, err
		}
	}

	return labeled, nil
}

type escalationItem struct {
	Index   int    `json:"index"`
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

type escalationLabel struct {
	Index   int    `json:"index"`
	Speaker string `json:"speaker"`
}

const escalationPrompt = `Label each chunk as either "interviewer" or "subject". ` +
	`Return JSON array: [{"index": 0, "speaker": "interviewer"}, ...]`

func (l *implLabeler) labelUnknown(ctx context.Context, labeled []transcript.LabeledUtterance, unknownIndices []int) error {
	for start := 0; start < len(unknownIndices); start += escalationWindow {
		end := start + escalationWindow
		if end > len(unknownIndices) {
			end = len(unknownIndices)
		}
		window := unknownIndices[start:end]

		items := make([]escalationItem, 0, len(window))
		for _, idx := range window {
			items = append(items, escalationItem{
				Index:   idx,
				Text:    labeled[idx].Text,
				Speaker: string(labeled[idx].Speaker),
			})
		}

		payload, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("marshal escalation window: %w", err)
		}

		resp, err := l.provider.Chat(ctx, []llm.Message{
			{Role: llm.RoleSystem, Content: escalationPrompt},
			{Role: llm.RoleUser, Content: string(payload)},
		}, &llm.Options{Temperature: 0.3, MaxTokens: 500})
		if err != nil {
			return fmt.Errorf("speaker escalation: %w", err)
		}

		labels, err := parseEscalation(resp.Content, window)
		if err != nil {
			return fmt.Errorf("%w: speaker escalation: %v", llm.ErrProvider, err)
		}

		for _, label := range labels {
			spk := transcript.Speaker(label.Speaker)
			labeled[label.Index].Speaker = spk
			labeled[label.Index].LabeledText = transcript.Label(spk, labeled[label.Index].Text)
		}
	}

	return nil
}

// parseEscalation validates the model's response shape before anything is
// applied: well-formed JSON, exactly the windowed indices, speakers limited
// to interviewer/subject. Any violation fails the whole run; there is no
// partial application.
func parseEscalation(content string, window []int) ([]escalationLabel, error) {
	var labels []escalationLabel
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &labels); err != nil {
		return nil, fmt.Errorf("malformed label response: %v", err)
	}

	if len(labels) != len(window) {
		return nil, fmt.Errorf("label response covers %d indices, want %d", len(labels), len(window))
	}

	expected := make(map[int]bool, len(window))
	for _, idx := range window {
		expected[idx] = true
	}

	for _, label := range labels {
		if !expected[label.Index] {
			return nil, fmt.Errorf("label response names unexpected or duplicate index %d", label.Index)
		}
		delete(expected, label.Index)

		switch transcript.Speaker(label.Speaker) {
		case transcript.SpeakerInterviewer, transcript.SpeakerSubject:
		default:
			return nil, fmt.Errorf("label response has invalid speaker %q for index %d", label.Speaker, label.Index)
		}
	}

	return labels, nil
}

// stripCodeFence tolerates models that wrap JSON in a markdown fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
