package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// segmentJSONParser handles whisper's JSON output. Field names vary
// between whisper builds: start/end in seconds or t0/t1 in centiseconds,
// text or caption. The segment list itself may live under "segments",
// "result", or be the top-level array.
type segmentJSONParser struct{}

type rawSegment struct {
	Start   *float64 `json:"start"`
	End     *float64 `json:"end"`
	T0      *float64 `json:"t0"`
	T1      *float64 `json:"t1"`
	Text    string   `json:"text"`
	Caption string   `json:"caption"`
}

func (p *segmentJSONParser) Parse(raw []byte) ([]Utterance, error) {
	segments, err := decodeSegments(raw)
	if err != nil {
		return nil, err
	}

	var utterances []Utterance
	for _, s := range segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			text = strings.TrimSpace(s.Caption)
		}
		if text == "" {
			continue
		}

		utterances = append(utterances, Utterance{
			Start: segSeconds(s.Start, s.T0),
			End:   segSeconds(s.End, s.T1),
			Text:  text,
		})
	}

	return utterances, nil
}

func decodeSegments(raw []byte) ([]rawSegment, error) {
	// RawMessage keeps "key absent" apart from "key present but empty":
	// an empty segment list is a valid artifact yielding zero utterances.
	var wrapped struct {
		Segments json.RawMessage `json:"segments"`
		Result   json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		for _, list := range []json.RawMessage{wrapped.Segments, wrapped.Result} {
			if list == nil {
				continue
			}
			var segments []rawSegment
			if err := json.Unmarshal(list, &segments); err != nil {
				return nil, fmt.Errorf("transcript JSON segment list: %w", err)
			}
			return segments, nil
		}
	}

	var bare []rawSegment
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("transcript JSON has no recognizable segment list")
}

// segSeconds prefers the seconds field; t0/t1 are centiseconds.
func segSeconds(seconds, centis *float64) float64 {
	if seconds != nil {
		return *seconds
	}
	if centis != nil {
		return *centis / 100
	}
	return 0
}
