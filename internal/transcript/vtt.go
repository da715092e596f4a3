package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

var vttTiming = regexp.MustCompile(
	`^(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})\.(\d{3})`)

// vttParser handles WebVTT cues, which use fractional-second timestamps
// (HH:MM:SS.mmm). Cue text runs until the next blank line.
type vttParser struct{}

func (p *vttParser) Parse(raw []byte) ([]Utterance, error) {
	var utterances []Utterance

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	for i := 0; i < len(lines); i++ {
		m := vttTiming.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}

		var textLines []string
		for i++; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
			textLines = append(textLines, strings.TrimSpace(lines[i]))
		}

		text := strings.Join(textLines, " ")
		if text == "" {
			continue
		}

		utterances = append(utterances, Utterance{
			Start: vttSeconds(m[1], m[2], m[3], m[4]),
			End:   vttSeconds(m[5], m[6], m[7], m[8]),
			Text:  text,
		})
	}

	return utterances, nil
}

func vttSeconds(hours, minutes, seconds, millis string) float64 {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(millis)
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000
}
