package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

var srtTiming = regexp.MustCompile(
	`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`)

// srtParser handles SubRip subtitle output: blank-line separated blocks
// of an index line, a timing line and one or more text lines.
type srtParser struct{}

func (p *srtParser) Parse(raw []byte) ([]Utterance, error) {
	var utterances []Utterance

	blocks := strings.Split(strings.ReplaceAll(strings.TrimSpace(string(raw)), "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}

		m := srtTiming.FindStringSubmatch(lines[1])
		if m == nil {
			continue
		}

		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		if text == "" {
			continue
		}

		utterances = append(utterances, Utterance{
			Start: srtSeconds(m[1], m[2], m[3], m[4]),
			End:   srtSeconds(m[5], m[6], m[7], m[8]),
			Text:  text,
		})
	}

	return utterances, nil
}

// srtSeconds converts an HH:MM:SS,mmm timestamp to floating seconds.
func srtSeconds(hours, minutes, seconds, millis string) float64 {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(millis)
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000
}
