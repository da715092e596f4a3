package transcript

import "strings"

// Speaker identifies who produced an utterance in an interview.
type Speaker string

const (
	SpeakerInterviewer Speaker = "interviewer"
	SpeakerSubject     Speaker = "subject"
	SpeakerUnknown     Speaker = "unknown"
)

// Utterance is one timestamped unit of transcribed speech, as emitted
// by the transcription engine. Times are in seconds.
type Utterance struct {
	Start float64
	End   float64
	Text  string
}

// Chunk is a merged group of utterances. Start is the first merged
// utterance's start, End the last one's end, Text the space-joined texts.
type Chunk struct {
	Start float64
	End   float64
	Text  string
}

// LabeledUtterance is an Utterance with a resolved speaker attribution.
type LabeledUtterance struct {
	Utterance
	Speaker     Speaker
	LabeledText string
}

// LabeledChunk is a merge of consecutive same-speaker labeled utterances.
type LabeledChunk struct {
	Chunk
	Speaker     Speaker
	LabeledText string
}

// Label returns the display form of an utterance text for a speaker:
// the bare text when the speaker is unknown, otherwise "SPEAKER: text".
func Label(speaker Speaker, text string) string {
	if speaker == SpeakerUnknown {
		return text
	}
	return strings.ToUpper(string(speaker)) + ": " + text
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
