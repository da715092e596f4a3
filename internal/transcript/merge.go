package transcript

// Merge greedily coalesces utterances into chunks bounded by duration and
// word count. An utterance is absorbed into the current chunk while the
// chunk's duration is under targetDurationSec AND its word count is under
// maxWords; otherwise the chunk is flushed and a new one starts. The final
// in-progress chunk is always flushed. A single utterance already past the
// limits is never split; it passes through as its own chunk.
func Merge(utterances []Utterance, targetDurationSec float64, maxWords int) []Chunk {
	if len(utterances) == 0 {
		return nil
	}

	var merged []Chunk
	current := Chunk{
		Start: utterances[0].Start,
		End:   utterances[0].End,
		Text:  utterances[0].Text,
	}

	for _, u := range utterances[1:] {
		duration := current.End - current.Start

		if duration < targetDurationSec && wordCount(current.Text) < maxWords {
			current.End = u.End
			current.Text += " " + u.Text
		} else {
			merged = append(merged, current)
			current = Chunk{Start: u.Start, End: u.End, Text: u.Text}
		}
	}

	merged = append(merged, current)
	return merged
}

// MergeLabeled is the speaker-aware variant of Merge: an utterance is
// absorbed only if its speaker matches the current chunk's speaker and
// the duration/word bounds hold. No produced chunk mixes two speakers.
func MergeLabeled(utterances []LabeledUtterance, targetDurationSec float64, maxWords int) []LabeledChunk {
	if len(utterances) == 0 {
		return nil
	}

	var merged []LabeledChunk
	current := LabeledChunk{
		Chunk: Chunk{
			Start: utterances[0].Start,
			End:   utterances[0].End,
			Text:  utterances[0].Text,
		},
		Speaker:     utterances[0].Speaker,
		LabeledText: utterances[0].LabeledText,
	}

	for _, u := range utterances[1:] {
		duration := current.End - current.Start
		sameSpeaker := current.Speaker == u.Speaker
		underLimits := duration < targetDurationSec && wordCount(current.Text) < maxWords

		if sameSpeaker && underLimits {
			current.End = u.End
			current.Text += " " + u.Text
			current.LabeledText += " " + u.Text
		} else {
			merged = append(merged, current)
			current = LabeledChunk{
				Chunk:       Chunk{Start: u.Start, End: u.End, Text: u.Text},
				Speaker:     u.Speaker,
				LabeledText: u.LabeledText,
			}
		}
	}

	merged = append(merged, current)
	return merged
}
