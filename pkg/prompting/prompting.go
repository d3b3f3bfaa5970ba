// Package prompting holds the two fixed prompt templates sent to the
// text-generation model. The emotion vocabulary is not repeated in the
// template text; both prompts render it from the shared emotions package
// so the two analyses can never drift apart.
package prompting

import (
	"fmt"
	"strings"

	"emotions_api/pkg/emotions"
)

const emotionalProfileRules = `You are a lyric emotion analyst. Estimate how much of the lyrics below expresses each of the following 15 emotions: %[1]s.

Rules:
1. Respond with a single-line JSON object and nothing else: no markdown, no code fences, no text before or after, no embedded newlines.
2. The object contains exactly these 15 keys, in exactly this order: %[2]s.
3. Every value is a number between 0 and 1, and the 15 values sum to 1.0. Small rounding differences are acceptable.
4. An emotion entirely absent from the lyrics gets the value 0 but keeps its key.
5. Weigh explicit emotion words and implicit cues alike: metaphor, imagery and narrative implication all count.
6. When several emotions co-occur, distribute the proportions across them. Concentrate all mass on a single key only if the lyrics are genuinely single-emotion. Never fall back to a flat, uniform distribution.

Lyrics:`

const emotionalTagsRules = `You are a lyric emotion analyst. You will be given song lyrics and one target emotion: %[1]s.

Rules:
1. Respond with the lyrics as a single string and nothing else: no markdown, no code fences, no commentary.
2. Wrap every contiguous phrase that expresses the target emotion in <span class="%[1]s">...</span>. A phrase may span several words; tag it once over its full extent and never nest or overlap spans.
3. Account for indirect expression as well: metaphor, imagery and narrative implication, not only direct emotion words.
4. Outside the spans, reproduce the lyrics character for character. Keep all <br/> line breaks and emphasis markup exactly as given and do not escape anything.
5. If no phrase expresses the target emotion, return the lyrics unchanged.

Lyrics:`

// EmotionalProfilePrompt renders the proportional classification prompt
// for the given lyrics.
func EmotionalProfilePrompt(lyrics string) string {
	return fmt.Sprintf(emotionalProfileRules, labelList(), keyList()) + "\n" + lyrics
}

// EmotionalTagsPrompt renders the span-tagging prompt for the given
// lyrics and target emotion.
func EmotionalTagsPrompt(lyrics string, emotion emotions.Emotion) string {
	return fmt.Sprintf(emotionalTagsRules, emotion) + "\n" + lyrics
}

func labelList() string {
	all := emotions.All()
	parts := make([]string, len(all))
	for i, e := range all {
		parts[i] = string(e)
	}
	return strings.Join(parts, ", ")
}

func keyList() string {
	all := emotions.All()
	parts := make([]string, len(all))
	for i, e := range all {
		parts[i] = fmt.Sprintf("%q", string(e))
	}
	return strings.Join(parts, ", ")
}
