package emotions

import "fmt"

// Emotion is one of the fixed 15 category labels shared by the profile
// and tagging analyses. The set is closed; labels outside it are rejected
// before any model call is made.
type Emotion string

const (
	Joy          Emotion = "joy"
	Sadness      Emotion = "sadness"
	Anger        Emotion = "anger"
	Fear         Emotion = "fear"
	Love         Emotion = "love"
	Hope         Emotion = "hope"
	Nostalgia    Emotion = "nostalgia"
	Loneliness   Emotion = "loneliness"
	Confidence   Emotion = "confidence"
	Despair      Emotion = "despair"
	Excitement   Emotion = "excitement"
	Mystery      Emotion = "mystery"
	Defiance     Emotion = "defiance"
	Gratitude    Emotion = "gratitude"
	Spirituality Emotion = "spirituality"
)

// vocabulary holds the labels in serialization order. Both prompt
// templates and the profile key set depend on this order.
var vocabulary = []Emotion{
	Joy, Sadness, Anger, Fear, Love,
	Hope, Nostalgia, Loneliness, Confidence, Despair,
	Excitement, Mystery, Defiance, Gratitude, Spirituality,
}

// All returns the emotion vocabulary in serialization order.
// The returned slice is a copy and may be modified by the caller.
func All() []Emotion {
	out := make([]Emotion, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// Parse validates s against the fixed vocabulary.
func Parse(s string) (Emotion, error) {
	for _, e := range vocabulary {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown emotion: %q", s)
}
