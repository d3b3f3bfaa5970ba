package emotions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"emotions_api/pkg/emotions"
)

const lonelyRoad = "I've been walking a lonely road, dreaming of a love I lost."

func TestValidateTaggedSingleSpan(t *testing.T) {
	tagged := `I've been walking a lonely road, <span class="love">dreaming of a love I lost</span>.`

	err := emotions.ValidateTagged(lonelyRoad, tagged, emotions.Love)
	require.NoError(t, err)
}

func TestValidateTaggedMultipleSpans(t *testing.T) {
	original := "Alone at night<br/>I miss you still<br/>alone again"
	tagged := `<span class="loneliness">Alone at night</span><br/>I miss you still<br/><span class="loneliness">alone again</span>`

	err := emotions.ValidateTagged(original, tagged, emotions.Loneliness)
	require.NoError(t, err)
}

func TestValidateTaggedNoSpans(t *testing.T) {
	err := emotions.ValidateTagged(lonelyRoad, lonelyRoad, emotions.Joy)
	require.NoError(t, err)
}

func TestValidateTaggedWrongEmotion(t *testing.T) {
	tagged := `I've been walking a lonely road, <span class="sadness">dreaming of a love I lost</span>.`

	err := emotions.ValidateTagged(lonelyRoad, tagged, emotions.Love)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sadness")
}

func TestValidateTaggedAlteredText(t *testing.T) {
	tagged := `I have been walking a lonely road, <span class="love">dreaming of a love I lost</span>.`

	err := emotions.ValidateTagged(lonelyRoad, tagged, emotions.Love)
	require.Error(t, err)
}

func TestValidateTaggedNestedSpans(t *testing.T) {
	original := "dreaming of a love I lost"
	tagged := `<span class="love">dreaming of <span class="love">a love</span> I lost</span>`

	err := emotions.ValidateTagged(original, tagged, emotions.Love)
	require.Error(t, err)
}

func TestValidateTaggedUnclosedSpan(t *testing.T) {
	tagged := `I've been walking a lonely road, <span class="love">dreaming of a love I lost.`

	err := emotions.ValidateTagged(lonelyRoad, tagged, emotions.Love)
	require.Error(t, err)
}

func TestValidateTaggedDanglingClose(t *testing.T) {
	tagged := lonelyRoad + "</span>"

	err := emotions.ValidateTagged(lonelyRoad, tagged, emotions.Love)
	require.Error(t, err)
}

func TestValidateTaggedPreservesMarkup(t *testing.T) {
	original := "So <i>grateful</i> for it all<br/>every single day"
	tagged := `So <span class="gratitude"><i>grateful</i> for it all</span><br/>every single day`

	err := emotions.ValidateTagged(original, tagged, emotions.Gratitude)
	require.NoError(t, err)
}
