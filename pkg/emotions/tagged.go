package emotions

import (
	"errors"
	"fmt"
	"strings"
)

const spanOpenPrefix = `<span class="`

// ValidateTagged enforces the reconstruction contract on tagged model
// output: stripping every span wrapper yields the original lyrics byte
// for byte, every span carries the requested emotion as its class, and
// spans are neither nested nor left unclosed.
//
// Lyrics that already contain literal span markup of their own cannot
// be told apart from model-added spans and fail validation here.
func ValidateTagged(original, tagged string, emotion Emotion) error {
	openTag := spanOpenPrefix + string(emotion) + `">`

	var stripped strings.Builder
	stripped.Grow(len(original))
	open := false

	for i := 0; i < len(tagged); {
		rest := tagged[i:]
		switch {
		case strings.HasPrefix(rest, spanOpenPrefix):
			end := strings.Index(rest, ">")
			if end < 0 {
				return errors.New("unterminated span tag")
			}
			if tag := rest[:end+1]; tag != openTag {
				class := strings.TrimSuffix(strings.TrimPrefix(tag, spanOpenPrefix), `">`)
				return fmt.Errorf("span tagged %q, want %q", class, emotion)
			}
			if open {
				return errors.New("nested span")
			}
			open = true
			i += end + 1
		case strings.HasPrefix(rest, "</span>"):
			if !open {
				return errors.New("closing span without an opening span")
			}
			open = false
			i += len("</span>")
		default:
			stripped.WriteByte(tagged[i])
			i++
		}
	}
	if open {
		return errors.New("unclosed span")
	}
	if stripped.String() != original {
		return errors.New("stripped output does not reconstruct the original lyrics")
	}
	return nil
}
