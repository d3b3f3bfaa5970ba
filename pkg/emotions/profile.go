package emotions

import (
	"encoding/json"
	"fmt"
	"math"
)

// SumTolerance is how far the raw model proportions may drift from 1.0
// before the output is rejected instead of normalized.
const SumTolerance = 0.05

// Profile maps every emotion to its share of the lyrics. A parsed
// profile always carries all 15 keys and its values sum to 1.0.
type Profile struct {
	Joy          float64 `json:"joy"`
	Sadness      float64 `json:"sadness"`
	Anger        float64 `json:"anger"`
	Fear         float64 `json:"fear"`
	Love         float64 `json:"love"`
	Hope         float64 `json:"hope"`
	Nostalgia    float64 `json:"nostalgia"`
	Loneliness   float64 `json:"loneliness"`
	Confidence   float64 `json:"confidence"`
	Despair      float64 `json:"despair"`
	Excitement   float64 `json:"excitement"`
	Mystery      float64 `json:"mystery"`
	Defiance     float64 `json:"defiance"`
	Gratitude    float64 `json:"gratitude"`
	Spirituality float64 `json:"spirituality"`
}

// Value returns the proportion assigned to e.
func (p Profile) Value(e Emotion) float64 {
	switch e {
	case Joy:
		return p.Joy
	case Sadness:
		return p.Sadness
	case Anger:
		return p.Anger
	case Fear:
		return p.Fear
	case Love:
		return p.Love
	case Hope:
		return p.Hope
	case Nostalgia:
		return p.Nostalgia
	case Loneliness:
		return p.Loneliness
	case Confidence:
		return p.Confidence
	case Despair:
		return p.Despair
	case Excitement:
		return p.Excitement
	case Mystery:
		return p.Mystery
	case Defiance:
		return p.Defiance
	case Gratitude:
		return p.Gratitude
	case Spirituality:
		return p.Spirituality
	}
	return 0
}

// Sum returns the total of all 15 proportions.
func (p Profile) Sum() float64 {
	var sum float64
	for _, e := range vocabulary {
		sum += p.Value(e)
	}
	return sum
}

// ParseProfile decodes raw model output into a Profile and enforces the
// structural contract: exactly the 15 fixed keys, every value in [0,1],
// values summing to 1.0 within SumTolerance. A close-but-inexact sum is
// scaled to exactly 1.0; everything else is rejected as-is, never
// repaired into a different distribution.
func ParseProfile(data []byte) (Profile, error) {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return Profile{}, fmt.Errorf("profile is not a JSON object of numbers: %w", err)
	}

	var sum float64
	for _, e := range vocabulary {
		v, ok := raw[string(e)]
		if !ok {
			return Profile{}, fmt.Errorf("profile is missing key %q", e)
		}
		if v < 0 || v > 1 {
			return Profile{}, fmt.Errorf("profile value for %q out of range: %v", e, v)
		}
		sum += v
	}
	if len(raw) != len(vocabulary) {
		for k := range raw {
			if _, err := Parse(k); err != nil {
				return Profile{}, fmt.Errorf("profile contains unexpected key %q", k)
			}
		}
	}
	if math.Abs(sum-1) > SumTolerance {
		return Profile{}, fmt.Errorf("profile values sum to %v, want 1.0", sum)
	}

	return Profile{
		Joy:          raw["joy"] / sum,
		Sadness:      raw["sadness"] / sum,
		Anger:        raw["anger"] / sum,
		Fear:         raw["fear"] / sum,
		Love:         raw["love"] / sum,
		Hope:         raw["hope"] / sum,
		Nostalgia:    raw["nostalgia"] / sum,
		Loneliness:   raw["loneliness"] / sum,
		Confidence:   raw["confidence"] / sum,
		Despair:      raw["despair"] / sum,
		Excitement:   raw["excitement"] / sum,
		Mystery:      raw["mystery"] / sum,
		Defiance:     raw["defiance"] / sum,
		Gratitude:    raw["gratitude"] / sum,
		Spirituality: raw["spirituality"] / sum,
	}, nil
}
