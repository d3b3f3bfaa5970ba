package openai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"joy\":1}\n```", `{"joy":1}`},
		{"bare fence", "```\n{\"joy\":1}\n```", `{"joy":1}`},
		{"no fence", `{"joy":1}`, `{"joy":1}`},
		{"plain text untouched", "a lonely road", "a lonely road"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, trimFences(tc.in))
		})
	}
}
