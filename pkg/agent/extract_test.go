package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
		ok    bool
	}{
		{
			name:  "bare object",
			reply: `{"candidates": []}`,
			want:  `{"candidates": []}`,
			ok:    true,
		},
		{
			name:  "bare array",
			reply: `[1, 2, 3]`,
			want:  `[1, 2, 3]`,
			ok:    true,
		},
		{
			name:  "bare object with surrounding whitespace",
			reply: "\n  {\"a\": 1}\n",
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "json fenced block",
			reply: "Here is the result:\n```json\n{\"a\": 1}\n```\nThanks!",
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "unlabelled fenced block",
			reply: "Result:\n```\n{\"b\": 2}\n```",
			want:  `{"b": 2}`,
			ok:    true,
		},
		{
			name:  "json fence wins over unlabelled fence",
			reply: "```\nnot json\n```\n```json\n{\"c\": 3}\n```",
			want:  `{"c": 3}`,
			ok:    true,
		},
		{
			name:  "prose only",
			reply: "I could not produce a result.",
			ok:    false,
		},
		{
			name:  "fenced block with invalid json",
			reply: "```json\n{broken\n```",
			ok:    false,
		},
		{
			name:  "empty reply",
			reply: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.reply)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.JSONEq(t, tt.want, got)
			}
		})
	}
}
