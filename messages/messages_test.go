package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionEmpty(t *testing.T) {
	tests := []struct {
		name       string
		completion Completion
		want       bool
	}{
		{
			name:       "text",
			completion: Completion{Model: "gpt-4o", Text: "hello"},
			want:       false,
		},
		{
			name: "tool calls",
			completion: Completion{
				Model:     "gpt-4o",
				ToolCalls: []ToolCallData{{ID: "call_1", Name: "calculate", Arguments: `{"a":1}`}},
			},
			want: false,
		},
		{
			name:       "empty",
			completion: Completion{Model: "gpt-4o"},
			want:       true,
		},
		{
			name:       "whitespace only",
			completion: Completion{Model: "gpt-4o", Text: " \n\t "},
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.completion.Empty())
		})
	}
}
