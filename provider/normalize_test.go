package provider

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strixlabs/switchboard/messages"
)

func collect(completion messages.Completion) []StreamEvent {
	runID := uuid.New()
	events := make(chan StreamEvent, 16)
	Normalize(runID, completion, events)
	close(events)

	var out []StreamEvent
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func TestNormalizeTextCompletion(t *testing.T) {
	events := collect(messages.Completion{Model: "gpt-4o", Text: "hello"})
	require.Len(t, events, 4)

	start, ok := events[0].(Delim)
	require.True(t, ok)
	assert.Equal(t, "start", start.Delim)

	chunk, ok := events[1].(Chunk[messages.Assistant])
	require.True(t, ok)
	assert.Equal(t, "hello", chunk.Chunk.Content)

	end, ok := events[2].(Delim)
	require.True(t, ok)
	assert.Equal(t, "end", end.Delim)

	final, ok := events[3].(Response[messages.Assistant])
	require.True(t, ok)
	assert.Equal(t, "hello", final.Response.Content)
	assert.Equal(t, "gpt-4o", final.Model)
}

func TestNormalizeToolCallCompletion(t *testing.T) {
	events := collect(messages.Completion{
		Model:     "claude-3-7-sonnet-latest",
		ToolCalls: []messages.ToolCallData{{ID: "t1", Name: "search", Arguments: `{}`}},
	})
	require.Len(t, events, 3)

	final, ok := events[2].(Response[messages.ToolCall])
	require.True(t, ok)
	require.Len(t, final.Response.Calls, 1)
	assert.Equal(t, "search", final.Response.Calls[0].Name)
}

func TestNormalizeSharedRunID(t *testing.T) {
	runID := uuid.New()
	events := make(chan StreamEvent, 16)
	Normalize(runID, messages.Completion{Model: "gemini-2.0-flash", Text: "ok"}, events)
	close(events)

	for ev := range events {
		switch e := ev.(type) {
		case Delim:
			assert.Equal(t, runID, e.RunID)
		case Chunk[messages.Assistant]:
			assert.Equal(t, runID, e.RunID)
		case Response[messages.Assistant]:
			assert.Equal(t, runID, e.RunID)
		default:
			t.Fatalf("unexpected event %T", ev)
		}
	}
}

func TestFailedEmitsTerminalError(t *testing.T) {
	runID := uuid.New()
	events := make(chan StreamEvent, 1)
	Failed(runID, "grok-2", assert.AnError, events)
	close(events)

	ev := <-events
	failure, ok := ev.(Error)
	require.True(t, ok)
	assert.Equal(t, runID, failure.RunID)
	assert.Equal(t, "grok-2", failure.Model)
	assert.ErrorIs(t, failure.Err, assert.AnError)
}
