package openai

import (
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/tool"
)

func TestNew(t *testing.T) {
	c := New()
	assert.NotNil(t, c)
	assert.NotNil(t, c.client)
	assert.Equal(t, Ceilings, c.clamps)
}

func TestBuildRequest(t *testing.T) {
	c := New()
	params := provider.CompletionParams{
		Instructions: "You are terse.",
		UserMessage:  "Hello",
		Model:        "gpt-4o",
		MaxTokens:    50000,
		Tools: []tool.Definition{
			tool.Must("lookup", tool.Parameter("q", "string", "query", true)),
		},
	}

	req, err := c.buildRequest(&params)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", string(req.Model.Value))
	assert.Equal(t, int64(1), req.N.Value)
	assert.Equal(t, 0.7, req.Temperature.Value)
	// 50000 exceeds the gpt-4o family ceiling
	assert.Equal(t, int64(16384), req.MaxCompletionTokens.Value)
	assert.True(t, req.ParallelToolCalls.Value)

	msgs := req.Messages.Value
	require.Len(t, msgs, 2)

	tools := req.Tools.Value
	require.Len(t, tools, 1)
	assert.Equal(t, "lookup", tools[0].Function.Value.Name.Value)
}

func TestBuildRequestNoInstructions(t *testing.T) {
	c := New()
	req, err := c.buildRequest(&provider.CompletionParams{
		UserMessage: "hi",
		Model:       "o3-mini",
	})
	require.NoError(t, err)

	require.Len(t, req.Messages.Value, 1)
	assert.Equal(t, int64(100000), req.MaxCompletionTokens.Value)
	assert.False(t, req.Tools.Present)
}

func TestBuildRequestExplicitTemperature(t *testing.T) {
	c := New()
	temp := 0.2
	req, err := c.buildRequest(&provider.CompletionParams{
		UserMessage: "hi",
		Model:       "gpt-4o",
		Temperature: &temp,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.2, req.Temperature.Value)
}

func TestExtractCompletionText(t *testing.T) {
	var chat openai.ChatCompletion
	require.NoError(t, chat.UnmarshalJSON([]byte(`{
		"choices": [{"message": {"role": "assistant", "content": "hello world"}}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 3}
	}`)))

	completion, err := extractCompletion(&chat, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "hello world", completion.Text)
	assert.Empty(t, completion.ToolCalls)
	assert.Equal(t, int64(12), completion.Usage.InputTokens)
	assert.Equal(t, int64(3), completion.Usage.OutputTokens)
}

func TestExtractCompletionToolCalls(t *testing.T) {
	var chat openai.ChatCompletion
	require.NoError(t, chat.UnmarshalJSON([]byte(`{
		"choices": [{"message": {"role": "assistant", "tool_calls": [
			{"id": "call_1", "type": "function", "function": {"name": "lookup", "arguments": "{\"q\":\"go\"}"}}
		]}}]
	}`)))

	completion, err := extractCompletion(&chat, "gpt-4o")
	require.NoError(t, err)
	assert.Empty(t, completion.Text)
	require.Len(t, completion.ToolCalls, 1)
	assert.Equal(t, "call_1", completion.ToolCalls[0].ID)
	assert.Equal(t, "lookup", completion.ToolCalls[0].Name)
	assert.Equal(t, `{"q":"go"}`, completion.ToolCalls[0].Arguments)
}

func TestExtractCompletionEmptyIsError(t *testing.T) {
	var chat openai.ChatCompletion
	require.NoError(t, chat.UnmarshalJSON([]byte(`{
		"choices": [{"message": {"role": "assistant", "content": "   "}}]
	}`)))

	_, err := extractCompletion(&chat, "gpt-4o")
	require.Error(t, err)

	var empty *provider.EmptyResponseError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "gpt-4o", empty.Model)
}
