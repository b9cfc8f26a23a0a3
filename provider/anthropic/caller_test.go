package anthropic

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/tool"
)

func TestNew(t *testing.T) {
	c := New()
	assert.NotNil(t, c)
	assert.Equal(t, Ceilings, c.clamps)
}

func TestBuildRequest(t *testing.T) {
	c := New()
	params := provider.CompletionParams{
		Instructions: "Answer briefly.",
		UserMessage:  "Hello",
		Model:        "claude-3-7-sonnet-latest",
		MaxTokens:    500000,
		Tools: []tool.Definition{
			tool.Must("lookup", tool.Parameter("q", "string", "query", true)),
		},
	}

	req, err := c.buildRequest(&params)
	require.NoError(t, err)

	assert.Equal(t, anthropic.Model("claude-3-7-sonnet-latest"), req.Model)
	// 500000 exceeds the sonnet ceiling
	assert.Equal(t, int64(64000), req.MaxTokens)
	assert.Equal(t, 0.7, req.Temperature.Value)

	require.Len(t, req.System, 1)
	assert.Equal(t, "Answer briefly.", req.System[0].Text)

	require.Len(t, req.Messages, 1)
	require.Len(t, req.Tools, 1)
	require.NotNil(t, req.Tools[0].OfTool)
	assert.Equal(t, "lookup", req.Tools[0].OfTool.Name)
	assert.Contains(t, req.Tools[0].OfTool.InputSchema.Properties, "q")
}

func TestBuildRequestNoInstructions(t *testing.T) {
	c := New()
	req, err := c.buildRequest(&provider.CompletionParams{
		UserMessage: "hi",
		Model:       "claude-3-5-haiku-latest",
	})
	require.NoError(t, err)

	assert.Empty(t, req.System)
	assert.Equal(t, int64(32000), req.MaxTokens)
	assert.Empty(t, req.Tools)
}

func TestExtractCompletionText(t *testing.T) {
	var msg anthropic.Message
	require.NoError(t, json.Unmarshal([]byte(`{
		"content": [
			{"type": "text", "text": "first "},
			{"type": "text", "text": "second"}
		],
		"usage": {"input_tokens": 9, "output_tokens": 4}
	}`), &msg))

	completion, err := extractCompletion(&msg, "claude-3-7-sonnet-latest")
	require.NoError(t, err)
	assert.Equal(t, "first second", completion.Text)
	assert.Equal(t, int64(9), completion.Usage.InputTokens)
	assert.Equal(t, int64(4), completion.Usage.OutputTokens)
}

func TestExtractCompletionToolUse(t *testing.T) {
	var msg anthropic.Message
	require.NoError(t, json.Unmarshal([]byte(`{
		"content": [
			{"type": "tool_use", "id": "toolu_1", "name": "lookup", "input": {"q": "go"}}
		]
	}`), &msg))

	completion, err := extractCompletion(&msg, "claude-3-7-sonnet-latest")
	require.NoError(t, err)
	assert.Empty(t, completion.Text)
	require.Len(t, completion.ToolCalls, 1)
	assert.Equal(t, "toolu_1", completion.ToolCalls[0].ID)
	assert.Equal(t, "lookup", completion.ToolCalls[0].Name)
	assert.JSONEq(t, `{"q":"go"}`, completion.ToolCalls[0].Arguments)
}

func TestExtractCompletionEmptyIsError(t *testing.T) {
	var msg anthropic.Message
	require.NoError(t, json.Unmarshal([]byte(`{"content": [{"type": "text", "text": "  "}]}`), &msg))

	_, err := extractCompletion(&msg, "claude-3-5-haiku-latest")
	require.Error(t, err)

	var empty *provider.EmptyResponseError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "claude-3-5-haiku-latest", empty.Model)
}
