package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/tool"
	"google.golang.org/genai"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		requested string
		want      string
	}{
		{"gemini-2.0-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-1.5-pro"},
		{"gemini-2.0-ultra", "gemini-1.5-pro"},
		{"gemini-2.0-pro-vision", "gemini-2.0-pro"},
		{"gemini-2.0-flash-lite", "gemini-2.0-flash-lite"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveModel(tt.requested), tt.requested)
	}
}

func TestCeilings(t *testing.T) {
	assert.Equal(t, int64(16384), Ceilings.Clamp("gemini-2.0-ultra", 100000))
	assert.Equal(t, int64(16384), Ceilings.Clamp("gemini-2.0-pro-vision", 100000))
	assert.Equal(t, int64(8192), Ceilings.Clamp("gemini-2.0-flash", 100000))
	assert.Equal(t, int64(8192), Ceilings.Clamp("gemini-pro", 100000))
	assert.Equal(t, int64(2048), Ceilings.Clamp("gemini-2.0-flash", 2048))
}

func TestBuildConfig(t *testing.T) {
	c := &Caller{clamps: Ceilings}
	params := provider.CompletionParams{
		Instructions: "Be brief.",
		UserMessage:  "Hello",
		Model:        "gemini-2.0-flash",
		MaxTokens:    100000,
		Tools: []tool.Definition{
			tool.Must("lookup", tool.Parameter("q", "string", "query", true)),
		},
	}

	config, err := c.buildConfig(&params)
	require.NoError(t, err)

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, float64(*config.Temperature), 1e-6)
	assert.Equal(t, int32(8192), config.MaxOutputTokens)

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "Be brief.", config.SystemInstruction.Parts[0].Text)

	require.Len(t, config.Tools, 1)
	require.Len(t, config.Tools[0].FunctionDeclarations, 1)
	assert.Equal(t, "lookup", config.Tools[0].FunctionDeclarations[0].Name)
}

func TestExtractCompletionText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "answer"}}},
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     7,
			CandidatesTokenCount: 2,
		},
	}

	completion, err := extractCompletion(resp, "gemini-2.0-flash")
	require.NoError(t, err)
	assert.Equal(t, "answer", completion.Text)
	assert.Equal(t, int64(7), completion.Usage.InputTokens)
	assert.Equal(t, int64(2), completion.Usage.OutputTokens)
}

func TestExtractCompletionFunctionCall(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{
				FunctionCall: &genai.FunctionCall{
					ID:   "fc_1",
					Name: "lookup",
					Args: map[string]any{"q": "go"},
				},
			}}},
		}},
	}

	completion, err := extractCompletion(resp, "gemini-2.0-flash")
	require.NoError(t, err)
	require.Len(t, completion.ToolCalls, 1)
	assert.Equal(t, "fc_1", completion.ToolCalls[0].ID)
	assert.Equal(t, "lookup", completion.ToolCalls[0].Name)
	assert.JSONEq(t, `{"q":"go"}`, completion.ToolCalls[0].Arguments)
}

func TestExtractCompletionMultipleParts(t *testing.T) {
	// Text split across parts; the accessor joins them, walking parts is the
	// backstop when it does not.
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "first "}, {Text: "second"}}},
		}},
	}

	completion, err := extractCompletion(resp, "gemini-pro")
	require.NoError(t, err)
	assert.Equal(t, "first second", completion.Text)
}

func TestExtractCompletionEmptyIsError(t *testing.T) {
	_, err := extractCompletion(&genai.GenerateContentResponse{}, "gemini-2.0-flash")
	require.Error(t, err)

	var empty *provider.EmptyResponseError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "gemini-2.0-flash", empty.Model)
}
