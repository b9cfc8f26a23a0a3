// Package google implements the backend caller for Gemini models through
// the Gemini API. Requested model names pass through a small alias table
// first: the catalog still lists a few retired names, and Google serves
// their closest current equivalents.
package google

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/strixlabs/switchboard/messages"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/toolshape"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

// Ceilings caps output budgets per Gemini family. The clamp keys on the
// requested name, not the alias target, so a retired name keeps the budget
// it always had.
var Ceilings = provider.ClampTable{
	Ceilings: []provider.Ceiling{
		{Match: "gemini-2.0-ultra", MaxTokens: 16384},
		{Match: "gemini-2.0-pro", MaxTokens: 16384},
		{Match: "gemini-1.5-pro", MaxTokens: 16384},
		{Match: "flash", MaxTokens: 8192},
		{Match: "gemini-pro", MaxTokens: 8192},
	},
	Default: 8192,
}

// aliases maps retired catalog names onto models the API still serves.
var aliases = map[string]string{
	"gemini-pro":              "gemini-1.5-pro",
	"gemini-pro-vision":       "gemini-1.5-pro",
	"gemini-2.0-ultra":        "gemini-1.5-pro",
	"gemini-2.0-ultra-vision": "gemini-1.5-pro",
	"gemini-2.0-pro-vision":   "gemini-2.0-pro",
}

func resolveModel(name string) string {
	if target, ok := aliases[name]; ok {
		return target
	}
	return name
}

// Caller speaks the Gemini generate-content API.
type Caller struct {
	client *genai.Client
	clamps provider.ClampTable
}

func New(ctx context.Context, apiKey string) (*Caller, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Caller{client: client, clamps: Ceilings}, nil
}

func (c *Caller) buildConfig(params *provider.CompletionParams) (*genai.GenerateContentConfig, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(params.TemperatureOrDefault())),
		MaxOutputTokens: int32(c.clamps.Clamp(params.Model, params.MaxTokens)),
	}

	if strings.TrimSpace(params.Instructions) != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: params.Instructions}},
		}
	}

	if len(params.Tools) > 0 {
		declarations, err := toolshape.Google(params.Tools)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		config.Tools = []*genai.Tool{{FunctionDeclarations: declarations}}
	}

	return config, nil
}

func (c *Caller) Complete(ctx context.Context, params provider.CompletionParams) (messages.Completion, error) {
	config, err := c.buildConfig(&params)
	if err != nil {
		return messages.Completion{}, err
	}

	resp, err := c.client.Models.GenerateContent(ctx, resolveModel(params.Model), genai.Text(params.UserMessage), config)
	if err != nil {
		return messages.Completion{}, fmt.Errorf("gemini completion for %s: %w", params.Model, err)
	}

	return extractCompletion(resp, params.Model)
}

// extractCompletion maps the Gemini reply onto the canonical completion.
// Extraction tries the convenience text accessor, then walks candidate
// parts, then coerces the raw payload; tool calls short-circuit all of it.
func extractCompletion(resp *genai.GenerateContentResponse, model string) (messages.Completion, error) {
	result := messages.Completion{Model: model}
	if resp.UsageMetadata != nil {
		result.Usage = messages.Usage{
			InputTokens:  int64(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	for _, call := range functionCalls(resp) {
		args, err := json.Marshal(call.Args)
		if err != nil {
			return messages.Completion{}, fmt.Errorf("failed to encode arguments for %s: %w", call.Name, err)
		}
		result.ToolCalls = append(result.ToolCalls, messages.ToolCallData{
			ID:        call.ID,
			Name:      call.Name,
			Arguments: string(args),
		})
	}
	if len(result.ToolCalls) > 0 {
		return result, nil
	}

	result.Text = resp.Text()

	if strings.TrimSpace(result.Text) == "" {
		var text strings.Builder
		for _, part := range candidateParts(resp) {
			text.WriteString(part.Text)
		}
		result.Text = text.String()
	}

	if strings.TrimSpace(result.Text) == "" {
		if raw, err := json.Marshal(resp); err == nil {
			result.Text = gjson.GetBytes(raw, "candidates.0.content.parts.0.text").String()
		}
	}

	if result.Empty() {
		return messages.Completion{}, &provider.EmptyResponseError{Model: model}
	}
	return result, nil
}

func candidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

func functionCalls(resp *genai.GenerateContentResponse) []*genai.FunctionCall {
	var calls []*genai.FunctionCall
	for _, part := range candidateParts(resp) {
		if part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}
