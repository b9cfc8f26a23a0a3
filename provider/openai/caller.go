package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/strixlabs/switchboard/messages"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/toolshape"
	"github.com/tidwall/gjson"
)

// Ceilings caps output budgets per model family. Reasoning models accept a
// far larger completion budget than the chat families.
var Ceilings = provider.ClampTable{
	Ceilings: []provider.Ceiling{
		{Match: "o3-mini", MaxTokens: 100000},
		{Match: "gpt-4o", MaxTokens: 16384},
	},
	Default: 4096,
}

// Caller speaks the OpenAI chat completions API.
type Caller struct {
	client *openai.Client
	clamps provider.ClampTable
}

func New(options ...option.RequestOption) *Caller {
	return NewWithCeilings(Ceilings, options...)
}

// NewWithCeilings builds a caller with a custom clamp table. The xai package
// uses this to reuse the OpenAI wire format against a different endpoint
// with its own model families.
func NewWithCeilings(clamps provider.ClampTable, options ...option.RequestOption) *Caller {
	return &Caller{
		client: openai.NewClient(options...),
		clamps: clamps,
	}
}

func (c *Caller) buildRequest(params *provider.CompletionParams) (openai.ChatCompletionNewParams, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{}
	if strings.TrimSpace(params.Instructions) != "" {
		msgs = append(msgs, openai.SystemMessage(params.Instructions))
	}
	msgs = append(msgs, openai.UserMessage(params.UserMessage))

	result := openai.ChatCompletionNewParams{
		Messages:            openai.F(msgs),
		Model:               openai.F(params.Model),
		N:                   openai.Int(1),
		Temperature:         openai.Float(params.TemperatureOrDefault()),
		MaxCompletionTokens: openai.Int(c.clamps.Clamp(params.Model, params.MaxTokens)),
	}

	if len(params.Tools) > 0 {
		tools, err := toolshape.OpenAI(params.Tools)
		if err != nil {
			return openai.ChatCompletionNewParams{}, fmt.Errorf("failed to build request: %w", err)
		}
		result.Tools = openai.F(tools)
		result.ParallelToolCalls = openai.Bool(true)
	}

	return result, nil
}

func (c *Caller) Complete(ctx context.Context, params provider.CompletionParams) (messages.Completion, error) {
	req, err := c.buildRequest(&params)
	if err != nil {
		return messages.Completion{}, err
	}

	chat, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return messages.Completion{}, fmt.Errorf("openai completion for %s: %w", params.Model, err)
	}

	return extractCompletion(chat, params.Model)
}

// extractCompletion maps the SDK reply onto the canonical completion. Tool
// calls win over text; when the typed fields are empty the raw payload gets
// one more look before the reply is declared empty.
func extractCompletion(chat *openai.ChatCompletion, model string) (messages.Completion, error) {
	result := messages.Completion{
		Model: model,
		Usage: messages.Usage{
			InputTokens:  chat.Usage.PromptTokens,
			OutputTokens: chat.Usage.CompletionTokens,
		},
	}

	if len(chat.Choices) > 0 {
		msg := chat.Choices[0].Message
		if len(msg.ToolCalls) > 0 {
			result.ToolCalls = make([]messages.ToolCallData, len(msg.ToolCalls))
			for i, tc := range msg.ToolCalls {
				result.ToolCalls[i] = messages.ToolCallData{
					ID:        tc.ID,
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				}
			}
			return result, nil
		}
		result.Text = msg.Content
	}

	if strings.TrimSpace(result.Text) == "" {
		result.Text = gjson.Get(chat.JSON.RawJSON(), "choices.0.message.content").String()
	}

	if result.Empty() {
		return messages.Completion{}, &provider.EmptyResponseError{Model: model}
	}
	return result, nil
}
