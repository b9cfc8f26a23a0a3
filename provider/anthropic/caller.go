// Package anthropic implements the backend caller for Anthropic's messages
// API. Calls stream and accumulate by default; when the stream itself fails
// before completing, one non-streaming request is issued with the same
// parameters before the attempt is reported as failed.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/strixlabs/switchboard/messages"
	"github.com/strixlabs/switchboard/pkg/slogx"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/toolshape"
	"github.com/tidwall/gjson"
)

// Ceilings caps output budgets per Claude family. Sonnet carries the large
// extended-output budget, Haiku half of it.
var Ceilings = provider.ClampTable{
	Ceilings: []provider.Ceiling{
		{Match: "sonnet", MaxTokens: 64000},
		{Match: "haiku", MaxTokens: 32000},
	},
	Default: 4096,
}

// Caller speaks the Anthropic messages API.
type Caller struct {
	client anthropic.Client
	clamps provider.ClampTable
}

func New(options ...option.RequestOption) *Caller {
	return &Caller{
		client: anthropic.NewClient(options...),
		clamps: Ceilings,
	}
}

func (c *Caller) buildRequest(params *provider.CompletionParams) (anthropic.MessageNewParams, error) {
	result := anthropic.MessageNewParams{
		Model:       anthropic.Model(params.Model),
		MaxTokens:   c.clamps.Clamp(params.Model, params.MaxTokens),
		Temperature: anthropic.Float(params.TemperatureOrDefault()),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(params.UserMessage),
			},
		}},
	}

	if strings.TrimSpace(params.Instructions) != "" {
		result.System = []anthropic.TextBlockParam{{Text: params.Instructions}}
	}

	if len(params.Tools) > 0 {
		tools, err := toolshape.Anthropic(params.Tools)
		if err != nil {
			return anthropic.MessageNewParams{}, fmt.Errorf("failed to build request: %w", err)
		}
		result.Tools = tools
	}

	return result, nil
}

func (c *Caller) Complete(ctx context.Context, params provider.CompletionParams) (messages.Completion, error) {
	req, err := c.buildRequest(&params)
	if err != nil {
		return messages.Completion{}, err
	}

	msg, err := c.streamAndAccumulate(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return messages.Completion{}, err
		}
		slog.WarnContext(ctx, "stream failed, retrying without streaming",
			slogx.Model(params.Model), slogx.Error(err))
		msg, err = c.client.Messages.New(ctx, req)
		if err != nil {
			return messages.Completion{}, fmt.Errorf("anthropic completion for %s: %w", params.Model, err)
		}
	}

	return extractCompletion(msg, params.Model)
}

func (c *Caller) streamAndAccumulate(ctx context.Context, req anthropic.MessageNewParams) (*anthropic.Message, error) {
	stream := c.client.Messages.NewStreaming(ctx, req)

	var msg anthropic.Message
	for stream.Next() {
		if err := msg.Accumulate(stream.Current()); err != nil {
			return nil, fmt.Errorf("failed to accumulate event: %w", err)
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return &msg, nil
}

// extractCompletion maps the accumulated message onto the canonical
// completion. Text blocks concatenate; any tool_use block turns the reply
// into a tool-call completion instead.
func extractCompletion(msg *anthropic.Message, model string) (messages.Completion, error) {
	result := messages.Completion{
		Model: model,
		Usage: messages.Usage{
			InputTokens:  msg.Usage.InputTokens,
			OutputTokens: msg.Usage.OutputTokens,
		},
	}

	var text strings.Builder
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			result.ToolCalls = append(result.ToolCalls, messages.ToolCallData{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}

	if len(result.ToolCalls) > 0 {
		return result, nil
	}

	result.Text = text.String()
	if strings.TrimSpace(result.Text) == "" {
		result.Text = gjson.Get(msg.RawJSON(), "content.0.text").String()
	}

	if result.Empty() {
		return messages.Completion{}, &provider.EmptyResponseError{Model: model}
	}
	return result, nil
}
