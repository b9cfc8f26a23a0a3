// Package xai implements the backend caller for X.AI's Grok models. X.AI
// exposes an OpenAI-compatible chat completions endpoint, so the caller is
// the openai one pointed at the X.AI base URL with Grok's own clamp table.
package xai

import (
	"github.com/openai/openai-go/option"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/provider/openai"
)

// BaseURL is X.AI's OpenAI-compatible API endpoint.
const BaseURL = "https://api.x.ai/v1/"

// Ceilings caps output budgets for the Grok families.
var Ceilings = provider.ClampTable{
	Ceilings: []provider.Ceiling{
		{Match: "grok-2", MaxTokens: 8192},
	},
	Default: 4096,
}

// Caller speaks the X.AI API through the OpenAI wire format.
type Caller struct {
	*openai.Caller
}

func New(options ...option.RequestOption) *Caller {
	merged := append([]option.RequestOption{option.WithBaseURL(BaseURL)}, options...)
	return &Caller{Caller: openai.NewWithCeilings(Ceilings, merged...)}
}
