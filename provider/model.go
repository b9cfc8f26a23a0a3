package provider

import (
	"context"

	"github.com/google/uuid"
	"github.com/strixlabs/switchboard/messages"
	"github.com/strixlabs/switchboard/tool"
)

// DefaultTemperature is applied when the caller does not request one.
const DefaultTemperature = 0.7

// Caller is a backend adapter for one provider. Implementations translate
// the canonical request into the provider's wire format, apply the
// provider's own limits (max-token ceilings per model family), execute the
// remote call, and map whatever came back into a canonical Completion.
//
// Callers never retry: retry and fallback policy belongs to the gateway.
// A reply with no extractable content is an error, never an empty success.
type Caller interface {
	Complete(context.Context, CompletionParams) (messages.Completion, error)
}

// CompletionParams is the canonical generation request. It is immutable
// once constructed; backends derive their own request shapes from it.
type CompletionParams struct {
	// RunID identifies the orchestration run this attempt belongs to.
	RunID uuid.UUID

	// Instructions is the system prompt.
	Instructions string

	// UserMessage is the user's message text.
	UserMessage string

	// Model is the identifier of the model to call. For a fallback
	// attempt this is the candidate, not the originally requested model.
	Model string

	// Tools the model may call, in canonical shape.
	Tools []tool.Definition

	// MaxTokens is the requested output budget; 0 lets the backend pick
	// its default. Backends clamp it to their per-family ceilings.
	MaxTokens int

	// Temperature overrides DefaultTemperature when non-nil.
	Temperature *float64

	// Prevents unkeyed literals
	_ struct{}
}

// TemperatureOrDefault resolves the effective sampling temperature.
func (p CompletionParams) TemperatureOrDefault() float64 {
	if p.Temperature != nil {
		return *p.Temperature
	}
	return DefaultTemperature
}
