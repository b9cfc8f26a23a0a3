package provider

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/strixlabs/switchboard/messages"
)

// Normalize turns one canonical completion into the ordered event sequence
// every backend presents identically: Delim("start"), one Chunk per text
// delta, Delim("end"), then the terminal Response. A completion that carries
// tool calls terminates with Response[ToolCall]; otherwise with
// Response[Assistant]. The channel is not closed here, the orchestrator owns
// its lifecycle.
func Normalize(runID uuid.UUID, completion messages.Completion, events chan<- StreamEvent) {
	now := strfmt.DateTime(time.Now())

	events <- Delim{RunID: runID, Model: completion.Model, Delim: "start"}

	if completion.Text != "" {
		events <- Chunk[messages.Assistant]{
			RunID: runID,
			Model: completion.Model,
			Chunk: messages.Assistant{
				Content:   completion.Text,
				Model:     completion.Model,
				Timestamp: now,
			},
			Timestamp: now,
		}
	}

	events <- Delim{RunID: runID, Model: completion.Model, Delim: "end"}

	if len(completion.ToolCalls) > 0 {
		events <- Response[messages.ToolCall]{
			RunID: runID,
			Model: completion.Model,
			Response: messages.ToolCall{
				Calls:     completion.ToolCalls,
				Model:     completion.Model,
				Timestamp: now,
			},
			Timestamp: now,
		}
		return
	}

	events <- Response[messages.Assistant]{
		RunID: runID,
		Model: completion.Model,
		Response: messages.Assistant{
			Content:   completion.Text,
			Model:     completion.Model,
			Timestamp: now,
		},
		Timestamp: now,
	}
}

// Failed emits the terminal error event for a run that produced no usable
// completion.
func Failed(runID uuid.UUID, model string, err error, events chan<- StreamEvent) {
	events <- Error{
		RunID:     runID,
		Model:     model,
		Err:       err,
		Timestamp: strfmt.DateTime(time.Now()),
	}
}
