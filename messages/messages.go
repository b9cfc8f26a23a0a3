package messages

import (
	"strings"

	"github.com/go-openapi/strfmt"
)

// Response is the closed set of payloads a backend can produce for a single
// completion: assistant text or a batch of tool calls.
type Response interface {
	response()
}

// Assistant carries the text a model produced.
type Assistant struct {
	Content   string          `json:"content"`
	Model     string          `json:"model,omitempty"`
	Timestamp strfmt.DateTime `json:"timestamp,omitempty"`
}

func (Assistant) response() {}

// ToolCallData is one requested tool invocation. Arguments is the raw
// JSON-encoded argument object exactly as the backend produced it.
type ToolCallData struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCall carries a batch of tool invocations requested in one turn.
type ToolCall struct {
	Calls     []ToolCallData  `json:"calls"`
	Model     string          `json:"model,omitempty"`
	Timestamp strfmt.DateTime `json:"timestamp,omitempty"`
}

func (ToolCall) response() {}

// Usage reports token accounting for a completion. Backends that don't
// report usage leave it zero valued, that is not an error.
type Usage struct {
	InputTokens  int64 `json:"input_tokens,omitempty"`
	OutputTokens int64 `json:"output_tokens,omitempty"`
}

// Completion is the canonical reply from a backend caller. Exactly one of
// Text or ToolCalls carries meaningful content, never both.
type Completion struct {
	Model     string         `json:"model"`
	Text      string         `json:"text,omitempty"`
	ToolCalls []ToolCallData `json:"tool_calls,omitempty"`
	Usage     Usage          `json:"usage,omitempty"`
}

// Empty reports whether the completion carries no usable content. A
// whitespace-only text body counts as empty: some backends return a blank
// body under transient conditions and that must never pass as success.
func (c Completion) Empty() bool {
	return strings.TrimSpace(c.Text) == "" && len(c.ToolCalls) == 0
}
