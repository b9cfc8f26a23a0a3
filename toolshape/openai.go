package toolshape

import (
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
	"github.com/strixlabs/switchboard/pkg/jsonx"
	"github.com/strixlabs/switchboard/tool"
)

// OpenAI translates tool definitions into the flat function-object list the
// OpenAI chat completions API expects. X.AI speaks the same dialect, so the
// xai caller reuses this translation unchanged.
func OpenAI(tools []tool.Definition) ([]openai.ChatCompletionToolParam, error) {
	result := make([]openai.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		if t.Name == "" {
			return nil, fmt.Errorf("tool at index %d has no name", i)
		}

		jv, err := jsonx.ToDynamicJSON(t.Schema())
		if err != nil {
			return nil, fmt.Errorf("failed to convert parameters for tool %s: %w", t.Name, err)
		}

		def := openai.FunctionDefinitionParam{
			Name:       openai.String(t.Name),
			Parameters: openai.F(shared.FunctionParameters(jv)),
		}
		if strings.TrimSpace(t.Description) != "" {
			def.Description = openai.String(t.Description)
		}

		result[i] = openai.ChatCompletionToolParam{
			Type:     openai.F(openai.ChatCompletionToolTypeFunction),
			Function: openai.F(def),
		}
	}
	return result, nil
}
