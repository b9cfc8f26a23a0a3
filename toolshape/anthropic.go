package toolshape

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
	"github.com/strixlabs/switchboard/pkg/jsonx"
	"github.com/strixlabs/switchboard/tool"
)

// Anthropic translates tool definitions into the messages-API tool list.
// Anthropic does not take a whole JSON-schema object: the properties map and
// required list are hoisted into ToolInputSchemaParam and the outer
// "type":"object" wrapper is implied by the schema type constant.
func Anthropic(tools []tool.Definition) ([]anthropic.ToolUnionParam, error) {
	result := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		if t.Name == "" {
			return nil, fmt.Errorf("tool at index %d has no name", i)
		}

		schema := t.Schema()
		jv, err := jsonx.ToDynamicJSON(schema)
		if err != nil {
			return nil, fmt.Errorf("failed to convert parameters for tool %s: %w", t.Name, err)
		}

		properties, _ := jv["properties"].(map[string]any)
		if properties == nil {
			properties = map[string]any{}
		}

		def := anthropic.ToolParam{
			Name: t.Name,
			InputSchema: anthropic.ToolInputSchemaParam{
				Type:       constant.Object("object"),
				Properties: properties,
				Required:   append([]string(nil), schema.Required...),
			},
		}
		if t.Description != "" {
			def.Description = anthropic.String(t.Description)
		}

		result[i] = anthropic.ToolUnionParam{OfTool: &def}
	}
	return result, nil
}
