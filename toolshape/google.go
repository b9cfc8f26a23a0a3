package toolshape

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/strixlabs/switchboard/tool"
	"google.golang.org/genai"
)

// Google translates tool definitions into Gemini function declarations.
// Gemini's schema dialect upper-cases type names ("OBJECT", "STRING") and
// rejects declarations without a parameters object, so a tool with no
// parameters still gets an explicit empty OBJECT schema.
func Google(tools []tool.Definition) ([]*genai.FunctionDeclaration, error) {
	result := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		if t.Name == "" {
			return nil, fmt.Errorf("tool at index %d has no name", i)
		}

		params := schemaToGenai(t.Schema())
		if params.Type != genai.TypeObject {
			return nil, fmt.Errorf("tool %s: parameters must be an object schema, got %q", t.Name, params.Type)
		}
		if params.Properties == nil {
			params.Properties = map[string]*genai.Schema{}
		}

		result[i] = &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		}
	}
	return result, nil
}

func schemaToGenai(s *jsonschema.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description: s.Description,
		Title:       s.Title,
		Format:      s.Format,
	}

	if t := mapSchemaType(s.Type); t != "" {
		out.Type = t
	}

	if len(s.Enum) > 0 {
		out.Enum = make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			out.Enum = append(out.Enum, fmt.Sprint(v))
		}
	}

	if len(s.Required) > 0 {
		out.Required = append(out.Required, s.Required...)
	}

	if s.Properties != nil {
		out.Properties = make(map[string]*genai.Schema, s.Properties.Len())
		ordering := make([]string, 0, s.Properties.Len())
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Properties[pair.Key] = schemaToGenai(pair.Value)
			ordering = append(ordering, pair.Key)
		}
		if len(ordering) > 0 {
			out.PropertyOrdering = ordering
		}
	}

	if s.Items != nil {
		out.Items = schemaToGenai(s.Items)
	}

	return out
}

func mapSchemaType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	case "null":
		return genai.TypeNULL
	default:
		return ""
	}
}
