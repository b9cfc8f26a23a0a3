package tool

import (
	"fmt"

	"github.com/fogfish/opts"
	"github.com/invopop/jsonschema"
	"github.com/strixlabs/switchboard/pkg/stdx"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Definition is the canonical description of a tool a model may call.
// Parameters is always a JSON-schema object (properties plus required list);
// provider-specific shapes are derived from it by the toolshape package and
// never stored.
type Definition struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
}

// Schema returns the parameter schema, substituting a valid empty-object
// schema when the tool takes no parameters. Translators depend on this:
// every provider shape requires a syntactically valid schema, not an
// omitted field.
func (d Definition) Schema() *jsonschema.Schema {
	if d.Parameters != nil {
		return d.Parameters
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: orderedmap.New[string, *jsonschema.Schema](),
	}
}

// Option configures a Definition under construction.
type Option = opts.Option[Definition]

// Description sets the human-readable description of the tool.
var Description = opts.ForName[Definition, string]("Description")

// Parameter adds one property to the tool's parameter schema, in call order.
// Marking it required appends it to the schema's required list.
func Parameter(name, typ, description string, required bool) Option {
	return opts.Type[Definition](func(d *Definition) error {
		if name == "" {
			return fmt.Errorf("tool parameter requires a name")
		}
		if d.Parameters == nil {
			d.Parameters = &jsonschema.Schema{
				Type:       "object",
				Properties: orderedmap.New[string, *jsonschema.Schema](),
			}
		}
		d.Parameters.Properties.Set(name, &jsonschema.Schema{
			Type:        typ,
			Description: description,
		})
		if required {
			d.Parameters.Required = append(d.Parameters.Required, name)
		}
		return nil
	})
}

// Schema replaces the whole parameter schema at once, for callers that
// already have one (e.g. reflected from a Go struct elsewhere).
func Schema(schema *jsonschema.Schema) Option {
	return opts.Type[Definition](func(d *Definition) error {
		d.Parameters = schema
		return nil
	})
}

// New builds a tool definition with the given name and options.
func New(name string, options ...Option) (Definition, error) {
	if name == "" {
		return Definition{}, fmt.Errorf("tool definition requires a name")
	}

	def := Definition{Name: name}
	if err := opts.Apply(&def, options); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Must is New for static tool declarations; it panics on error.
func Must(name string, options ...Option) Definition {
	return stdx.Must1(New(name, options...))
}
