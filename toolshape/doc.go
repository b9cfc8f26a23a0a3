// Package toolshape derives each backend's wire representation of a tool
// from the canonical tool.Definition. Three shapes exist in the wild: the
// flat function-object list OpenAI and X.AI share, Anthropic's custom input
// schema with the properties and required list hoisted to the top level, and
// Google's function declarations with upper-cased type names. Translation is
// one way; the canonical definition is the only stored form.
package toolshape
