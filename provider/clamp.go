package provider

import "strings"

// Ceiling caps max tokens for every model whose name contains Match.
type Ceiling struct {
	Match     string
	MaxTokens int64
}

// ClampTable caps a requested max-token count per model family. Ceilings are
// evaluated in declaration order and the first substring match wins, so
// tables must list the most specific family names first ("gpt-4o-mini"
// before "gpt-4o" would be redundant here, but "o3-mini" must precede any
// broader "o3" entry a table grows later).
type ClampTable struct {
	Ceilings []Ceiling
	Default  int64
}

// Clamp returns the effective max-token count for model. A non-positive
// request means the caller wants the family ceiling itself.
func (t ClampTable) Clamp(model string, requested int) int64 {
	limit := t.Default
	for _, c := range t.Ceilings {
		if strings.Contains(model, c.Match) {
			limit = c.MaxTokens
			break
		}
	}
	if requested <= 0 || int64(requested) > limit {
		return limit
	}
	return int64(requested)
}
