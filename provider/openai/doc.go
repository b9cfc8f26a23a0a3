// Package openai implements the backend caller for OpenAI's chat
// completions API. The same caller, pointed at a different base URL and
// clamp table, serves X.AI (see the xai package); everything OpenAI-specific
// lives in the wire translation, not in the canonical contract.
//
// Output budgets are clamped per model family before the call: reasoning
// models (o3-mini) keep a 100k completion budget, the gpt-4o family 16384,
// everything else 4096.
package openai
