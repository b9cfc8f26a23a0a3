// Package provider defines the canonical completion contract every backend
// caller implements, plus the stream events a dispatched run emits. Concrete
// callers live in the subpackages openai, anthropic, google and xai; all of
// them accept the same CompletionParams and return the same
// messages.Completion, so the orchestrator never branches on which backend
// it is talking to.
package provider
