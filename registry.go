package switchboard

import (
	"context"
	"log/slog"

	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/strixlabs/switchboard/catalog"
	"github.com/strixlabs/switchboard/config"
	"github.com/strixlabs/switchboard/internal/registry"
	"github.com/strixlabs/switchboard/pkg/slogx"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/provider/anthropic"
	"github.com/strixlabs/switchboard/provider/google"
	"github.com/strixlabs/switchboard/provider/openai"
	"github.com/strixlabs/switchboard/provider/xai"
)

// Registry holds one constructed caller per configured provider. It is
// populated once at startup; a provider without a credential, or whose
// client fails to construct, is simply absent and the planner routes around
// it.
type Registry struct {
	callers *registry.Registry[provider.Caller]
}

// NewRegistry builds callers for every provider the configuration carries a
// credential for. Construction failures narrow availability instead of
// failing the gateway; an entirely empty registry is rejected later by New.
func NewRegistry(ctx context.Context, cfg config.Config) *Registry {
	r := &Registry{callers: registry.New[provider.Caller]()}

	for _, p := range catalog.Providers {
		key := cfg.Credential(p)
		if key == "" {
			slog.DebugContext(ctx, "provider not configured", slogx.Provider(p))
			continue
		}

		switch p {
		case catalog.OpenAI:
			r.Register(p, openai.New(openaiopt.WithAPIKey(key)))
		case catalog.Anthropic:
			r.Register(p, anthropic.New(anthropicopt.WithAPIKey(key)))
		case catalog.Google:
			caller, err := google.New(ctx, key)
			if err != nil {
				slog.WarnContext(ctx, "provider unavailable", slogx.Provider(p), slogx.Error(err))
				continue
			}
			r.Register(p, caller)
		case catalog.XAI:
			r.Register(p, xai.New(openaiopt.WithAPIKey(key)))
		}
	}

	return r
}

// Register installs or replaces the caller for a provider.
func (r *Registry) Register(p catalog.Provider, c provider.Caller) {
	r.callers.Add(string(p), c)
}

// IsAvailable reports whether a caller exists for the provider.
func (r *Registry) IsAvailable(p catalog.Provider) bool {
	_, ok := r.callers.Get(string(p))
	return ok
}

// Available lists the configured providers in preference order.
func (r *Registry) Available() []catalog.Provider {
	var result []catalog.Provider
	for _, p := range catalog.Providers {
		if r.IsAvailable(p) {
			result = append(result, p)
		}
	}
	return result
}

// Primary returns the most preferred available provider.
func (r *Registry) Primary() (catalog.Provider, bool) {
	for _, p := range catalog.Providers {
		if r.IsAvailable(p) {
			return p, true
		}
	}
	return "", false
}

// CallerFor resolves the caller serving a model. Unknown models and models
// of unconfigured providers both come back unavailable, never as an error.
func (r *Registry) CallerFor(model string) (provider.Caller, bool) {
	p, ok := catalog.ProviderFor(model)
	if !ok {
		return nil, false
	}
	return r.callers.Get(string(p))
}

func (r *Registry) size() int {
	return r.callers.Len()
}
