package switchboard

import (
	"github.com/fogfish/opts"
	"github.com/strixlabs/switchboard/catalog"
	"github.com/strixlabs/switchboard/config"
	"github.com/strixlabs/switchboard/provider"
)

// Settings collects the constructor knobs for New.
type Settings struct {
	// Config replaces the environment-derived configuration.
	Config *config.Config

	// Callers overrides or adds backend callers after the registry is
	// built from credentials. Tests use this to install fakes; programs
	// can use it to point a provider at a proxy.
	Callers map[catalog.Provider]provider.Caller
}

// Option configures the gateway at construction time.
type Option = opts.Option[Settings]

// WithConfig supplies the configuration directly instead of reading the
// environment.
func WithConfig(cfg config.Config) Option {
	return opts.Type[Settings](func(s *Settings) error {
		s.Config = &cfg
		return nil
	})
}

// WithCaller installs a caller for a provider, replacing whatever the
// credential-driven registry built for it.
func WithCaller(p catalog.Provider, c provider.Caller) Option {
	return opts.Type[Settings](func(s *Settings) error {
		if s.Callers == nil {
			s.Callers = map[catalog.Provider]provider.Caller{}
		}
		s.Callers[p] = c
		return nil
	})
}

// DispatchParams collects the per-request generation knobs.
type DispatchParams struct {
	// MaxTokens requests an output budget; backends clamp it to their
	// per-family ceilings. Zero means the family ceiling.
	MaxTokens int

	// Temperature overrides the default sampling temperature.
	Temperature *float64
}

// DispatchOption configures a single Dispatch call.
type DispatchOption = opts.Option[DispatchParams]

// WithMaxTokens sets the requested output budget.
var WithMaxTokens = opts.ForName[DispatchParams, int]("MaxTokens")

// WithTemperature sets the sampling temperature for this dispatch.
func WithTemperature(t float64) DispatchOption {
	return opts.Type[DispatchParams](func(p *DispatchParams) error {
		p.Temperature = &t
		return nil
	})
}
