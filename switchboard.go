package switchboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fogfish/opts"
	"github.com/strixlabs/switchboard/catalog"
	"github.com/strixlabs/switchboard/config"
	"github.com/strixlabs/switchboard/messages"
	"github.com/strixlabs/switchboard/pkg/slogx"
	"github.com/strixlabs/switchboard/provider"
	"github.com/strixlabs/switchboard/tool"
)

// Gateway routes completion requests to backend callers with retry and
// fallback. It is safe for concurrent use; every Dispatch gets its own Run.
type Gateway struct {
	cfg      config.Config
	registry *Registry
}

// New builds a gateway. Without WithConfig the configuration comes from the
// environment; without WithCaller overrides the registry holds one caller
// per credentialed provider. A gateway with no callers at all is a
// configuration error.
func New(ctx context.Context, options ...Option) (*Gateway, error) {
	var settings Settings
	if err := opts.Apply(&settings, options); err != nil {
		return nil, err
	}

	cfg := config.Config{}
	if settings.Config != nil {
		cfg = *settings.Config
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	} else {
		loaded, err := config.Load(ctx)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	reg := NewRegistry(ctx, cfg)
	for p, caller := range settings.Callers {
		reg.Register(p, caller)
	}
	if reg.size() == 0 {
		return nil, &ConfigurationError{Reason: "no provider credentials configured"}
	}

	return &Gateway{cfg: cfg, registry: reg}, nil
}

// Registry exposes provider availability.
func (g *Gateway) Registry() *Registry { return g.registry }

// Dispatch starts one completion run. The returned Run's event channel
// carries the normalized stream and always terminates with exactly one
// Response or Error event; the caller must drain it. Fallback candidates
// are fixed at dispatch time from the capability catalog, filtered to
// available providers.
func (g *Gateway) Dispatch(ctx context.Context, instructions, userMessage, model string, tools []tool.Definition, options ...DispatchOption) (*Run, error) {
	var params DispatchParams
	if err := opts.Apply(&params, options); err != nil {
		return nil, err
	}

	plan := catalog.Plan(model, g.registry.IsAvailable)
	if len(plan) == 0 {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("no available provider can serve %s", model),
		}
	}

	run := newRun(model, plan)
	go g.execute(ctx, run, instructions, userMessage, tools, params)
	return run, nil
}

// execute walks the plan sequentially. Candidates are tried up to
// MaxRetries+1 times with linear backoff between attempts; cancellation of
// the dispatch context ends the run immediately and never advances to the
// next candidate. A per-attempt timeout, by contrast, counts as an ordinary
// retryable failure.
func (g *Gateway) execute(ctx context.Context, run *Run, instructions, userMessage string, tools []tool.Definition, params DispatchParams) {
	defer close(run.events)

	for _, candidate := range run.plan {
		caller, ok := g.registry.CallerFor(candidate)
		if !ok {
			continue
		}

		for attempt := 1; attempt <= g.cfg.MaxRetries+1; attempt++ {
			completion, err := g.attempt(ctx, caller, run, candidate, instructions, userMessage, tools, params)
			if err == nil && completion.Empty() {
				err = &provider.EmptyResponseError{Model: candidate}
			}
			if err == nil {
				run.succeed(candidate)
				provider.Normalize(run.id, completion, run.events)
				return
			}

			run.record(candidate, attempt, err.Error())
			slog.WarnContext(ctx, "attempt failed",
				slogx.Model(candidate), slogx.Attempt(attempt), slogx.Error(err))

			if ctx.Err() != nil {
				provider.Failed(run.id, candidate, ctx.Err(), run.events)
				return
			}

			if attempt <= g.cfg.MaxRetries {
				backoff := g.cfg.RetryDelay * time.Duration(attempt)
				slog.DebugContext(ctx, "backing off", slogx.Model(candidate), slogx.Backoff(backoff))
				select {
				case <-time.After(backoff):
				case <-ctx.Done():
					provider.Failed(run.id, candidate, ctx.Err(), run.events)
					return
				}
			}
		}
	}

	provider.Failed(run.id, run.requested, run.exhaustion(), run.events)
}

func (g *Gateway) attempt(ctx context.Context, caller provider.Caller, run *Run, model, instructions, userMessage string, tools []tool.Definition, params DispatchParams) (messages.Completion, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	return caller.Complete(callCtx, provider.CompletionParams{
		RunID:        run.id,
		Instructions: instructions,
		UserMessage:  userMessage,
		Model:        model,
		Tools:        tools,
		MaxTokens:    params.MaxTokens,
		Temperature:  params.Temperature,
	})
}
