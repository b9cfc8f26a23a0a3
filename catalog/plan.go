package catalog

// defaultPlan is used when the requested model has no capability class or is
// entirely unknown. One model per major provider, so an unknown model is
// still retriable somewhere as long as any provider is configured.
var defaultPlan = []string{
	"gpt-4o",                   // openai
	"claude-3-7-sonnet-latest", // anthropic
	"gemini-2.0-flash",         // google
	"grok-2",                   // xai
}

// Fallbacks returns the models worth trying after the given model fails, in
// priority order: same class and same provider first (declaration order), then
// the rest of the class across providers, then for specialized tiers a
// degradation path through standard and mini models, same provider first.
// Standard and mini models never degrade further. The list is not filtered
// for availability and may repeat models; Plan handles both.
func Fallbacks(model string) []string {
	class, ok := Classify(model)
	if !ok {
		return nil
	}
	provider, _ := ProviderFor(model)

	var fallbacks []string
	seen := map[string]bool{model: true}
	add := func(m string) {
		if !seen[m] {
			seen[m] = true
			fallbacks = append(fallbacks, m)
		}
	}

	for _, m := range classMembers[class] {
		if p, _ := ProviderFor(m); m != model && p == provider {
			add(m)
		}
	}
	for _, m := range classMembers[class] {
		if m != model {
			add(m)
		}
	}

	if class == Standard || class == Mini {
		return fallbacks
	}

	// Specialized tiers degrade toward cheaper but still correct models
	// rather than failing outright.
	for _, tier := range []Class{Standard, Mini} {
		for _, m := range classMembers[tier] {
			if p, _ := ProviderFor(m); p == provider {
				add(m)
			}
		}
	}
	for _, tier := range []Class{Standard, Mini} {
		for _, m := range classMembers[tier] {
			add(m)
		}
	}

	return fallbacks
}

// Plan produces the ordered candidate list for one request: the requested
// model followed by its fallbacks, filtered to providers the supplied
// predicate reports as available, de-duplicated preserving first-seen order.
// Plans are computed fresh per request because availability can change
// between calls; never cache one.
func Plan(model string, available func(Provider) bool) []string {
	candidates := append([]string{model}, Fallbacks(model)...)
	if _, ok := Classify(model); !ok {
		candidates = append(candidates, defaultPlan...)
	}

	var plan []string
	seen := make(map[string]bool, len(candidates))
	for _, m := range candidates {
		if seen[m] {
			continue
		}
		seen[m] = true

		p, ok := ProviderFor(m)
		if !ok || !available(p) {
			continue
		}
		plan = append(plan, m)
	}
	return plan
}
