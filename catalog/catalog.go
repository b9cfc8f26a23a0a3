package catalog

// Provider identifies one of the remote backends the gateway can call.
type Provider string

const (
	OpenAI    Provider = "openai"
	Anthropic Provider = "anthropic"
	Google    Provider = "google"
	XAI       Provider = "xai"
)

// Providers lists every known backend in preference order. The first
// available one becomes the primary provider.
var Providers = []Provider{OpenAI, Anthropic, Google, XAI}

// Class is a coarse grouping of models by rough competence and cost tier.
type Class string

const (
	Standard  Class = "standard"
	Mini      Class = "mini"
	Reasoning Class = "reasoning"
	Vision    Class = "vision"
	Search    Class = "search"
)

// classOrder fixes the iteration order for classification so Classify is
// deterministic even if a model were ever listed in two classes.
var classOrder = []Class{Standard, Mini, Reasoning, Vision, Search}

// classMembers groups models by capability tier. Slice order is declaration
// order and the fallback planner depends on it, so additions go at the end
// of the relevant tier.
var classMembers = map[Class][]string{
	Standard: {
		"gpt-4o",           // openai
		"gemini-2.0-flash", // google
		"gemini-pro",       // google
	},
	Mini: {
		"gpt-4o-mini",             // openai
		"claude-3-5-haiku-latest", // anthropic
		"gemini-2.0-flash-lite",   // google
	},
	Reasoning: {
		"o3-mini",                  // openai
		"claude-3-7-sonnet-latest", // anthropic
		"gemini-2.0-ultra",         // google
		"grok-2-latest",            // xai
		"grok-2",                   // xai
		"grok",                     // xai
	},
	Vision: {
		"computer-use-preview",    // openai
		"gemini-pro-vision",       // google
		"gemini-2.0-pro-vision",   // google
		"gemini-2.0-ultra-vision", // google
		"grok-1.5-vision",         // xai
		"grok-2-vision-1212",      // xai
	},
	Search: {
		"gpt-4o-search-preview",      // openai
		"gpt-4o-mini-search-preview", // openai
	},
}

// modelProviders maps every known model to the provider that serves it.
// The table is deliberately partial: unknown models are not an error, the
// planner substitutes a provider-diverse default set for them.
var modelProviders = map[string]Provider{
	"gpt-4o":                     OpenAI,
	"gpt-4o-mini":                OpenAI,
	"o3-mini":                    OpenAI,
	"computer-use-preview":       OpenAI,
	"gpt-4o-search-preview":      OpenAI,
	"gpt-4o-mini-search-preview": OpenAI,

	"claude-3-7-sonnet-latest": Anthropic,
	"claude-3-5-haiku-latest":  Anthropic,

	"gemini-pro":                     Google,
	"gemini-pro-vision":              Google,
	"gemini-2.0-pro":                 Google,
	"gemini-2.0-pro-vision":          Google,
	"gemini-2.0-ultra":               Google,
	"gemini-2.0-ultra-vision":        Google,
	"gemini-2.0-flash":               Google,
	"gemini-2.0-flash-lite":          Google,
	"gemini-2.0-flash-thinking-exp":  Google,

	"grok":               XAI,
	"grok-1":             XAI,
	"grok-1.5-vision":    XAI,
	"grok-2":             XAI,
	"grok-2-latest":      XAI,
	"grok-2-vision-1212": XAI,
}

// ProviderFor returns the provider serving the given model. The second
// return is false for models the catalog does not know about.
func ProviderFor(model string) (Provider, bool) {
	p, ok := modelProviders[model]
	return p, ok
}

// Classify returns the capability class of a model. Not every model is
// classified; callers must handle the false case.
func Classify(model string) (Class, bool) {
	for _, class := range classOrder {
		for _, m := range classMembers[class] {
			if m == model {
				return class, true
			}
		}
	}
	return "", false
}

// Models returns the members of a capability class in declaration order.
// The returned slice is a copy.
func Models(class Class) []string {
	members := classMembers[class]
	out := make([]string, len(members))
	copy(out, members)
	return out
}
