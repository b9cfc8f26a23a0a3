package switchboard

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a gateway that cannot operate as configured,
// e.g. no provider credential at all, or a dispatch no available provider
// can serve.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "switchboard configuration: " + e.Reason
}

// AttemptRecord is the diagnostic trace of one failed attempt. Attempt
// numbering restarts at 1 for every candidate model.
type AttemptRecord struct {
	Model   string
	Attempt int
	Reason  string
}

// ExhaustionError is returned when every candidate in the plan has been
// tried up to the retry limit without a usable completion. It carries the
// full attempt log so a caller can see exactly what was tried and why each
// attempt failed.
type ExhaustionError struct {
	Requested string
	Attempts  []AttemptRecord
}

func (e *ExhaustionError) Error() string {
	models := make([]string, 0, 4)
	seen := map[string]bool{}
	for _, a := range e.Attempts {
		if !seen[a.Model] {
			seen[a.Model] = true
			models = append(models, a.Model)
		}
	}
	return fmt.Sprintf("all %d attempts failed for %s (tried %s)",
		len(e.Attempts), e.Requested, strings.Join(models, ", "))
}
