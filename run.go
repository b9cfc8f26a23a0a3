package switchboard

import (
	"sync"

	"github.com/google/uuid"
	"github.com/strixlabs/switchboard/provider"
)

// Run is the handle for one dispatched request. Events delivers the
// normalized stream and always ends with exactly one terminal event; the
// attempt log stays readable after the run ends, whether it succeeded or
// not.
type Run struct {
	id        uuid.UUID
	requested string
	plan      []string
	events    chan provider.StreamEvent

	mu       sync.Mutex
	attempts []AttemptRecord
	model    string
}

func newRun(requested string, plan []string) *Run {
	return &Run{
		id:        uuid.New(),
		requested: requested,
		plan:      plan,
		events:    make(chan provider.StreamEvent, 32),
	}
}

// ID identifies this run; every event it emits carries the same id.
func (r *Run) ID() uuid.UUID { return r.id }

// Requested returns the originally requested model, which is not
// necessarily the model that answered.
func (r *Run) Requested() string { return r.requested }

// Plan returns the candidate models in the order they will be tried.
func (r *Run) Plan() []string {
	return append([]string(nil), r.plan...)
}

// Events returns the event stream. It is closed after the terminal event.
func (r *Run) Events() <-chan provider.StreamEvent { return r.events }

// Model returns the model that produced the completion, empty while the run
// is still in flight or if it failed.
func (r *Run) Model() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.model
}

// Attempts returns a copy of the failed-attempt log so far. A successful
// run keeps the failures that preceded the success.
func (r *Run) Attempts() []AttemptRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]AttemptRecord(nil), r.attempts...)
}

func (r *Run) record(model string, attempt int, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, AttemptRecord{Model: model, Attempt: attempt, Reason: reason})
}

func (r *Run) succeed(model string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.model = model
}

func (r *Run) exhaustion() *ExhaustionError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &ExhaustionError{
		Requested: r.requested,
		Attempts:  append([]AttemptRecord(nil), r.attempts...),
	}
}
