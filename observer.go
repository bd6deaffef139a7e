package uranus

import "time"

// Form names the entry point a validation call went through.
type Form string

const (
	FormOne      Form = "one"
	FormSequence Form = "sequence"
	FormFields   Form = "fields"
)

// Outcome of a single rule invocation.
type Outcome string

const (
	OutcomePass  Outcome = "pass"
	OutcomeFail  Outcome = "fail"
	OutcomeError Outcome = "error"
)

// Observer receives engine events. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	// RuleEvaluated is called once per invoked rule.
	RuleEvaluated(rule string, outcome Outcome)
	// ValidationCompleted is called once per validation call. err is
	// non-nil when the call aborted.
	ValidationCompleted(form Form, valid bool, err error, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) RuleEvaluated(string, Outcome)                        {}
func (noopObserver) ValidationCompleted(Form, bool, error, time.Duration) {}
