package harden

import (
	"context"
)

// Zone is the resolved identity of the zone under hardening. It is created
// once per run and immutable afterwards.
type Zone struct {
	Name string
	ID   string
}

// Decision is a precondition verdict.
type Decision struct {
	Skip   bool
	Reason string
}

// Outcome is the reported result of a single operation run.
type Outcome struct {
	OperationID string
	Result      Result
	Detail      string
}

// Operation is one idempotent hardening step. The precondition is always
// evaluated before apply; apply never runs when the precondition skips. A
// nil precondition means the apply itself is idempotent and always safe.
type Operation struct {
	ID           string
	precondition func(ctx context.Context, zone Zone) (Decision, error)
	apply        func(ctx context.Context, zone Zone) (string, error)
}

// Run evaluates the precondition and applies the operation. Every failure
// is contained in the outcome, nothing escapes to the caller.
func (o Operation) Run(ctx context.Context, zone Zone) Outcome {
	if o.precondition != nil {
		decision, err := o.precondition(ctx, zone)
		if err != nil {
			return Outcome{OperationID: o.ID, Result: ResultFailed, Detail: err.Error()}
		}

		if decision.Skip {
			return Outcome{OperationID: o.ID, Result: ResultSkipped, Detail: decision.Reason}
		}
	}

	detail, err := o.apply(ctx, zone)
	if err != nil {
		return Outcome{OperationID: o.ID, Result: ResultFailed, Detail: err.Error()}
	}

	return Outcome{OperationID: o.ID, Result: ResultApplied, Detail: detail}
}
