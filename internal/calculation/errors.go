package calculation

import (
	"errors"
)

// Every fault the engine raises wraps one of these sentinels, so callers can
// classify with errors.Is while the message carries the offending entity id,
// field, or year. All faults are caller contract violations; nothing here is
// retryable, and a fault aborts the whole projection run before any partial
// output is produced.
var (
	// ErrInvalidWindow reports a projection window whose years are not
	// strictly ordered start < retirement < end.
	ErrInvalidWindow = errors.New("invalid projection window")

	// ErrOverlappingIntervals reports a stepwise growth config whose
	// intervals overlap or are out of chronological order.
	ErrOverlappingIntervals = errors.New("overlapping stepwise intervals")

	// ErrDanglingOverride reports a scenario override that references an
	// entity id not present in the plan's base facts.
	ErrDanglingOverride = errors.New("override references unknown entity")

	// ErrUnknownOverrideField reports an override naming a field outside its
	// target kind's overridable set.
	ErrUnknownOverrideField = errors.New("unknown override field")

	// ErrIncompleteEntity reports an entity with a missing or malformed
	// required field, including override values that fail type coercion.
	ErrIncompleteEntity = errors.New("incomplete entity")
)
