package casecore

const (
	successOutcome = "success"
	ignoredOutcome = "ignored"
	failedOutcome  = "failed"
	noOpOutcome    = "no-op"
)

// BatchResult represents the outcome of a command decision together with the
// ordered events to append. Failed decisions still carry an event so the
// failure is recorded on the stream; silent no-ops carry nothing.
type BatchResult struct {
	outcome string
	events  DomainEvents
	err     error
}

// SuccessBatch creates a result for a decision that changes state.
func SuccessBatch(events ...DomainEvent) BatchResult {
	return BatchResult{
		outcome: successOutcome,
		events:  events,
	}
}

// IgnoredBatch creates a result for an idempotent re-application that is
// recorded but changes nothing.
func IgnoredBatch(event DomainEvent) BatchResult {
	return BatchResult{
		outcome: ignoredOutcome,
		events:  DomainEvents{event},
	}
}

// FailedBatch creates a result for a decision that failed a business rule.
// The event records the failure on the stream, the error reports it to the caller.
func FailedBatch(event DomainEvent, err error) BatchResult {
	return BatchResult{
		outcome: failedOutcome,
		events:  DomainEvents{event},
		err:     err,
	}
}

// NoOpBatch creates a result for a decision that records nothing at all.
func NoOpBatch() BatchResult {
	return BatchResult{
		outcome: noOpOutcome,
	}
}

// Events returns the ordered events to append, possibly empty.
func (r BatchResult) Events() DomainEvents {
	return r.events
}

// HasEventsToAppend reports whether the decision produced events.
func (r BatchResult) HasEventsToAppend() bool {
	return len(r.events) > 0
}

// Outcome returns the decision outcome for logging and metrics labels.
func (r BatchResult) Outcome() string {
	return r.outcome
}

// IsIgnored reports whether the decision was an idempotent re-application.
func (r BatchResult) IsIgnored() bool {
	return r.outcome == ignoredOutcome
}

// Error returns the business error of a failed decision, or nil.
func (r BatchResult) Error() error {
	return r.err
}
