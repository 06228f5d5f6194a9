package casecore

// Aggregate wraps the rebuilt state of one case stream and decides commands
// against it. Decisions are pure, they return events and never mutate state.
type Aggregate struct {
	state      State
	lockPolicy FormLockPolicy
}

// AggregateOption configures an Aggregate.
type AggregateOption func(*Aggregate)

// WithFormLockPolicy overrides the default form lock durations.
func WithFormLockPolicy(policy FormLockPolicy) AggregateOption {
	return func(a *Aggregate) {
		a.lockPolicy = policy
	}
}

// NewAggregate creates an aggregate over an empty stream.
func NewAggregate(options ...AggregateOption) *Aggregate {
	aggregate := &Aggregate{
		state:      InitialState(),
		lockPolicy: DefaultFormLockPolicy(),
	}

	for _, option := range options {
		option(aggregate)
	}

	return aggregate
}

// ReplayAggregate creates an aggregate by folding the ordered event history.
func ReplayAggregate(history DomainEvents, options ...AggregateOption) *Aggregate {
	aggregate := NewAggregate(options...)
	aggregate.ApplyAll(history)

	return aggregate
}

// Apply folds one event into the aggregate state.
func (a *Aggregate) Apply(event DomainEvent) {
	a.state = Apply(a.state, event)
}

// ApplyAll folds events into the aggregate state in order.
func (a *Aggregate) ApplyAll(events DomainEvents) {
	for _, event := range events {
		a.Apply(event)
	}
}

// State returns the current state. Callers must treat it as read-only.
func (a *Aggregate) State() State {
	return a.state
}

// CaseExists reports whether proceedings have been initiated on this stream.
func (a *Aggregate) CaseExists() bool {
	return a.state.Case != nil
}

// caseStatusFollowUps compares the derived status of the projected next state
// against the current status and produces the status-change event plus its
// side effects, in order.
func (a *Aggregate) caseStatusFollowUps(
	next State,
	jurisdiction Jurisdiction,
	isBoxHearing bool,
	withRetention bool,
	occurredAt OccurredAtTS,
) DomainEvents {
	currentStatus := a.state.Case.Status
	if currentStatus == CaseStatusEjected || currentStatus == CaseStatusSJPReferral {
		return nil
	}

	derivedStatus := DeriveCaseStatus(next.Case.Defendants)
	if derivedStatus == currentStatus {
		return nil
	}

	events := DomainEvents{
		BuildCaseStatusChanged(a.state.Case.ID, currentStatus, derivedStatus, occurredAt),
	}

	if withRetention {
		if years, ok := RetentionPolicyYears(jurisdiction, isBoxHearing, derivedStatus); ok {
			events = append(events, BuildCaseRetentionPolicyApplied(
				a.state.Case.ID, jurisdiction, derivedStatus, years, occurredAt,
			))
		}
	}

	if derivedStatus == CaseStatusInactive {
		events = append(events, BuildDocumentGenerationRequested(
			a.state.Case.ID, caseConcludedDocumentType, occurredAt,
		))
	}

	return events
}
