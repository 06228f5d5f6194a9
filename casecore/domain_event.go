package casecore

import (
	"time"
)

// DomainEvent is implemented by all events that can be recorded on a case stream.
type DomainEvent interface {
	EventType() string
	HasCaseID() CaseIDString
	HasOccurredAt() time.Time
	IsErrorEvent() bool
}

// DomainEvents represents an ordered collection of domain events.
type DomainEvents = []DomainEvent
