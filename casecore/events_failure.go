package casecore

import (
	"time"
)

const (
	OperationFailedEventType   = "OperationFailed"
	CaseNotFoundEventType      = "CaseNotFound"
	DefendantNotFoundEventType = "DefendantNotFound"
)

// OperationFailed records a command that was rejected by a business rule.
type OperationFailed struct {
	CaseID      CaseIDString `json:"caseId"`
	Operation   string       `json:"operation"`
	FailureInfo string       `json:"failureInfo"`
	OccurredAt  OccurredAtTS `json:"occurredAt"`
}

// BuildOperationFailed creates a new OperationFailed event.
func BuildOperationFailed(caseID CaseIDString, operation string, failureInfo string, occurredAt time.Time) OperationFailed {
	return OperationFailed{
		CaseID:      caseID,
		Operation:   operation,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e OperationFailed) EventType() string        { return OperationFailedEventType }
func (e OperationFailed) HasCaseID() CaseIDString  { return e.CaseID }
func (e OperationFailed) HasOccurredAt() time.Time { return e.OccurredAt }
func (e OperationFailed) IsErrorEvent() bool       { return true }

// CaseNotFound records a command addressed at a case the stream has no record of.
type CaseNotFound struct {
	CaseID     CaseIDString `json:"caseId"`
	Operation  string       `json:"operation"`
	OccurredAt OccurredAtTS `json:"occurredAt"`
}

// BuildCaseNotFound creates a new CaseNotFound event.
func BuildCaseNotFound(caseID CaseIDString, operation string, occurredAt time.Time) CaseNotFound {
	return CaseNotFound{
		CaseID:     caseID,
		Operation:  operation,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e CaseNotFound) EventType() string        { return CaseNotFoundEventType }
func (e CaseNotFound) HasCaseID() CaseIDString  { return e.CaseID }
func (e CaseNotFound) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CaseNotFound) IsErrorEvent() bool       { return true }

// DefendantNotFound records a command addressed at a defendant the case does not carry.
type DefendantNotFound struct {
	CaseID      CaseIDString      `json:"caseId"`
	DefendantID DefendantIDString `json:"defendantId"`
	Operation   string            `json:"operation"`
	OccurredAt  OccurredAtTS      `json:"occurredAt"`
}

// BuildDefendantNotFound creates a new DefendantNotFound event.
func BuildDefendantNotFound(
	caseID CaseIDString,
	defendantID DefendantIDString,
	operation string,
	occurredAt time.Time,
) DefendantNotFound {
	return DefendantNotFound{
		CaseID:      caseID,
		DefendantID: defendantID,
		Operation:   operation,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e DefendantNotFound) EventType() string        { return DefendantNotFoundEventType }
func (e DefendantNotFound) HasCaseID() CaseIDString  { return e.CaseID }
func (e DefendantNotFound) HasOccurredAt() time.Time { return e.OccurredAt }
func (e DefendantNotFound) IsErrorEvent() bool       { return true }
