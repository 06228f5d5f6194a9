package casecore

import (
	"time"
)

const (
	ProceedingsInitiatedEventType         = "ProceedingsInitiated"
	ProceedingsInitiationIgnoredEventType = "ProceedingsInitiationIgnored"
	CaseStatusChangedEventType            = "CaseStatusChanged"
	CaseRetentionPolicyAppliedEventType   = "CaseRetentionPolicyApplied"
	DocumentGenerationRequestedEventType  = "DocumentGenerationRequested"
	CaseEjectedEventType                  = "CaseEjected"
	CaseReferredToSJPEventType            = "CaseReferredToSJP"
)

// ProceedingsInitiated records the creation of a case with its initial defendants.
type ProceedingsInitiated struct {
	CaseID                  CaseIDString `json:"caseId"`
	URN                     URNString    `json:"urn"`
	OriginatingOrganisation string       `json:"originatingOrganisation,omitempty"`
	CPSOrganisationCode     string       `json:"cpsOrganisationCode,omitempty"`
	CourtCentreID           string       `json:"courtCentreId,omitempty"`
	Defendants              []Defendant  `json:"defendants,omitempty"`
	OccurredAt              OccurredAtTS `json:"occurredAt"`
}

// BuildProceedingsInitiated creates a new ProceedingsInitiated event.
func BuildProceedingsInitiated(
	caseID CaseIDString,
	urn URNString,
	originatingOrganisation string,
	cpsOrganisationCode string,
	courtCentreID string,
	defendants []Defendant,
	occurredAt time.Time,
) ProceedingsInitiated {
	return ProceedingsInitiated{
		CaseID:                  caseID,
		URN:                     urn,
		OriginatingOrganisation: originatingOrganisation,
		CPSOrganisationCode:     cpsOrganisationCode,
		CourtCentreID:           courtCentreID,
		Defendants:              defendants,
		OccurredAt:              ToOccurredAt(occurredAt),
	}
}

func (e ProceedingsInitiated) EventType() string        { return ProceedingsInitiatedEventType }
func (e ProceedingsInitiated) HasCaseID() CaseIDString  { return e.CaseID }
func (e ProceedingsInitiated) HasOccurredAt() time.Time { return e.OccurredAt }
func (e ProceedingsInitiated) IsErrorEvent() bool       { return false }

// ProceedingsInitiationIgnored records that initiation was replayed against an
// already initiated case and changed nothing.
type ProceedingsInitiationIgnored struct {
	CaseID     CaseIDString `json:"caseId"`
	URN        URNString    `json:"urn,omitempty"`
	OccurredAt OccurredAtTS `json:"occurredAt"`
}

// BuildProceedingsInitiationIgnored creates a new ProceedingsInitiationIgnored event.
func BuildProceedingsInitiationIgnored(caseID CaseIDString, urn URNString, occurredAt time.Time) ProceedingsInitiationIgnored {
	return ProceedingsInitiationIgnored{
		CaseID:     caseID,
		URN:        urn,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e ProceedingsInitiationIgnored) EventType() string {
	return ProceedingsInitiationIgnoredEventType
}
func (e ProceedingsInitiationIgnored) HasCaseID() CaseIDString  { return e.CaseID }
func (e ProceedingsInitiationIgnored) HasOccurredAt() time.Time { return e.OccurredAt }
func (e ProceedingsInitiationIgnored) IsErrorEvent() bool       { return false }

// CaseStatusChanged records a transition of the derived case status.
type CaseStatusChanged struct {
	CaseID         CaseIDString `json:"caseId"`
	PreviousStatus CaseStatus   `json:"previousStatus"`
	NewStatus      CaseStatus   `json:"newStatus"`
	OccurredAt     OccurredAtTS `json:"occurredAt"`
}

// BuildCaseStatusChanged creates a new CaseStatusChanged event.
func BuildCaseStatusChanged(caseID CaseIDString, previousStatus, newStatus CaseStatus, occurredAt time.Time) CaseStatusChanged {
	return CaseStatusChanged{
		CaseID:         caseID,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

func (e CaseStatusChanged) EventType() string        { return CaseStatusChangedEventType }
func (e CaseStatusChanged) HasCaseID() CaseIDString  { return e.CaseID }
func (e CaseStatusChanged) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CaseStatusChanged) IsErrorEvent() bool       { return false }

// CaseRetentionPolicyApplied records the retention period assigned after a
// Crown Court status change.
type CaseRetentionPolicyApplied struct {
	CaseID               CaseIDString `json:"caseId"`
	Jurisdiction         Jurisdiction `json:"jurisdiction"`
	CaseStatus           CaseStatus   `json:"caseStatus"`
	RetentionPeriodYears int          `json:"retentionPeriodYears"`
	OccurredAt           OccurredAtTS `json:"occurredAt"`
}

// BuildCaseRetentionPolicyApplied creates a new CaseRetentionPolicyApplied event.
func BuildCaseRetentionPolicyApplied(
	caseID CaseIDString,
	jurisdiction Jurisdiction,
	caseStatus CaseStatus,
	retentionPeriodYears int,
	occurredAt time.Time,
) CaseRetentionPolicyApplied {
	return CaseRetentionPolicyApplied{
		CaseID:               caseID,
		Jurisdiction:         jurisdiction,
		CaseStatus:           caseStatus,
		RetentionPeriodYears: retentionPeriodYears,
		OccurredAt:           ToOccurredAt(occurredAt),
	}
}

func (e CaseRetentionPolicyApplied) EventType() string {
	return CaseRetentionPolicyAppliedEventType
}
func (e CaseRetentionPolicyApplied) HasCaseID() CaseIDString  { return e.CaseID }
func (e CaseRetentionPolicyApplied) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CaseRetentionPolicyApplied) IsErrorEvent() bool       { return false }

// DocumentGenerationRequested records that a downstream document should be
// produced for the case. Pure notification, no state change.
type DocumentGenerationRequested struct {
	CaseID       CaseIDString `json:"caseId"`
	DocumentType string       `json:"documentType"`
	OccurredAt   OccurredAtTS `json:"occurredAt"`
}

// BuildDocumentGenerationRequested creates a new DocumentGenerationRequested event.
func BuildDocumentGenerationRequested(caseID CaseIDString, documentType string, occurredAt time.Time) DocumentGenerationRequested {
	return DocumentGenerationRequested{
		CaseID:       caseID,
		DocumentType: documentType,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e DocumentGenerationRequested) EventType() string {
	return DocumentGenerationRequestedEventType
}
func (e DocumentGenerationRequested) HasCaseID() CaseIDString  { return e.CaseID }
func (e DocumentGenerationRequested) HasOccurredAt() time.Time { return e.OccurredAt }
func (e DocumentGenerationRequested) IsErrorEvent() bool       { return false }

// CaseEjected records removal of the case from active processing. Terminal.
type CaseEjected struct {
	CaseID     CaseIDString `json:"caseId"`
	OccurredAt OccurredAtTS `json:"occurredAt"`
}

// BuildCaseEjected creates a new CaseEjected event.
func BuildCaseEjected(caseID CaseIDString, occurredAt time.Time) CaseEjected {
	return CaseEjected{
		CaseID:     caseID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e CaseEjected) EventType() string        { return CaseEjectedEventType }
func (e CaseEjected) HasCaseID() CaseIDString  { return e.CaseID }
func (e CaseEjected) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CaseEjected) IsErrorEvent() bool       { return false }

// CaseReferredToSJP records referral of the case to the single justice procedure.
type CaseReferredToSJP struct {
	CaseID     CaseIDString `json:"caseId"`
	OccurredAt OccurredAtTS `json:"occurredAt"`
}

// BuildCaseReferredToSJP creates a new CaseReferredToSJP event.
func BuildCaseReferredToSJP(caseID CaseIDString, occurredAt time.Time) CaseReferredToSJP {
	return CaseReferredToSJP{
		CaseID:     caseID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e CaseReferredToSJP) EventType() string        { return CaseReferredToSJPEventType }
func (e CaseReferredToSJP) HasCaseID() CaseIDString  { return e.CaseID }
func (e CaseReferredToSJP) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CaseReferredToSJP) IsErrorEvent() bool       { return false }
