package casecore

import (
	"encoding/json"
	"time"
)

const (
	FormCreatedEventType            = "FormCreated"
	FormCreationIgnoredEventType    = "FormCreationIgnored"
	FormLockStatusRecordedEventType = "FormLockStatusRecorded"
	FormUpdatedEventType            = "FormUpdated"
	FormFinalisedEventType          = "FormFinalised"
)

// FormCreated records the creation of a form for the case.
type FormCreated struct {
	CaseID     CaseIDString       `json:"caseId"`
	FormID     FormIDString       `json:"formId"`
	FormType   FormType           `json:"formType"`
	Defendants []FormDefendantRef `json:"defendants,omitempty"`
	OccurredAt OccurredAtTS       `json:"occurredAt"`
}

// BuildFormCreated creates a new FormCreated event.
func BuildFormCreated(
	caseID CaseIDString,
	formID FormIDString,
	formType FormType,
	defendants []FormDefendantRef,
	occurredAt time.Time,
) FormCreated {
	return FormCreated{
		CaseID:     caseID,
		FormID:     formID,
		FormType:   formType,
		Defendants: defendants,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e FormCreated) EventType() string        { return FormCreatedEventType }
func (e FormCreated) HasCaseID() CaseIDString  { return e.CaseID }
func (e FormCreated) HasOccurredAt() time.Time { return e.OccurredAt }
func (e FormCreated) IsErrorEvent() bool       { return false }

// FormCreationIgnored records a creation replayed for a form that already exists.
type FormCreationIgnored struct {
	CaseID     CaseIDString `json:"caseId"`
	FormID     FormIDString `json:"formId"`
	OccurredAt OccurredAtTS `json:"occurredAt"`
}

// BuildFormCreationIgnored creates a new FormCreationIgnored event.
func BuildFormCreationIgnored(caseID CaseIDString, formID FormIDString, occurredAt time.Time) FormCreationIgnored {
	return FormCreationIgnored{
		CaseID:     caseID,
		FormID:     formID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e FormCreationIgnored) EventType() string        { return FormCreationIgnoredEventType }
func (e FormCreationIgnored) HasCaseID() CaseIDString  { return e.CaseID }
func (e FormCreationIgnored) HasOccurredAt() time.Time { return e.OccurredAt }
func (e FormCreationIgnored) IsErrorEvent() bool       { return false }

// FormLockStatusRecorded reports the lock state after an edit request.
// IsLocked true means another user holds the form and the request was denied.
// IsLocked false means the lock was granted to LockedBy until LockExpiresAt.
type FormLockStatusRecorded struct {
	CaseID          CaseIDString `json:"caseId"`
	FormID          FormIDString `json:"formId"`
	IsLocked        bool         `json:"isLocked"`
	LockedBy        string       `json:"lockedBy,omitempty"`
	LockRequestedBy string       `json:"lockRequestedBy,omitempty"`
	LockExpiresAt   time.Time    `json:"lockExpiresAt,omitempty"`
	OccurredAt      OccurredAtTS `json:"occurredAt"`
}

// BuildFormLockStatusRecorded creates a new FormLockStatusRecorded event.
func BuildFormLockStatusRecorded(
	caseID CaseIDString,
	formID FormIDString,
	isLocked bool,
	lockedBy string,
	lockRequestedBy string,
	lockExpiresAt time.Time,
	occurredAt time.Time,
) FormLockStatusRecorded {
	return FormLockStatusRecorded{
		CaseID:          caseID,
		FormID:          formID,
		IsLocked:        isLocked,
		LockedBy:        lockedBy,
		LockRequestedBy: lockRequestedBy,
		LockExpiresAt:   lockExpiresAt,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

func (e FormLockStatusRecorded) EventType() string        { return FormLockStatusRecordedEventType }
func (e FormLockStatusRecorded) HasCaseID() CaseIDString  { return e.CaseID }
func (e FormLockStatusRecorded) HasOccurredAt() time.Time { return e.OccurredAt }
func (e FormLockStatusRecorded) IsErrorEvent() bool       { return false }

// FormUpdated records new form data. Applying it clears the form lock.
type FormUpdated struct {
	CaseID     CaseIDString    `json:"caseId"`
	FormID     FormIDString    `json:"formId"`
	Data       json.RawMessage `json:"data,omitempty"`
	UpdatedBy  string          `json:"updatedBy,omitempty"`
	OccurredAt OccurredAtTS    `json:"occurredAt"`
}

// BuildFormUpdated creates a new FormUpdated event.
func BuildFormUpdated(
	caseID CaseIDString,
	formID FormIDString,
	data json.RawMessage,
	updatedBy string,
	occurredAt time.Time,
) FormUpdated {
	return FormUpdated{
		CaseID:     caseID,
		FormID:     formID,
		Data:       data,
		UpdatedBy:  updatedBy,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e FormUpdated) EventType() string        { return FormUpdatedEventType }
func (e FormUpdated) HasCaseID() CaseIDString  { return e.CaseID }
func (e FormUpdated) HasOccurredAt() time.Time { return e.OccurredAt }
func (e FormUpdated) IsErrorEvent() bool       { return false }

// FormFinalised records that the form was finalised, with a snapshot of the
// case defendants at that moment.
type FormFinalised struct {
	CaseID     CaseIDString `json:"caseId"`
	FormID     FormIDString `json:"formId"`
	Defendants []Defendant  `json:"defendants,omitempty"`
	OccurredAt OccurredAtTS `json:"occurredAt"`
}

// BuildFormFinalised creates a new FormFinalised event.
func BuildFormFinalised(
	caseID CaseIDString,
	formID FormIDString,
	defendants []Defendant,
	occurredAt time.Time,
) FormFinalised {
	return FormFinalised{
		CaseID:     caseID,
		FormID:     formID,
		Defendants: defendants,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e FormFinalised) EventType() string        { return FormFinalisedEventType }
func (e FormFinalised) HasCaseID() CaseIDString  { return e.CaseID }
func (e FormFinalised) HasOccurredAt() time.Time { return e.OccurredAt }
func (e FormFinalised) IsErrorEvent() bool       { return false }
