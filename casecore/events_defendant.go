package casecore

import (
	"time"
)

const (
	ConvictionDateAddedEventType             = "ConvictionDateAdded"
	ConvictionDateRemovedEventType           = "ConvictionDateRemoved"
	CustodialEstablishmentUpdatedEventType   = "CustodialEstablishmentUpdated"
	CustodialEstablishmentUnchangedEventType = "CustodialEstablishmentUnchanged"
	OnlinePleaRecordedEventType              = "OnlinePleaRecorded"
	SendingSheetCompletedEventType           = "SendingSheetCompleted"
	SendingSheetCompletionIgnoredEventType   = "SendingSheetCompletionIgnored"
)

// ConvictionDateAdded records a conviction date set on an offence.
type ConvictionDateAdded struct {
	CaseID         CaseIDString      `json:"caseId"`
	DefendantID    DefendantIDString `json:"defendantId"`
	OffenceID      OffenceIDString   `json:"offenceId"`
	ConvictionDate DateString        `json:"convictionDate"`
	OccurredAt     OccurredAtTS      `json:"occurredAt"`
}

// BuildConvictionDateAdded creates a new ConvictionDateAdded event.
func BuildConvictionDateAdded(
	caseID CaseIDString,
	defendantID DefendantIDString,
	offenceID OffenceIDString,
	convictionDate DateString,
	occurredAt time.Time,
) ConvictionDateAdded {
	return ConvictionDateAdded{
		CaseID:         caseID,
		DefendantID:    defendantID,
		OffenceID:      offenceID,
		ConvictionDate: convictionDate,
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

func (e ConvictionDateAdded) EventType() string        { return ConvictionDateAddedEventType }
func (e ConvictionDateAdded) HasCaseID() CaseIDString  { return e.CaseID }
func (e ConvictionDateAdded) HasOccurredAt() time.Time { return e.OccurredAt }
func (e ConvictionDateAdded) IsErrorEvent() bool       { return false }

// ConvictionDateRemoved records a conviction date cleared from an offence.
type ConvictionDateRemoved struct {
	CaseID      CaseIDString      `json:"caseId"`
	DefendantID DefendantIDString `json:"defendantId"`
	OffenceID   OffenceIDString   `json:"offenceId"`
	OccurredAt  OccurredAtTS      `json:"occurredAt"`
}

// BuildConvictionDateRemoved creates a new ConvictionDateRemoved event.
func BuildConvictionDateRemoved(
	caseID CaseIDString,
	defendantID DefendantIDString,
	offenceID OffenceIDString,
	occurredAt time.Time,
) ConvictionDateRemoved {
	return ConvictionDateRemoved{
		CaseID:      caseID,
		DefendantID: defendantID,
		OffenceID:   offenceID,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e ConvictionDateRemoved) EventType() string        { return ConvictionDateRemovedEventType }
func (e ConvictionDateRemoved) HasCaseID() CaseIDString  { return e.CaseID }
func (e ConvictionDateRemoved) HasOccurredAt() time.Time { return e.OccurredAt }
func (e ConvictionDateRemoved) IsErrorEvent() bool       { return false }

// CustodialEstablishmentUpdated records a change of the establishment holding a defendant.
type CustodialEstablishmentUpdated struct {
	CaseID        CaseIDString      `json:"caseId"`
	DefendantID   DefendantIDString `json:"defendantId"`
	Establishment string            `json:"establishment"`
	OccurredAt    OccurredAtTS      `json:"occurredAt"`
}

// BuildCustodialEstablishmentUpdated creates a new CustodialEstablishmentUpdated event.
func BuildCustodialEstablishmentUpdated(
	caseID CaseIDString,
	defendantID DefendantIDString,
	establishment string,
	occurredAt time.Time,
) CustodialEstablishmentUpdated {
	return CustodialEstablishmentUpdated{
		CaseID:        caseID,
		DefendantID:   defendantID,
		Establishment: establishment,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e CustodialEstablishmentUpdated) EventType() string {
	return CustodialEstablishmentUpdatedEventType
}
func (e CustodialEstablishmentUpdated) HasCaseID() CaseIDString  { return e.CaseID }
func (e CustodialEstablishmentUpdated) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CustodialEstablishmentUpdated) IsErrorEvent() bool       { return false }

// CustodialEstablishmentUnchanged records a re-application with a value that
// was already current. Changes nothing.
type CustodialEstablishmentUnchanged struct {
	CaseID        CaseIDString      `json:"caseId"`
	DefendantID   DefendantIDString `json:"defendantId"`
	Establishment string            `json:"establishment"`
	OccurredAt    OccurredAtTS      `json:"occurredAt"`
}

// BuildCustodialEstablishmentUnchanged creates a new CustodialEstablishmentUnchanged event.
func BuildCustodialEstablishmentUnchanged(
	caseID CaseIDString,
	defendantID DefendantIDString,
	establishment string,
	occurredAt time.Time,
) CustodialEstablishmentUnchanged {
	return CustodialEstablishmentUnchanged{
		CaseID:        caseID,
		DefendantID:   defendantID,
		Establishment: establishment,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e CustodialEstablishmentUnchanged) EventType() string {
	return CustodialEstablishmentUnchangedEventType
}
func (e CustodialEstablishmentUnchanged) HasCaseID() CaseIDString  { return e.CaseID }
func (e CustodialEstablishmentUnchanged) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CustodialEstablishmentUnchanged) IsErrorEvent() bool       { return false }

// OnlinePleaRecorded records a plea submitted online for an offence.
type OnlinePleaRecorded struct {
	CaseID      CaseIDString      `json:"caseId"`
	DefendantID DefendantIDString `json:"defendantId"`
	OffenceID   OffenceIDString   `json:"offenceId"`
	Plea        string            `json:"plea"`
	PleaDate    DateString        `json:"pleaDate,omitempty"`
	OccurredAt  OccurredAtTS      `json:"occurredAt"`
}

// BuildOnlinePleaRecorded creates a new OnlinePleaRecorded event.
func BuildOnlinePleaRecorded(
	caseID CaseIDString,
	defendantID DefendantIDString,
	offenceID OffenceIDString,
	plea string,
	pleaDate DateString,
	occurredAt time.Time,
) OnlinePleaRecorded {
	return OnlinePleaRecorded{
		CaseID:      caseID,
		DefendantID: defendantID,
		OffenceID:   offenceID,
		Plea:        plea,
		PleaDate:    pleaDate,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e OnlinePleaRecorded) EventType() string        { return OnlinePleaRecordedEventType }
func (e OnlinePleaRecorded) HasCaseID() CaseIDString  { return e.CaseID }
func (e OnlinePleaRecorded) HasOccurredAt() time.Time { return e.OccurredAt }
func (e OnlinePleaRecorded) IsErrorEvent() bool       { return false }

// SendingSheetCompleted records completion of the sending sheet for the case.
type SendingSheetCompleted struct {
	CaseID        CaseIDString    `json:"caseId"`
	HearingID     HearingIDString `json:"hearingId,omitempty"`
	CourtCentreID string          `json:"courtCentreId,omitempty"`
	OccurredAt    OccurredAtTS    `json:"occurredAt"`
}

// BuildSendingSheetCompleted creates a new SendingSheetCompleted event.
func BuildSendingSheetCompleted(
	caseID CaseIDString,
	hearingID HearingIDString,
	courtCentreID string,
	occurredAt time.Time,
) SendingSheetCompleted {
	return SendingSheetCompleted{
		CaseID:        caseID,
		HearingID:     hearingID,
		CourtCentreID: courtCentreID,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e SendingSheetCompleted) EventType() string        { return SendingSheetCompletedEventType }
func (e SendingSheetCompleted) HasCaseID() CaseIDString  { return e.CaseID }
func (e SendingSheetCompleted) HasOccurredAt() time.Time { return e.OccurredAt }
func (e SendingSheetCompleted) IsErrorEvent() bool       { return false }

// SendingSheetCompletionIgnored records a completion replayed against a case
// whose sending sheet was already completed.
type SendingSheetCompletionIgnored struct {
	CaseID     CaseIDString `json:"caseId"`
	OccurredAt OccurredAtTS `json:"occurredAt"`
}

// BuildSendingSheetCompletionIgnored creates a new SendingSheetCompletionIgnored event.
func BuildSendingSheetCompletionIgnored(caseID CaseIDString, occurredAt time.Time) SendingSheetCompletionIgnored {
	return SendingSheetCompletionIgnored{
		CaseID:     caseID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e SendingSheetCompletionIgnored) EventType() string {
	return SendingSheetCompletionIgnoredEventType
}
func (e SendingSheetCompletionIgnored) HasCaseID() CaseIDString  { return e.CaseID }
func (e SendingSheetCompletionIgnored) HasOccurredAt() time.Time { return e.OccurredAt }
func (e SendingSheetCompletionIgnored) IsErrorEvent() bool       { return false }
