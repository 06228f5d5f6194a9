package casecore

import (
	"time"
)

const (
	HearingResultsRecordedEventType      = "HearingResultsRecorded"
	OffencesUpdatedEventType             = "OffencesUpdated"
	DefendantOffencesChangedEventType    = "DefendantOffencesChanged"
	HearingMarkedAsDuplicateEventType    = "HearingMarkedAsDuplicate"
	DefendantHearingLinkRemovedEventType = "DefendantHearingLinkRemoved"
)

// OffenceHearingResult carries the per-offence outcome of a hearing.
type OffenceHearingResult struct {
	OffenceID       OffenceIDString  `json:"offenceId"`
	ListingNumber   int              `json:"listingNumber,omitempty"`
	JudicialResults []JudicialResult `json:"judicialResults,omitempty"`
	ConvictionDate  *DateString      `json:"convictionDate,omitempty"`
}

// DefendantHearingResult carries the per-defendant outcomes of a hearing.
type DefendantHearingResult struct {
	DefendantID DefendantIDString      `json:"defendantId"`
	Offences    []OffenceHearingResult `json:"offences,omitempty"`
}

// HearingResultsRecorded records the results of a hearing against the case.
type HearingResultsRecorded struct {
	CaseID       CaseIDString             `json:"caseId"`
	HearingID    HearingIDString          `json:"hearingId"`
	Jurisdiction Jurisdiction             `json:"jurisdiction"`
	IsBoxHearing bool                     `json:"isBoxHearing,omitempty"`
	Defendants   []DefendantHearingResult `json:"defendants,omitempty"`
	OccurredAt   OccurredAtTS             `json:"occurredAt"`
}

// BuildHearingResultsRecorded creates a new HearingResultsRecorded event.
func BuildHearingResultsRecorded(
	caseID CaseIDString,
	hearingID HearingIDString,
	jurisdiction Jurisdiction,
	isBoxHearing bool,
	defendants []DefendantHearingResult,
	occurredAt time.Time,
) HearingResultsRecorded {
	return HearingResultsRecorded{
		CaseID:       caseID,
		HearingID:    hearingID,
		Jurisdiction: jurisdiction,
		IsBoxHearing: isBoxHearing,
		Defendants:   defendants,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e HearingResultsRecorded) EventType() string        { return HearingResultsRecordedEventType }
func (e HearingResultsRecorded) HasCaseID() CaseIDString  { return e.CaseID }
func (e HearingResultsRecorded) HasOccurredAt() time.Time { return e.OccurredAt }
func (e HearingResultsRecorded) IsErrorEvent() bool       { return false }

// OffencesUpdated records the resolved offences of a defendant after an update.
// Offences carried here replace the matching offences on the defendant.
type OffencesUpdated struct {
	CaseID      CaseIDString      `json:"caseId"`
	DefendantID DefendantIDString `json:"defendantId"`
	Offences    []Offence         `json:"offences"`
	OccurredAt  OccurredAtTS      `json:"occurredAt"`
}

// BuildOffencesUpdated creates a new OffencesUpdated event.
func BuildOffencesUpdated(
	caseID CaseIDString,
	defendantID DefendantIDString,
	offences []Offence,
	occurredAt time.Time,
) OffencesUpdated {
	return OffencesUpdated{
		CaseID:      caseID,
		DefendantID: defendantID,
		Offences:    offences,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e OffencesUpdated) EventType() string        { return OffencesUpdatedEventType }
func (e OffencesUpdated) HasCaseID() CaseIDString  { return e.CaseID }
func (e OffencesUpdated) HasOccurredAt() time.Time { return e.OccurredAt }
func (e OffencesUpdated) IsErrorEvent() bool       { return false }

// DefendantOffencesChanged summarises which offences of a defendant were touched.
// Pure notification, no state change.
type DefendantOffencesChanged struct {
	CaseID      CaseIDString      `json:"caseId"`
	DefendantID DefendantIDString `json:"defendantId"`
	OffenceIDs  []OffenceIDString `json:"offenceIds,omitempty"`
	Description string            `json:"description,omitempty"`
	OccurredAt  OccurredAtTS      `json:"occurredAt"`
}

// BuildDefendantOffencesChanged creates a new DefendantOffencesChanged event.
func BuildDefendantOffencesChanged(
	caseID CaseIDString,
	defendantID DefendantIDString,
	offenceIDs []OffenceIDString,
	description string,
	occurredAt time.Time,
) DefendantOffencesChanged {
	return DefendantOffencesChanged{
		CaseID:      caseID,
		DefendantID: defendantID,
		OffenceIDs:  offenceIDs,
		Description: description,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e DefendantOffencesChanged) EventType() string        { return DefendantOffencesChangedEventType }
func (e DefendantOffencesChanged) HasCaseID() CaseIDString  { return e.CaseID }
func (e DefendantOffencesChanged) HasOccurredAt() time.Time { return e.OccurredAt }
func (e DefendantOffencesChanged) IsErrorEvent() bool       { return false }

// HearingMarkedAsDuplicate records that a hearing was flagged as duplicate
// for this case, which excludes it from defendant matching.
type HearingMarkedAsDuplicate struct {
	CaseID     CaseIDString    `json:"caseId"`
	HearingID  HearingIDString `json:"hearingId"`
	OccurredAt OccurredAtTS    `json:"occurredAt"`
}

// BuildHearingMarkedAsDuplicate creates a new HearingMarkedAsDuplicate event.
func BuildHearingMarkedAsDuplicate(caseID CaseIDString, hearingID HearingIDString, occurredAt time.Time) HearingMarkedAsDuplicate {
	return HearingMarkedAsDuplicate{
		CaseID:     caseID,
		HearingID:  hearingID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e HearingMarkedAsDuplicate) EventType() string        { return HearingMarkedAsDuplicateEventType }
func (e HearingMarkedAsDuplicate) HasCaseID() CaseIDString  { return e.CaseID }
func (e HearingMarkedAsDuplicate) HasOccurredAt() time.Time { return e.OccurredAt }
func (e HearingMarkedAsDuplicate) IsErrorEvent() bool       { return false }

// DefendantHearingLinkRemoved records that the link between a defendant and a
// hearing was removed, which excludes the defendant from matching on it.
type DefendantHearingLinkRemoved struct {
	CaseID      CaseIDString      `json:"caseId"`
	DefendantID DefendantIDString `json:"defendantId"`
	HearingID   HearingIDString   `json:"hearingId,omitempty"`
	OccurredAt  OccurredAtTS      `json:"occurredAt"`
}

// BuildDefendantHearingLinkRemoved creates a new DefendantHearingLinkRemoved event.
func BuildDefendantHearingLinkRemoved(
	caseID CaseIDString,
	defendantID DefendantIDString,
	hearingID HearingIDString,
	occurredAt time.Time,
) DefendantHearingLinkRemoved {
	return DefendantHearingLinkRemoved{
		CaseID:      caseID,
		DefendantID: defendantID,
		HearingID:   hearingID,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e DefendantHearingLinkRemoved) EventType() string {
	return DefendantHearingLinkRemovedEventType
}
func (e DefendantHearingLinkRemoved) HasCaseID() CaseIDString  { return e.CaseID }
func (e DefendantHearingLinkRemoved) HasOccurredAt() time.Time { return e.OccurredAt }
func (e DefendantHearingLinkRemoved) IsErrorEvent() bool       { return false }
