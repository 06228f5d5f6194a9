package casecore

import (
	"time"
)

const (
	DefendantMatchedEventType    = "DefendantMatched"
	PartialMatchCreatedEventType = "PartialMatchCreated"
)

// MatchCandidate is one possible cross-case identity for a defendant.
// Candidates without a court-proceedings-initiated timestamp are not eligible.
type MatchCandidate struct {
	MasterDefendantID         MasterDefendantIDString `json:"masterDefendantId"`
	CourtProceedingsInitiated *time.Time              `json:"courtProceedingsInitiated,omitempty"`
}

// DefendantMatched records confirmed master-defendant identities for a
// defendant. HearingLinkAbsent marks the acknowledgement variant emitted
// when the hearing used for deletion-state checks no longer exists.
type DefendantMatched struct {
	CaseID             CaseIDString              `json:"caseId"`
	DefendantID        DefendantIDString         `json:"defendantId"`
	MasterDefendantIDs []MasterDefendantIDString `json:"masterDefendantIds,omitempty"`
	HearingLinkAbsent  bool                      `json:"hearingLinkAbsent,omitempty"`
	OccurredAt         OccurredAtTS              `json:"occurredAt"`
}

// BuildDefendantMatched creates a new DefendantMatched event.
func BuildDefendantMatched(
	caseID CaseIDString,
	defendantID DefendantIDString,
	masterDefendantIDs []MasterDefendantIDString,
	occurredAt time.Time,
) DefendantMatched {
	return DefendantMatched{
		CaseID:             caseID,
		DefendantID:        defendantID,
		MasterDefendantIDs: masterDefendantIDs,
		OccurredAt:         ToOccurredAt(occurredAt),
	}
}

// BuildDefendantMatchedWithAbsentHearingLink creates the acknowledgement
// variant for an absent hearing link.
func BuildDefendantMatchedWithAbsentHearingLink(
	caseID CaseIDString,
	defendantID DefendantIDString,
	occurredAt time.Time,
) DefendantMatched {
	return DefendantMatched{
		CaseID:            caseID,
		DefendantID:       defendantID,
		HearingLinkAbsent: true,
		OccurredAt:        ToOccurredAt(occurredAt),
	}
}

func (e DefendantMatched) EventType() string        { return DefendantMatchedEventType }
func (e DefendantMatched) HasCaseID() CaseIDString  { return e.CaseID }
func (e DefendantMatched) HasOccurredAt() time.Time { return e.OccurredAt }
func (e DefendantMatched) IsErrorEvent() bool       { return false }

// PartialMatchCreated records unresolved match candidates for a person
// defendant, pending manual review.
type PartialMatchCreated struct {
	CaseID      CaseIDString      `json:"caseId"`
	DefendantID DefendantIDString `json:"defendantId"`
	Candidates  []MatchCandidate  `json:"candidates"`
	OccurredAt  OccurredAtTS      `json:"occurredAt"`
}

// BuildPartialMatchCreated creates a new PartialMatchCreated event.
func BuildPartialMatchCreated(
	caseID CaseIDString,
	defendantID DefendantIDString,
	candidates []MatchCandidate,
	occurredAt time.Time,
) PartialMatchCreated {
	return PartialMatchCreated{
		CaseID:      caseID,
		DefendantID: defendantID,
		Candidates:  candidates,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e PartialMatchCreated) EventType() string        { return PartialMatchCreatedEventType }
func (e PartialMatchCreated) HasCaseID() CaseIDString  { return e.CaseID }
func (e PartialMatchCreated) HasOccurredAt() time.Time { return e.OccurredAt }
func (e PartialMatchCreated) IsErrorEvent() bool       { return false }
