package casecore

import (
	"time"
)

const (
	DefendantLAAStatusUpdatedEventType        = "DefendantLAAStatusUpdated"
	DefenceOrganisationChangedEventType       = "DefenceOrganisationChanged"
	DefenceOrganisationDisassociatedEventType = "DefenceOrganisationDisassociated"
)

// DefendantLAAStatusUpdated records the derived defendant-level legal-aid status.
type DefendantLAAStatusUpdated struct {
	CaseID      CaseIDString      `json:"caseId"`
	DefendantID DefendantIDString `json:"defendantId"`
	Status      LAAStatus         `json:"status"`
	OccurredAt  OccurredAtTS      `json:"occurredAt"`
}

// BuildDefendantLAAStatusUpdated creates a new DefendantLAAStatusUpdated event.
func BuildDefendantLAAStatusUpdated(
	caseID CaseIDString,
	defendantID DefendantIDString,
	status LAAStatus,
	occurredAt time.Time,
) DefendantLAAStatusUpdated {
	return DefendantLAAStatusUpdated{
		CaseID:      caseID,
		DefendantID: defendantID,
		Status:      status,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e DefendantLAAStatusUpdated) EventType() string        { return DefendantLAAStatusUpdatedEventType }
func (e DefendantLAAStatusUpdated) HasCaseID() CaseIDString  { return e.CaseID }
func (e DefendantLAAStatusUpdated) HasOccurredAt() time.Time { return e.OccurredAt }
func (e DefendantLAAStatusUpdated) IsErrorEvent() bool       { return false }

// DefenceOrganisationChanged records the defence organisation now associated
// with a defendant. A nil organisation clears the association.
type DefenceOrganisationChanged struct {
	CaseID                      CaseIDString         `json:"caseId"`
	DefendantID                 DefendantIDString    `json:"defendantId"`
	Organisation                *DefenceOrganisation `json:"organisation,omitempty"`
	LockedByRepresentationOrder bool                 `json:"lockedByRepresentationOrder,omitempty"`
	OccurredAt                  OccurredAtTS         `json:"occurredAt"`
}

// BuildDefenceOrganisationChanged creates a new DefenceOrganisationChanged event.
func BuildDefenceOrganisationChanged(
	caseID CaseIDString,
	defendantID DefendantIDString,
	organisation *DefenceOrganisation,
	lockedByRepresentationOrder bool,
	occurredAt time.Time,
) DefenceOrganisationChanged {
	return DefenceOrganisationChanged{
		CaseID:                      caseID,
		DefendantID:                 defendantID,
		Organisation:                organisation,
		LockedByRepresentationOrder: lockedByRepresentationOrder,
		OccurredAt:                  ToOccurredAt(occurredAt),
	}
}

func (e DefenceOrganisationChanged) EventType() string {
	return DefenceOrganisationChangedEventType
}
func (e DefenceOrganisationChanged) HasCaseID() CaseIDString  { return e.CaseID }
func (e DefenceOrganisationChanged) HasOccurredAt() time.Time { return e.OccurredAt }
func (e DefenceOrganisationChanged) IsErrorEvent() bool       { return false }

// DefenceOrganisationDisassociated notifies that a defence organisation lost
// its association after legal aid was withdrawn. Pure notification.
type DefenceOrganisationDisassociated struct {
	CaseID           CaseIDString      `json:"caseId"`
	DefendantID      DefendantIDString `json:"defendantId"`
	OrganisationName string            `json:"organisationName,omitempty"`
	OccurredAt       OccurredAtTS      `json:"occurredAt"`
}

// BuildDefenceOrganisationDisassociated creates a new DefenceOrganisationDisassociated event.
func BuildDefenceOrganisationDisassociated(
	caseID CaseIDString,
	defendantID DefendantIDString,
	organisationName string,
	occurredAt time.Time,
) DefenceOrganisationDisassociated {
	return DefenceOrganisationDisassociated{
		CaseID:           caseID,
		DefendantID:      defendantID,
		OrganisationName: organisationName,
		OccurredAt:       ToOccurredAt(occurredAt),
	}
}

func (e DefenceOrganisationDisassociated) EventType() string {
	return DefenceOrganisationDisassociatedEventType
}
func (e DefenceOrganisationDisassociated) HasCaseID() CaseIDString  { return e.CaseID }
func (e DefenceOrganisationDisassociated) HasOccurredAt() time.Time { return e.OccurredAt }
func (e DefenceOrganisationDisassociated) IsErrorEvent() bool       { return false }
