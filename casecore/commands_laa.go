package casecore

import (
	"fmt"
	"time"
)

const (
	UpdateLAAReferenceCommandType           = "UpdateLAAReference"
	AssociateDefenceOrganisationCommandType = "AssociateDefenceOrganisation"
)

// UpdateLAAReferenceCommand attaches a legal-aid reference to an offence.
type UpdateLAAReferenceCommand struct {
	CaseID      CaseIDString
	DefendantID DefendantIDString
	OffenceID   OffenceIDString
	Reference   LAAReference
	OccurredAt  time.Time
}

func (c UpdateLAAReferenceCommand) CommandType() string {
	return UpdateLAAReferenceCommandType
}

// UpdateLAAReference records the reference on the offence and, when the
// derived defendant-level status drops to WITHDRAWN, removes the defence
// organisation unless a representation order holds it in place. Updates
// against combinations the case has no record of record nothing.
func (a *Aggregate) UpdateLAAReference(command UpdateLAAReferenceCommand) BatchResult {
	if !a.CaseExists() {
		return NoOpBatch()
	}

	i := a.state.Case.DefendantIndex(command.DefendantID)
	if i < 0 {
		return NoOpBatch()
	}

	defendant := a.state.Case.Defendants[i]

	j := defendant.OffenceIndex(command.OffenceID)
	if j < 0 {
		return NoOpBatch()
	}

	updatedOffence := defendant.Offences[j].clone()
	reference := command.Reference
	updatedOffence.LAAReference = &reference

	events := DomainEvents{
		BuildOffencesUpdated(command.CaseID, command.DefendantID, []Offence{updatedOffence}, command.OccurredAt),
		BuildDefendantOffencesChanged(
			command.CaseID,
			command.DefendantID,
			[]OffenceIDString{command.OffenceID},
			fmt.Sprintf("legal aid reference %s recorded", command.Reference.ApplicationReference),
			command.OccurredAt,
		),
	}

	offencesAfterUpdate := cloneOffences(defendant.Offences)
	offencesAfterUpdate[j] = updatedOffence

	derivedStatus := DeriveDefendantLAAStatus(offencesAfterUpdate)
	if derivedStatus != LAAStatusWithdrawn {
		return SuccessBatch(events...)
	}

	events = append(events, BuildDefendantLAAStatusUpdated(
		command.CaseID, command.DefendantID, LAAStatusWithdrawn, command.OccurredAt,
	))

	if defendant.DefenceOrganisation != nil && !DefenceAssociationLocked(defendant) {
		events = append(events,
			BuildDefenceOrganisationChanged(command.CaseID, command.DefendantID, nil, false, command.OccurredAt),
			BuildDefenceOrganisationDisassociated(
				command.CaseID,
				command.DefendantID,
				defendant.DefenceOrganisation.Name,
				command.OccurredAt,
			),
		)
	}

	return SuccessBatch(events...)
}

// AssociateDefenceOrganisationCommand sets the defence organisation of a defendant.
type AssociateDefenceOrganisationCommand struct {
	CaseID                      CaseIDString
	DefendantID                 DefendantIDString
	Organisation                DefenceOrganisation
	LockedByRepresentationOrder bool
	OccurredAt                  time.Time
}

func (c AssociateDefenceOrganisationCommand) CommandType() string {
	return AssociateDefenceOrganisationCommandType
}

// AssociateDefenceOrganisation associates the organisation with the defendant.
// Re-associating the organisation already in place records nothing.
func (a *Aggregate) AssociateDefenceOrganisation(command AssociateDefenceOrganisationCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildCaseNotFound(command.CaseID, AssociateDefenceOrganisationCommandType, command.OccurredAt),
			fmt.Errorf("associating defence organisation on case %s: case not found", command.CaseID),
		)
	}

	i := a.state.Case.DefendantIndex(command.DefendantID)
	if i < 0 {
		return FailedBatch(
			BuildDefendantNotFound(command.CaseID, command.DefendantID, AssociateDefenceOrganisationCommandType, command.OccurredAt),
			fmt.Errorf("associating defence organisation on case %s: defendant %s not found", command.CaseID, command.DefendantID),
		)
	}

	defendant := a.state.Case.Defendants[i]
	if defendant.DefenceOrganisation != nil &&
		*defendant.DefenceOrganisation == command.Organisation &&
		defendant.LockedByRepresentationOrder == command.LockedByRepresentationOrder {

		return NoOpBatch()
	}

	organisation := command.Organisation

	return SuccessBatch(BuildDefenceOrganisationChanged(
		command.CaseID,
		command.DefendantID,
		&organisation,
		command.LockedByRepresentationOrder,
		command.OccurredAt,
	))
}
