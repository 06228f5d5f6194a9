package casecore

import (
	"fmt"
	"time"
)

const (
	InitiateProceedingsCommandType = "InitiateProceedings"
	EjectCaseCommandType           = "EjectCase"
	ReferCaseToSJPCommandType      = "ReferCaseToSJP"
)

// InitiateProceedingsCommand creates a case with its initial defendants.
type InitiateProceedingsCommand struct {
	CaseID                  CaseIDString
	URN                     URNString
	OriginatingOrganisation string
	CPSOrganisationCode     string
	CourtCentreID           string
	Defendants              []Defendant
	OccurredAt              time.Time
}

func (c InitiateProceedingsCommand) CommandType() string {
	return InitiateProceedingsCommandType
}

// InitiateProceedings creates the case. Replaying initiation against an
// existing case is recorded as ignored.
func (a *Aggregate) InitiateProceedings(command InitiateProceedingsCommand) BatchResult {
	if a.CaseExists() {
		return IgnoredBatch(BuildProceedingsInitiationIgnored(command.CaseID, command.URN, command.OccurredAt))
	}

	seen := make(map[DefendantIDString]bool, len(command.Defendants))
	for _, defendant := range command.Defendants {
		if seen[defendant.ID] {
			return FailedBatch(
				BuildOperationFailed(
					command.CaseID,
					InitiateProceedingsCommandType,
					fmt.Sprintf("duplicate defendant id %q", defendant.ID),
					command.OccurredAt,
				),
				fmt.Errorf("initiating proceedings for case %s: duplicate defendant id %q", command.CaseID, defendant.ID),
			)
		}
		seen[defendant.ID] = true
	}

	return SuccessBatch(BuildProceedingsInitiated(
		command.CaseID,
		command.URN,
		command.OriginatingOrganisation,
		command.CPSOrganisationCode,
		command.CourtCentreID,
		command.Defendants,
		command.OccurredAt,
	))
}

// EjectCaseCommand removes the case from active processing.
type EjectCaseCommand struct {
	CaseID     CaseIDString
	OccurredAt time.Time
}

func (c EjectCaseCommand) CommandType() string {
	return EjectCaseCommandType
}

// EjectCase ejects the case. Ejection is terminal, a second ejection records nothing.
func (a *Aggregate) EjectCase(command EjectCaseCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildCaseNotFound(command.CaseID, EjectCaseCommandType, command.OccurredAt),
			fmt.Errorf("ejecting case %s: case not found", command.CaseID),
		)
	}

	if a.state.Case.Status == CaseStatusEjected {
		return NoOpBatch()
	}

	return SuccessBatch(BuildCaseEjected(command.CaseID, command.OccurredAt))
}

// ReferCaseToSJPCommand refers the case to the single justice procedure.
type ReferCaseToSJPCommand struct {
	CaseID     CaseIDString
	OccurredAt time.Time
}

func (c ReferCaseToSJPCommand) CommandType() string {
	return ReferCaseToSJPCommandType
}

// ReferCaseToSJP refers the case to the single justice procedure. The
// referral status shadows derived status changes until the case is ejected.
func (a *Aggregate) ReferCaseToSJP(command ReferCaseToSJPCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildCaseNotFound(command.CaseID, ReferCaseToSJPCommandType, command.OccurredAt),
			fmt.Errorf("referring case %s to SJP: case not found", command.CaseID),
		)
	}

	status := a.state.Case.Status
	if status == CaseStatusEjected || status == CaseStatusSJPReferral {
		return NoOpBatch()
	}

	return SuccessBatch(BuildCaseReferredToSJP(command.CaseID, command.OccurredAt))
}
