package casecore

import (
	"fmt"
	"time"
)

const (
	UpdateCustodialEstablishmentCommandType = "UpdateCustodialEstablishment"
	RecordOnlinePleaCommandType             = "RecordOnlinePlea"
	AddConvictionDateCommandType            = "AddConvictionDate"
	RemoveConvictionDateCommandType         = "RemoveConvictionDate"
	CompleteSendingSheetCommandType         = "CompleteSendingSheet"
)

// UpdateCustodialEstablishmentCommand sets where a defendant is held.
type UpdateCustodialEstablishmentCommand struct {
	CaseID        CaseIDString
	DefendantID   DefendantIDString
	Establishment string
	OccurredAt    time.Time
}

func (c UpdateCustodialEstablishmentCommand) CommandType() string {
	return UpdateCustodialEstablishmentCommandType
}

// UpdateCustodialEstablishment records the establishment. Re-applying the
// value already in place is recorded as unchanged.
func (a *Aggregate) UpdateCustodialEstablishment(command UpdateCustodialEstablishmentCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildCaseNotFound(command.CaseID, UpdateCustodialEstablishmentCommandType, command.OccurredAt),
			fmt.Errorf("updating custodial establishment on case %s: case not found", command.CaseID),
		)
	}

	i := a.state.Case.DefendantIndex(command.DefendantID)
	if i < 0 {
		return FailedBatch(
			BuildDefendantNotFound(command.CaseID, command.DefendantID, UpdateCustodialEstablishmentCommandType, command.OccurredAt),
			fmt.Errorf("updating custodial establishment on case %s: defendant %s not found", command.CaseID, command.DefendantID),
		)
	}

	if a.state.Case.Defendants[i].CustodialEstablishment == command.Establishment {
		return IgnoredBatch(BuildCustodialEstablishmentUnchanged(
			command.CaseID, command.DefendantID, command.Establishment, command.OccurredAt,
		))
	}

	return SuccessBatch(BuildCustodialEstablishmentUpdated(
		command.CaseID, command.DefendantID, command.Establishment, command.OccurredAt,
	))
}

// RecordOnlinePleaCommand records a plea submitted online.
type RecordOnlinePleaCommand struct {
	CaseID      CaseIDString
	DefendantID DefendantIDString
	OffenceID   OffenceIDString
	Plea        string
	PleaDate    DateString
	OccurredAt  time.Time
}

func (c RecordOnlinePleaCommand) CommandType() string {
	return RecordOnlinePleaCommandType
}

// RecordOnlinePlea records the plea against the offence.
func (a *Aggregate) RecordOnlinePlea(command RecordOnlinePleaCommand) BatchResult {
	defendant, result := a.requireDefendant(command.CaseID, command.DefendantID, RecordOnlinePleaCommandType, command.OccurredAt)
	if result != nil {
		return *result
	}

	if defendant.OffenceIndex(command.OffenceID) < 0 {
		return FailedBatch(
			BuildOperationFailed(
				command.CaseID,
				RecordOnlinePleaCommandType,
				fmt.Sprintf("offence %s not found on defendant %s", command.OffenceID, command.DefendantID),
				command.OccurredAt,
			),
			fmt.Errorf("recording online plea on case %s: offence %s not found", command.CaseID, command.OffenceID),
		)
	}

	return SuccessBatch(BuildOnlinePleaRecorded(
		command.CaseID,
		command.DefendantID,
		command.OffenceID,
		command.Plea,
		command.PleaDate,
		command.OccurredAt,
	))
}

// AddConvictionDateCommand sets a conviction date on an offence.
type AddConvictionDateCommand struct {
	CaseID         CaseIDString
	DefendantID    DefendantIDString
	OffenceID      OffenceIDString
	ConvictionDate DateString
	OccurredAt     time.Time
}

func (c AddConvictionDateCommand) CommandType() string {
	return AddConvictionDateCommandType
}

// AddConvictionDate records the conviction date. Re-adding the date already
// in place records nothing.
func (a *Aggregate) AddConvictionDate(command AddConvictionDateCommand) BatchResult {
	offence, result := a.requireOffence(
		command.CaseID, command.DefendantID, command.OffenceID, AddConvictionDateCommandType, command.OccurredAt,
	)
	if result != nil {
		return *result
	}

	if offence.ConvictionDate != nil && *offence.ConvictionDate == command.ConvictionDate {
		return NoOpBatch()
	}

	return SuccessBatch(BuildConvictionDateAdded(
		command.CaseID,
		command.DefendantID,
		command.OffenceID,
		command.ConvictionDate,
		command.OccurredAt,
	))
}

// RemoveConvictionDateCommand clears the conviction date of an offence.
type RemoveConvictionDateCommand struct {
	CaseID      CaseIDString
	DefendantID DefendantIDString
	OffenceID   OffenceIDString
	OccurredAt  time.Time
}

func (c RemoveConvictionDateCommand) CommandType() string {
	return RemoveConvictionDateCommandType
}

// RemoveConvictionDate clears the conviction date. Removing a date that was
// never set records nothing.
func (a *Aggregate) RemoveConvictionDate(command RemoveConvictionDateCommand) BatchResult {
	offence, result := a.requireOffence(
		command.CaseID, command.DefendantID, command.OffenceID, RemoveConvictionDateCommandType, command.OccurredAt,
	)
	if result != nil {
		return *result
	}

	if offence.ConvictionDate == nil {
		return NoOpBatch()
	}

	return SuccessBatch(BuildConvictionDateRemoved(
		command.CaseID,
		command.DefendantID,
		command.OffenceID,
		command.OccurredAt,
	))
}

// SendingSheetDefendant is the defendant/offence selection on a sending sheet.
type SendingSheetDefendant struct {
	DefendantID DefendantIDString
	OffenceIDs  []OffenceIDString
}

// CompleteSendingSheetCommand completes the sending sheet for the case.
type CompleteSendingSheetCommand struct {
	CaseID        CaseIDString
	HearingID     HearingIDString
	CourtCentreID string
	Defendants    []SendingSheetDefendant
	OccurredAt    time.Time
}

func (c CompleteSendingSheetCommand) CommandType() string {
	return CompleteSendingSheetCommandType
}

// CompleteSendingSheet validates the sheet against the case and records its
// completion. The checks run in a fixed order so the recorded failure reason
// is stable: already completed, court centre, defendant presence, defendant
// identity, offence sets.
func (a *Aggregate) CompleteSendingSheet(command CompleteSendingSheetCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildCaseNotFound(command.CaseID, CompleteSendingSheetCommandType, command.OccurredAt),
			fmt.Errorf("completing sending sheet for case %s: case not found", command.CaseID),
		)
	}

	if a.state.SendingSheetCompleted {
		return IgnoredBatch(BuildSendingSheetCompletionIgnored(command.CaseID, command.OccurredAt))
	}

	if command.CourtCentreID != a.state.Case.CourtCentreID {
		return a.failSendingSheet(command, fmt.Sprintf(
			"court centre %s does not match case court centre %s",
			command.CourtCentreID, a.state.Case.CourtCentreID,
		))
	}

	if len(command.Defendants) == 0 {
		return a.failSendingSheet(command, "no defendants supplied")
	}

	caseDefendants := make(map[DefendantIDString]Defendant, len(a.state.Case.Defendants))
	for _, defendant := range a.state.Case.Defendants {
		caseDefendants[defendant.ID] = defendant
	}

	sheetDefendants := make(map[DefendantIDString]SendingSheetDefendant, len(command.Defendants))
	for _, sheetDefendant := range command.Defendants {
		if _, known := caseDefendants[sheetDefendant.DefendantID]; !known {
			return a.failSendingSheet(command, fmt.Sprintf(
				"defendant %s is not on the case", sheetDefendant.DefendantID,
			))
		}
		sheetDefendants[sheetDefendant.DefendantID] = sheetDefendant
	}

	for defendantID := range caseDefendants {
		if _, present := sheetDefendants[defendantID]; !present {
			return a.failSendingSheet(command, fmt.Sprintf(
				"defendant %s is missing from the sheet", defendantID,
			))
		}
	}

	for defendantID, sheetDefendant := range sheetDefendants {
		if !offenceSetsEqual(caseDefendants[defendantID].Offences, sheetDefendant.OffenceIDs) {
			return a.failSendingSheet(command, fmt.Sprintf(
				"offences for defendant %s do not match the case", defendantID,
			))
		}
	}

	return SuccessBatch(BuildSendingSheetCompleted(
		command.CaseID,
		command.HearingID,
		command.CourtCentreID,
		command.OccurredAt,
	))
}

func (a *Aggregate) failSendingSheet(command CompleteSendingSheetCommand, failureInfo string) BatchResult {
	return FailedBatch(
		BuildOperationFailed(command.CaseID, CompleteSendingSheetCommandType, failureInfo, command.OccurredAt),
		fmt.Errorf("completing sending sheet for case %s: %s", command.CaseID, failureInfo),
	)
}

func offenceSetsEqual(offences []Offence, offenceIDs []OffenceIDString) bool {
	if len(offences) != len(offenceIDs) {
		return false
	}

	ids := make(map[OffenceIDString]bool, len(offenceIDs))
	for _, id := range offenceIDs {
		ids[id] = true
	}

	if len(ids) != len(offences) {
		return false
	}

	for _, offence := range offences {
		if !ids[offence.ID] {
			return false
		}
	}

	return true
}

func (a *Aggregate) requireDefendant(
	caseID CaseIDString,
	defendantID DefendantIDString,
	operation string,
	occurredAt time.Time,
) (Defendant, *BatchResult) {
	if !a.CaseExists() {
		result := FailedBatch(
			BuildCaseNotFound(caseID, operation, occurredAt),
			fmt.Errorf("%s on case %s: case not found", operation, caseID),
		)
		return Defendant{}, &result
	}

	i := a.state.Case.DefendantIndex(defendantID)
	if i < 0 {
		result := FailedBatch(
			BuildDefendantNotFound(caseID, defendantID, operation, occurredAt),
			fmt.Errorf("%s on case %s: defendant %s not found", operation, caseID, defendantID),
		)
		return Defendant{}, &result
	}

	return a.state.Case.Defendants[i], nil
}

func (a *Aggregate) requireOffence(
	caseID CaseIDString,
	defendantID DefendantIDString,
	offenceID OffenceIDString,
	operation string,
	occurredAt time.Time,
) (Offence, *BatchResult) {
	defendant, result := a.requireDefendant(caseID, defendantID, operation, occurredAt)
	if result != nil {
		return Offence{}, result
	}

	j := defendant.OffenceIndex(offenceID)
	if j < 0 {
		failed := FailedBatch(
			BuildOperationFailed(
				caseID,
				operation,
				fmt.Sprintf("offence %s not found on defendant %s", offenceID, defendantID),
				occurredAt,
			),
			fmt.Errorf("%s on case %s: offence %s not found", operation, caseID, offenceID),
		)
		return Offence{}, &failed
	}

	return defendant.Offences[j], nil
}
