package casecore

import (
	"fmt"
	"time"
)

const (
	RecordHearingResultCommandType        = "RecordHearingResult"
	UpdateOffencesCommandType             = "UpdateOffences"
	MarkHearingAsDuplicateCommandType     = "MarkHearingAsDuplicate"
	RemoveDefendantHearingLinkCommandType = "RemoveDefendantHearingLink"
)

// RecordHearingResultCommand records the outcomes of a hearing.
type RecordHearingResultCommand struct {
	CaseID       CaseIDString
	HearingID    HearingIDString
	Jurisdiction Jurisdiction
	IsBoxHearing bool
	Defendants   []DefendantHearingResult
	OccurredAt   time.Time
}

func (c RecordHearingResultCommand) CommandType() string {
	return RecordHearingResultCommandType
}

// RecordHearingResult folds hearing outcomes into the case and emits the
// derived status change with its side effects when conclusions moved.
func (a *Aggregate) RecordHearingResult(command RecordHearingResultCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildCaseNotFound(command.CaseID, RecordHearingResultCommandType, command.OccurredAt),
			fmt.Errorf("recording hearing result for case %s: case not found", command.CaseID),
		)
	}

	if a.state.Case.Status == CaseStatusEjected {
		return NoOpBatch()
	}

	recorded := BuildHearingResultsRecorded(
		command.CaseID,
		command.HearingID,
		command.Jurisdiction,
		command.IsBoxHearing,
		command.Defendants,
		command.OccurredAt,
	)

	events := DomainEvents{recorded}
	events = append(events, a.caseStatusFollowUps(
		Apply(a.state, recorded),
		command.Jurisdiction,
		command.IsBoxHearing,
		true,
		recorded.OccurredAt,
	)...)

	return SuccessBatch(events...)
}

// OffenceUpdate carries the incoming fields of one offence.
type OffenceUpdate struct {
	OffenceID       OffenceIDString
	Code            string
	ListingNumber   int
	JudicialResults []JudicialResult
	ConvictionDate  *DateString
}

// ReportingRestrictionLookup is a reference-data row mapping an offence code
// to an applicable restriction.
type ReportingRestrictionLookup struct {
	OffenceCode string
	Restriction ReportingRestriction
}

// UpdateOffencesCommand replaces offence details for a defendant.
type UpdateOffencesCommand struct {
	CaseID      CaseIDString
	DefendantID DefendantIDString
	Offences    []OffenceUpdate
	Lookups     []ReportingRestrictionLookup
	OccurredAt  time.Time
}

func (c UpdateOffencesCommand) CommandType() string {
	return UpdateOffencesCommandType
}

// UpdateOffences merges incoming offence details into the defendant's
// offences and re-derives the case status. Updates against unknown cases,
// defendants or offences record nothing, they arrive from upstream feeds
// that do not await confirmation.
func (a *Aggregate) UpdateOffences(command UpdateOffencesCommand) BatchResult {
	if !a.CaseExists() {
		return NoOpBatch()
	}

	i := a.state.Case.DefendantIndex(command.DefendantID)
	if i < 0 {
		return NoOpBatch()
	}

	defendant := a.state.Case.Defendants[i]

	var resolved []Offence
	var touchedIDs []OffenceIDString

	for _, update := range command.Offences {
		j := defendant.OffenceIndex(update.OffenceID)
		if j < 0 {
			continue
		}

		offence := defendant.Offences[j].clone()

		if update.Code != "" {
			offence.Code = update.Code
		}

		offence.ListingNumber = ResolveListingNumber(offence.ListingNumber, update.ListingNumber)

		if len(update.JudicialResults) > 0 {
			offence.JudicialResults = append(offence.JudicialResults, update.JudicialResults...)
		}

		if update.ConvictionDate != nil {
			convictionDate := *update.ConvictionDate
			offence.ConvictionDate = &convictionDate
		}

		if offence.HasFinalResult() {
			offence.ProceedingsConcluded = true
		}

		offence.ReportingRestrictions = resolveReportingRestrictions(offence, command.Lookups)

		resolved = append(resolved, offence)
		touchedIDs = append(touchedIDs, offence.ID)
	}

	if len(resolved) == 0 {
		return NoOpBatch()
	}

	updated := BuildOffencesUpdated(command.CaseID, command.DefendantID, resolved, command.OccurredAt)

	events := DomainEvents{
		updated,
		BuildDefendantOffencesChanged(
			command.CaseID,
			command.DefendantID,
			touchedIDs,
			"offence details updated",
			command.OccurredAt,
		),
	}

	events = append(events, a.caseStatusFollowUps(
		Apply(a.state, updated),
		"",
		false,
		false,
		updated.OccurredAt,
	)...)

	return SuccessBatch(events...)
}

func resolveReportingRestrictions(offence Offence, lookups []ReportingRestrictionLookup) []ReportingRestriction {
	restrictions := offence.ReportingRestrictions

	for _, lookup := range lookups {
		if lookup.OffenceCode != offence.Code {
			continue
		}

		alreadyPresent := false
		for _, restriction := range restrictions {
			if restriction.Code == lookup.Restriction.Code {
				alreadyPresent = true
				break
			}
		}

		if !alreadyPresent {
			restrictions = append(restrictions, lookup.Restriction)
		}
	}

	return restrictions
}

// MarkHearingAsDuplicateCommand flags a hearing as duplicate for this case.
type MarkHearingAsDuplicateCommand struct {
	CaseID     CaseIDString
	HearingID  HearingIDString
	OccurredAt time.Time
}

func (c MarkHearingAsDuplicateCommand) CommandType() string {
	return MarkHearingAsDuplicateCommandType
}

// MarkHearingAsDuplicate flags the hearing so matching skips it.
func (a *Aggregate) MarkHearingAsDuplicate(command MarkHearingAsDuplicateCommand) BatchResult {
	if !a.CaseExists() {
		return NoOpBatch()
	}

	if a.state.DuplicateHearings[command.HearingID] {
		return NoOpBatch()
	}

	return SuccessBatch(BuildHearingMarkedAsDuplicate(command.CaseID, command.HearingID, command.OccurredAt))
}

// RemoveDefendantHearingLinkCommand detaches a defendant from a hearing.
type RemoveDefendantHearingLinkCommand struct {
	CaseID      CaseIDString
	DefendantID DefendantIDString
	HearingID   HearingIDString
	OccurredAt  time.Time
}

func (c RemoveDefendantHearingLinkCommand) CommandType() string {
	return RemoveDefendantHearingLinkCommandType
}

// RemoveDefendantHearingLink detaches the defendant so matching skips them.
func (a *Aggregate) RemoveDefendantHearingLink(command RemoveDefendantHearingLinkCommand) BatchResult {
	if !a.CaseExists() || !a.state.Case.HasDefendant(command.DefendantID) {
		return NoOpBatch()
	}

	if a.state.RemovedHearingLinks[command.DefendantID] {
		return NoOpBatch()
	}

	return SuccessBatch(BuildDefendantHearingLinkRemoved(
		command.CaseID,
		command.DefendantID,
		command.HearingID,
		command.OccurredAt,
	))
}
