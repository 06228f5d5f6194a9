package casecore

import (
	"time"
)

// State is the full rebuilt state of one case stream. Everything a decision
// needs is rebuilt here by folding Apply over the ordered event history.
type State struct {
	Case                  *Case
	Forms                 map[FormIDString]Form
	DuplicateHearings     map[HearingIDString]bool
	RemovedHearingLinks   map[DefendantIDString]bool
	KnownHearings         map[HearingIDString]bool
	LatestHearingID       HearingIDString
	PendingMatches        map[DefendantIDString][]MatchCandidate
	SendingSheetCompleted bool
}

// InitialState returns the state of a stream before any event.
func InitialState() State {
	return State{
		Forms:               make(map[FormIDString]Form),
		DuplicateHearings:   make(map[HearingIDString]bool),
		RemovedHearingLinks: make(map[DefendantIDString]bool),
		KnownHearings:       make(map[HearingIDString]bool),
		PendingMatches:      make(map[DefendantIDString][]MatchCandidate),
	}
}

// HasForm reports whether a form with the given ID exists on the case.
func (s State) HasForm(formID FormIDString) bool {
	_, ok := s.Forms[formID]
	return ok
}

// Apply folds one event into the state and returns the next state. The input
// state is never mutated. Notification, ignored and failure events fold to
// the unchanged state.
func Apply(state State, event DomainEvent) State {
	switch e := event.(type) {
	case ProceedingsInitiated:
		return applyProceedingsInitiated(state, e)
	case CaseStatusChanged:
		return applyCaseStatusChanged(state, e)
	case CaseEjected:
		return applyCaseEjected(state, e)
	case CaseReferredToSJP:
		return applyCaseReferredToSJP(state, e)
	case HearingResultsRecorded:
		return applyHearingResultsRecorded(state, e)
	case OffencesUpdated:
		return applyOffencesUpdated(state, e)
	case HearingMarkedAsDuplicate:
		return applyHearingMarkedAsDuplicate(state, e)
	case DefendantHearingLinkRemoved:
		return applyDefendantHearingLinkRemoved(state, e)
	case ConvictionDateAdded:
		return applyConvictionDateAdded(state, e)
	case ConvictionDateRemoved:
		return applyConvictionDateRemoved(state, e)
	case CustodialEstablishmentUpdated:
		return applyCustodialEstablishmentUpdated(state, e)
	case OnlinePleaRecorded:
		return applyOnlinePleaRecorded(state, e)
	case SendingSheetCompleted:
		state.SendingSheetCompleted = true
		return state
	case DefenceOrganisationChanged:
		return applyDefenceOrganisationChanged(state, e)
	case FormCreated:
		return applyFormCreated(state, e)
	case FormLockStatusRecorded:
		return applyFormLockStatusRecorded(state, e)
	case FormUpdated:
		return applyFormUpdated(state, e)
	case FormFinalised:
		return applyFormFinalised(state, e)
	case DefendantMatched:
		return applyDefendantMatched(state, e)
	case PartialMatchCreated:
		return applyPartialMatchCreated(state, e)

	case ProceedingsInitiationIgnored,
		CaseRetentionPolicyApplied,
		DocumentGenerationRequested,
		DefendantOffencesChanged,
		CustodialEstablishmentUnchanged,
		SendingSheetCompletionIgnored,
		DefendantLAAStatusUpdated,
		DefenceOrganisationDisassociated,
		FormCreationIgnored,
		OperationFailed,
		CaseNotFound,
		DefendantNotFound:
		return state

	default:
		return state
	}
}

// ReplayState rebuilds the state from an ordered event history.
func ReplayState(history DomainEvents) State {
	state := InitialState()
	for _, event := range history {
		state = Apply(state, event)
	}

	return state
}

func applyProceedingsInitiated(state State, e ProceedingsInitiated) State {
	if state.Case != nil {
		return state
	}

	defendants := cloneDefendants(e.Defendants)

	state.Case = &Case{
		ID:                      e.CaseID,
		URN:                     e.URN,
		Status:                  DeriveCaseStatus(defendants),
		OriginatingOrganisation: e.OriginatingOrganisation,
		CPSOrganisationCode:     e.CPSOrganisationCode,
		CourtCentreID:           e.CourtCentreID,
		Defendants:              defendants,
	}

	return state
}

func applyCaseStatusChanged(state State, e CaseStatusChanged) State {
	if state.Case == nil || state.Case.Status == CaseStatusEjected {
		return state
	}

	nextCase := state.Case.clone()
	nextCase.Status = e.NewStatus
	state.Case = nextCase

	return state
}

func applyCaseEjected(state State, e CaseEjected) State {
	if state.Case == nil {
		return state
	}

	nextCase := state.Case.clone()
	nextCase.Status = CaseStatusEjected
	state.Case = nextCase

	return state
}

func applyCaseReferredToSJP(state State, e CaseReferredToSJP) State {
	if state.Case == nil || state.Case.Status == CaseStatusEjected {
		return state
	}

	nextCase := state.Case.clone()
	nextCase.Status = CaseStatusSJPReferral
	state.Case = nextCase

	return state
}

func applyHearingResultsRecorded(state State, e HearingResultsRecorded) State {
	if state.Case == nil {
		return state
	}

	nextCase := state.Case.clone()

	for _, defendantResult := range e.Defendants {
		i := nextCase.DefendantIndex(defendantResult.DefendantID)
		if i < 0 {
			continue
		}

		defendant := &nextCase.Defendants[i]
		defendant.HearingID = e.HearingID

		for _, offenceResult := range defendantResult.Offences {
			j := defendant.OffenceIndex(offenceResult.OffenceID)
			if j < 0 {
				continue
			}

			offence := &defendant.Offences[j]
			offence.ListingNumber = ResolveListingNumber(offence.ListingNumber, offenceResult.ListingNumber)
			offence.JudicialResults = append(offence.JudicialResults, offenceResult.JudicialResults...)

			if offenceResult.ConvictionDate != nil {
				convictionDate := *offenceResult.ConvictionDate
				offence.ConvictionDate = &convictionDate
			}

			if offence.HasFinalResult() {
				offence.ProceedingsConcluded = true
			}
		}

		defendant.ProceedingsConcluded = defendant.IsConcluded()
	}

	state.Case = nextCase

	knownHearings := cloneBoolMap(state.KnownHearings)
	knownHearings[e.HearingID] = true
	state.KnownHearings = knownHearings
	state.LatestHearingID = e.HearingID

	return state
}

func applyOffencesUpdated(state State, e OffencesUpdated) State {
	if state.Case == nil {
		return state
	}

	i := state.Case.DefendantIndex(e.DefendantID)
	if i < 0 {
		return state
	}

	nextCase := state.Case.clone()
	defendant := &nextCase.Defendants[i]

	for _, updated := range e.Offences {
		j := defendant.OffenceIndex(updated.ID)
		if j < 0 {
			defendant.Offences = append(defendant.Offences, updated.clone())
			continue
		}

		defendant.Offences[j] = updated.clone()
	}

	defendant.ProceedingsConcluded = defendant.IsConcluded()
	state.Case = nextCase

	return state
}

func applyHearingMarkedAsDuplicate(state State, e HearingMarkedAsDuplicate) State {
	duplicateHearings := cloneBoolMap(state.DuplicateHearings)
	duplicateHearings[e.HearingID] = true
	state.DuplicateHearings = duplicateHearings

	return state
}

func applyDefendantHearingLinkRemoved(state State, e DefendantHearingLinkRemoved) State {
	removedLinks := cloneBoolMap(state.RemovedHearingLinks)
	removedLinks[e.DefendantID] = true
	state.RemovedHearingLinks = removedLinks

	return state
}

func applyConvictionDateAdded(state State, e ConvictionDateAdded) State {
	return withOffence(state, e.DefendantID, e.OffenceID, func(offence *Offence) {
		convictionDate := e.ConvictionDate
		offence.ConvictionDate = &convictionDate
	})
}

func applyConvictionDateRemoved(state State, e ConvictionDateRemoved) State {
	return withOffence(state, e.DefendantID, e.OffenceID, func(offence *Offence) {
		offence.ConvictionDate = nil
	})
}

func applyCustodialEstablishmentUpdated(state State, e CustodialEstablishmentUpdated) State {
	return withDefendant(state, e.DefendantID, func(defendant *Defendant) {
		defendant.CustodialEstablishment = e.Establishment
	})
}

func applyOnlinePleaRecorded(state State, e OnlinePleaRecorded) State {
	return withOffence(state, e.DefendantID, e.OffenceID, func(offence *Offence) {
		offence.IndicatedPlea = &IndicatedPlea{Value: e.Plea, PleaDate: e.PleaDate}
	})
}

func applyDefenceOrganisationChanged(state State, e DefenceOrganisationChanged) State {
	return withDefendant(state, e.DefendantID, func(defendant *Defendant) {
		if e.Organisation == nil {
			defendant.DefenceOrganisation = nil
			defendant.LockedByRepresentationOrder = false
			return
		}

		organisation := *e.Organisation
		defendant.DefenceOrganisation = &organisation
		defendant.LockedByRepresentationOrder = e.LockedByRepresentationOrder
	})
}

func applyFormCreated(state State, e FormCreated) State {
	if state.HasForm(e.FormID) {
		return state
	}

	forms := cloneFormMap(state.Forms)
	forms[e.FormID] = Form{
		ID:         e.FormID,
		CaseID:     e.CaseID,
		Type:       e.FormType,
		Defendants: cloneFormDefendantRefs(e.Defendants),
	}
	state.Forms = forms

	return state
}

func applyFormLockStatusRecorded(state State, e FormLockStatusRecorded) State {
	if e.IsLocked {
		return state
	}

	return withForm(state, e.FormID, func(form *Form) {
		form.LockedBy = e.LockedBy
		form.LockRequestedBy = e.LockRequestedBy
		form.LockExpiresAt = e.LockExpiresAt
	})
}

func applyFormUpdated(state State, e FormUpdated) State {
	return withForm(state, e.FormID, func(form *Form) {
		form.Data = append([]byte(nil), e.Data...)
		form.LockedBy = ""
		form.LockRequestedBy = ""
		form.LockExpiresAt = time.Time{}
	})
}

func applyFormFinalised(state State, e FormFinalised) State {
	return withForm(state, e.FormID, func(form *Form) {
		form.Finalised = true
	})
}

func applyDefendantMatched(state State, e DefendantMatched) State {
	if e.HearingLinkAbsent || len(e.MasterDefendantIDs) == 0 {
		return state
	}

	state = withDefendant(state, e.DefendantID, func(defendant *Defendant) {
		defendant.MasterDefendantID = e.MasterDefendantIDs[0]
	})

	if _, pending := state.PendingMatches[e.DefendantID]; pending {
		pendingMatches := clonePendingMatches(state.PendingMatches)
		delete(pendingMatches, e.DefendantID)
		state.PendingMatches = pendingMatches
	}

	return state
}

func applyPartialMatchCreated(state State, e PartialMatchCreated) State {
	pendingMatches := clonePendingMatches(state.PendingMatches)

	candidates := make([]MatchCandidate, len(e.Candidates))
	copy(candidates, e.Candidates)
	pendingMatches[e.DefendantID] = candidates
	state.PendingMatches = pendingMatches

	return state
}

func withDefendant(state State, defendantID DefendantIDString, mutate func(*Defendant)) State {
	if state.Case == nil {
		return state
	}

	i := state.Case.DefendantIndex(defendantID)
	if i < 0 {
		return state
	}

	nextCase := state.Case.clone()
	mutate(&nextCase.Defendants[i])
	state.Case = nextCase

	return state
}

func withOffence(state State, defendantID DefendantIDString, offenceID OffenceIDString, mutate func(*Offence)) State {
	return withDefendant(state, defendantID, func(defendant *Defendant) {
		j := defendant.OffenceIndex(offenceID)
		if j < 0 {
			return
		}

		mutate(&defendant.Offences[j])
	})
}

func withForm(state State, formID FormIDString, mutate func(*Form)) State {
	form, ok := state.Forms[formID]
	if !ok {
		return state
	}

	nextForm := form.clone()
	mutate(&nextForm)

	forms := cloneFormMap(state.Forms)
	forms[formID] = nextForm
	state.Forms = forms

	return state
}

func cloneBoolMap[K comparable](m map[K]bool) map[K]bool {
	cloned := make(map[K]bool, len(m)+1)
	for k, v := range m {
		cloned[k] = v
	}

	return cloned
}

func cloneFormMap(forms map[FormIDString]Form) map[FormIDString]Form {
	cloned := make(map[FormIDString]Form, len(forms)+1)
	for id, form := range forms {
		cloned[id] = form
	}

	return cloned
}

func clonePendingMatches(pending map[DefendantIDString][]MatchCandidate) map[DefendantIDString][]MatchCandidate {
	cloned := make(map[DefendantIDString][]MatchCandidate, len(pending)+1)
	for id, candidates := range pending {
		cloned[id] = candidates
	}

	return cloned
}
