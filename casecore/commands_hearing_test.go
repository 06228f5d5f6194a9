package casecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decide_RecordHearingResult_CaseNotFound(t *testing.T) {
	result := NewAggregate().RecordHearingResult(RecordHearingResultCommand{
		CaseID: "case-1", HearingID: "hearing-1", OccurredAt: fixedTime,
	})

	require.Error(t, result.Error())
	assert.Equal(t, []string{CaseNotFoundEventType}, eventTypes(result.Events()))
}

func Test_Decide_RecordHearingResult_EjectedCaseRecordsNothing(t *testing.T) {
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	aggregate.Apply(BuildCaseEjected("case-1", fixedTime))

	result := aggregate.RecordHearingResult(RecordHearingResultCommand{
		CaseID: "case-1", HearingID: "hearing-1", OccurredAt: fixedTime,
	})

	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_RecordHearingResult_FinalResultConcludesCase(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	command := RecordHearingResultCommand{
		CaseID:       "case-1",
		HearingID:    "hearing-1",
		Jurisdiction: JurisdictionCrown,
		Defendants: []DefendantHearingResult{
			{
				DefendantID: "def-1",
				Offences: []OffenceHearingResult{
					{
						OffenceID:       "off-1",
						ListingNumber:   1,
						JudicialResults: []JudicialResult{{ID: "result-1", Category: ResultCategoryFinal}},
					},
				},
			},
		},
		OccurredAt: fixedTime,
	}

	// act
	result := aggregate.RecordHearingResult(command)

	// assert
	require.NoError(t, result.Error())
	assert.Equal(t, []string{
		HearingResultsRecordedEventType,
		CaseStatusChangedEventType,
		CaseRetentionPolicyAppliedEventType,
		DocumentGenerationRequestedEventType,
	}, eventTypes(result.Events()))

	retention := result.Events()[2].(CaseRetentionPolicyApplied)
	assert.Equal(t, 7, retention.RetentionPeriodYears)

	aggregate.ApplyAll(result.Events())
	assert.Equal(t, CaseStatusInactive, aggregate.State().Case.Status)
	assert.True(t, aggregate.State().Case.Defendants[0].ProceedingsConcluded)
}

func Test_Decide_RecordHearingResult_IntermediaryResultKeepsCaseActive(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	command := RecordHearingResultCommand{
		CaseID:       "case-1",
		HearingID:    "hearing-1",
		Jurisdiction: JurisdictionCrown,
		Defendants: []DefendantHearingResult{
			{
				DefendantID: "def-1",
				Offences: []OffenceHearingResult{
					{
						OffenceID:       "off-1",
						JudicialResults: []JudicialResult{{ID: "result-1", Category: ResultCategoryIntermediary}},
					},
				},
			},
		},
		OccurredAt: fixedTime,
	}

	// act
	result := aggregate.RecordHearingResult(command)

	// assert
	require.NoError(t, result.Error())
	assert.Equal(t, []string{HearingResultsRecordedEventType}, eventTypes(result.Events()))
}

func Test_Decide_RecordHearingResult_BoxHearingSkipsRetention(t *testing.T) {
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	command := RecordHearingResultCommand{
		CaseID:       "case-1",
		HearingID:    "hearing-1",
		Jurisdiction: JurisdictionCrown,
		IsBoxHearing: true,
		Defendants: []DefendantHearingResult{
			{
				DefendantID: "def-1",
				Offences: []OffenceHearingResult{
					{
						OffenceID:       "off-1",
						JudicialResults: []JudicialResult{{ID: "result-1", Category: ResultCategoryFinal}},
					},
				},
			},
		},
		OccurredAt: fixedTime,
	}

	result := aggregate.RecordHearingResult(command)

	assert.Equal(t, []string{
		HearingResultsRecordedEventType,
		CaseStatusChangedEventType,
		DocumentGenerationRequestedEventType,
	}, eventTypes(result.Events()))
}

func Test_Apply_HearingResultsRecorded_PreservesListingNumber(t *testing.T) {
	// arrange
	three := 3
	offence := givenOpenOffence("off-1")
	offence.ListingNumber = &three
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", offence))

	// act: a later hearing carries the zero placeholder for the listing number
	aggregate.Apply(BuildHearingResultsRecorded("case-1", "hearing-2", JurisdictionCrown, false,
		[]DefendantHearingResult{
			{DefendantID: "def-1", Offences: []OffenceHearingResult{{OffenceID: "off-1", ListingNumber: 0}}},
		}, fixedTime))

	// assert
	listingNumber := aggregate.State().Case.Defendants[0].Offences[0].ListingNumber
	require.NotNil(t, listingNumber)
	assert.Equal(t, 3, *listingNumber)
}

func Test_Decide_UpdateOffences_UnknownCaseOrDefendantRecordsNothing(t *testing.T) {
	assert.False(t, NewAggregate().UpdateOffences(UpdateOffencesCommand{
		CaseID: "case-1", DefendantID: "def-1", OccurredAt: fixedTime,
	}).HasEventsToAppend())

	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))
	assert.False(t, aggregate.UpdateOffences(UpdateOffencesCommand{
		CaseID: "case-1", DefendantID: "def-9", OccurredAt: fixedTime,
	}).HasEventsToAppend())
}

func Test_Decide_UpdateOffences_ResolvesReportingRestrictions(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	command := UpdateOffencesCommand{
		CaseID:      "case-1",
		DefendantID: "def-1",
		Offences:    []OffenceUpdate{{OffenceID: "off-1", ListingNumber: 2}},
		Lookups: []ReportingRestrictionLookup{
			{OffenceCode: "TH68010", Restriction: ReportingRestriction{Code: "RR-1", Label: "youth"}},
			{OffenceCode: "OTHER", Restriction: ReportingRestriction{Code: "RR-2"}},
		},
		OccurredAt: fixedTime,
	}

	// act
	result := aggregate.UpdateOffences(command)

	// assert
	require.NoError(t, result.Error())
	assert.Equal(t, []string{
		OffencesUpdatedEventType,
		DefendantOffencesChangedEventType,
	}, eventTypes(result.Events()))

	aggregate.ApplyAll(result.Events())
	offence := aggregate.State().Case.Defendants[0].Offences[0]
	require.NotNil(t, offence.ListingNumber)
	assert.Equal(t, 2, *offence.ListingNumber)
	require.Len(t, offence.ReportingRestrictions, 1)
	assert.Equal(t, "RR-1", offence.ReportingRestrictions[0].Code)
}

func Test_Decide_UpdateOffences_FinalResultRederivesStatus(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	command := UpdateOffencesCommand{
		CaseID:      "case-1",
		DefendantID: "def-1",
		Offences: []OffenceUpdate{
			{OffenceID: "off-1", JudicialResults: []JudicialResult{{ID: "result-1", Category: ResultCategoryFinal}}},
		},
		OccurredAt: fixedTime,
	}

	// act
	result := aggregate.UpdateOffences(command)

	// assert
	assert.Equal(t, []string{
		OffencesUpdatedEventType,
		DefendantOffencesChangedEventType,
		CaseStatusChangedEventType,
		DocumentGenerationRequestedEventType,
	}, eventTypes(result.Events()))
}

func Test_Decide_MarkHearingAsDuplicate_IsIdempotent(t *testing.T) {
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))

	first := aggregate.MarkHearingAsDuplicate(MarkHearingAsDuplicateCommand{
		CaseID: "case-1", HearingID: "hearing-1", OccurredAt: fixedTime,
	})
	require.Equal(t, []string{HearingMarkedAsDuplicateEventType}, eventTypes(first.Events()))
	aggregate.ApplyAll(first.Events())

	second := aggregate.MarkHearingAsDuplicate(MarkHearingAsDuplicateCommand{
		CaseID: "case-1", HearingID: "hearing-1", OccurredAt: fixedTime,
	})
	assert.False(t, second.HasEventsToAppend())
}

func Test_Decide_RemoveDefendantHearingLink_IsIdempotent(t *testing.T) {
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))

	first := aggregate.RemoveDefendantHearingLink(RemoveDefendantHearingLinkCommand{
		CaseID: "case-1", DefendantID: "def-1", HearingID: "hearing-1", OccurredAt: fixedTime,
	})
	require.Equal(t, []string{DefendantHearingLinkRemovedEventType}, eventTypes(first.Events()))
	aggregate.ApplyAll(first.Events())

	second := aggregate.RemoveDefendantHearingLink(RemoveDefendantHearingLinkCommand{
		CaseID: "case-1", DefendantID: "def-1", HearingID: "hearing-1", OccurredAt: fixedTime,
	})
	assert.False(t, second.HasEventsToAppend())
}
