package casecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func givenCaseWithHearing(defendants ...Defendant) *Aggregate {
	aggregate := givenInitiatedCase(defendants...)
	aggregate.Apply(BuildHearingResultsRecorded("case-1", "hearing-1", JurisdictionMagistrates, false, nil, fixedTime))

	return aggregate
}

func Test_Decide_ApplyMatchResults_ExactMatch(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	initiated := fixedTime

	// act
	result := aggregate.ApplyMatchResults(ApplyMatchResultsCommand{
		CaseID:    "case-1",
		HearingID: "hearing-1",
		Results: []DefendantMatchResult{
			{
				DefendantID: "def-1",
				Exact:       true,
				Candidates:  []MatchCandidate{{MasterDefendantID: "master-1", CourtProceedingsInitiated: &initiated}},
			},
		},
		OccurredAt: fixedTime,
	})

	// assert
	require.NoError(t, result.Error())
	require.Equal(t, []string{DefendantMatchedEventType}, eventTypes(result.Events()))

	aggregate.ApplyAll(result.Events())
	assert.Equal(t, MasterDefendantIDString("master-1"), aggregate.State().Case.Defendants[0].MasterDefendantID)
}

func Test_Decide_ApplyMatchResults_RepeatedDefendantCountsOnce(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	initiated := fixedTime
	repeated := DefendantMatchResult{
		DefendantID: "def-1",
		Exact:       true,
		Candidates:  []MatchCandidate{{MasterDefendantID: "master-1", CourtProceedingsInitiated: &initiated}},
	}

	// act
	result := aggregate.ApplyMatchResults(ApplyMatchResultsCommand{
		CaseID:     "case-1",
		HearingID:  "hearing-1",
		Results:    []DefendantMatchResult{repeated, repeated},
		OccurredAt: fixedTime,
	})

	// assert
	require.NoError(t, result.Error())
	assert.Equal(t, []string{DefendantMatchedEventType}, eventTypes(result.Events()))
}

func Test_Decide_ApplyMatchResults_PartialMatchForPersonDefendant(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	initiated := fixedTime

	// act
	result := aggregate.ApplyMatchResults(ApplyMatchResultsCommand{
		CaseID:    "case-1",
		HearingID: "hearing-1",
		Results: []DefendantMatchResult{
			{
				DefendantID: "def-1",
				Candidates: []MatchCandidate{
					{MasterDefendantID: "master-1", CourtProceedingsInitiated: &initiated},
					{MasterDefendantID: "master-2"},
				},
			},
		},
		OccurredAt: fixedTime,
	})

	// assert: the uninitiated candidate is filtered out
	require.Equal(t, []string{PartialMatchCreatedEventType}, eventTypes(result.Events()))
	partial := result.Events()[0].(PartialMatchCreated)
	require.Len(t, partial.Candidates, 1)
	assert.Equal(t, MasterDefendantIDString("master-1"), partial.Candidates[0].MasterDefendantID)

	aggregate.ApplyAll(result.Events())
	assert.Contains(t, aggregate.State().PendingMatches, DefendantIDString("def-1"))
}

func Test_Decide_ApplyMatchResults_OrganisationDefendantsNeverPartialMatch(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(givenOrganisationDefendant("def-1", givenOpenOffence("off-1")))
	initiated := fixedTime

	// act
	result := aggregate.ApplyMatchResults(ApplyMatchResultsCommand{
		CaseID:    "case-1",
		HearingID: "hearing-1",
		Results: []DefendantMatchResult{
			{
				DefendantID: "def-1",
				Candidates:  []MatchCandidate{{MasterDefendantID: "master-1", CourtProceedingsInitiated: &initiated}},
			},
		},
		OccurredAt: fixedTime,
	})

	// assert
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_ApplyMatchResults_DuplicateHearingSkipsEverything(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(givenPersonDefendant("def-1"))
	aggregate.Apply(BuildHearingMarkedAsDuplicate("case-1", "hearing-1", fixedTime))
	initiated := fixedTime

	// act
	result := aggregate.ApplyMatchResults(ApplyMatchResultsCommand{
		CaseID:    "case-1",
		HearingID: "hearing-1",
		Results: []DefendantMatchResult{
			{
				DefendantID: "def-1",
				Exact:       true,
				Candidates:  []MatchCandidate{{MasterDefendantID: "master-1", CourtProceedingsInitiated: &initiated}},
			},
		},
		OccurredAt: fixedTime,
	})

	// assert
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_ApplyMatchResults_RemovedHearingLinkSkipsDefendant(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(givenPersonDefendant("def-1"))
	aggregate.Apply(BuildDefendantHearingLinkRemoved("case-1", "def-1", "hearing-1", fixedTime))
	initiated := fixedTime

	// act
	result := aggregate.ApplyMatchResults(ApplyMatchResultsCommand{
		CaseID:    "case-1",
		HearingID: "hearing-1",
		Results: []DefendantMatchResult{
			{
				DefendantID: "def-1",
				Exact:       true,
				Candidates:  []MatchCandidate{{MasterDefendantID: "master-1", CourtProceedingsInitiated: &initiated}},
			},
		},
		OccurredAt: fixedTime,
	})

	// assert
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_ApplyMatchResults_AbsentHearingLinkAcknowledged(t *testing.T) {
	// arrange: the case never recorded hearing-9
	aggregate := givenCaseWithHearing(givenPersonDefendant("def-1"))

	// act
	result := aggregate.ApplyMatchResults(ApplyMatchResultsCommand{
		CaseID:     "case-1",
		HearingID:  "hearing-9",
		Results:    []DefendantMatchResult{{DefendantID: "def-1", Exact: true}},
		OccurredAt: fixedTime,
	})

	// assert
	require.Equal(t, []string{DefendantMatchedEventType}, eventTypes(result.Events()))
	matched := result.Events()[0].(DefendantMatched)
	assert.True(t, matched.HearingLinkAbsent)
	assert.Empty(t, matched.MasterDefendantIDs)
}

func Test_Decide_ApplyMatchResults_UnknownCaseRecordsNothing(t *testing.T) {
	result := NewAggregate().ApplyMatchResults(ApplyMatchResultsCommand{CaseID: "case-1", OccurredAt: fixedTime})

	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_MatchDefendants_RecordsConfirmedIdentities(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(
		givenPersonDefendant("def-1"),
		givenPersonDefendant("def-2"),
	)

	// act: duplicate and unknown entries are dropped
	result := aggregate.MatchDefendants(MatchDefendantsCommand{
		CaseID: "case-1",
		Matches: []DirectDefendantMatch{
			{DefendantID: "def-1", MasterDefendantID: "master-1"},
			{DefendantID: "def-1", MasterDefendantID: "master-1"},
			{DefendantID: "def-9", MasterDefendantID: "master-9"},
			{DefendantID: "def-2", MasterDefendantID: "master-2"},
		},
		OccurredAt: fixedTime,
	})

	// assert
	require.NoError(t, result.Error())
	assert.Equal(t, []string{DefendantMatchedEventType, DefendantMatchedEventType}, eventTypes(result.Events()))
}

func Test_Decide_MatchDefendants_DuplicateLatestHearingSkipsCase(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(givenPersonDefendant("def-1"))
	aggregate.Apply(BuildHearingMarkedAsDuplicate("case-1", "hearing-1", fixedTime))

	// act
	result := aggregate.MatchDefendants(MatchDefendantsCommand{
		CaseID:     "case-1",
		Matches:    []DirectDefendantMatch{{DefendantID: "def-1", MasterDefendantID: "master-1"}},
		OccurredAt: fixedTime,
	})

	// assert
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_MatchDefendants_CaseNotFound(t *testing.T) {
	result := NewAggregate().MatchDefendants(MatchDefendantsCommand{CaseID: "case-1", OccurredAt: fixedTime})

	require.Error(t, result.Error())
	assert.Equal(t, []string{CaseNotFoundEventType}, eventTypes(result.Events()))
}

func Test_Apply_DefendantMatched_ClearsPendingMatch(t *testing.T) {
	// arrange
	aggregate := givenCaseWithHearing(givenPersonDefendant("def-1"))
	initiated := fixedTime
	aggregate.Apply(BuildPartialMatchCreated("case-1", "def-1",
		[]MatchCandidate{{MasterDefendantID: "master-1", CourtProceedingsInitiated: &initiated}}, fixedTime))
	require.Contains(t, aggregate.State().PendingMatches, DefendantIDString("def-1"))

	// act
	aggregate.Apply(BuildDefendantMatched("case-1", "def-1", []MasterDefendantIDString{"master-1"}, fixedTime))

	// assert
	assert.NotContains(t, aggregate.State().PendingMatches, DefendantIDString("def-1"))
	assert.Equal(t, MasterDefendantIDString("master-1"), aggregate.State().Case.Defendants[0].MasterDefendantID)
}
