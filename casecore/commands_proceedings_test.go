package casecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decide_InitiateProceedings_CreatesCase(t *testing.T) {
	// arrange
	aggregate := NewAggregate()
	command := InitiateProceedingsCommand{
		CaseID:        "case-1",
		URN:           "87GD9945217",
		CourtCentreID: "court-centre-7",
		Defendants:    []Defendant{givenPersonDefendant("def-1", givenOpenOffence("off-1"))},
		OccurredAt:    fixedTime,
	}

	// act
	result := aggregate.InitiateProceedings(command)

	// assert
	require.NoError(t, result.Error())
	require.Equal(t, []string{ProceedingsInitiatedEventType}, eventTypes(result.Events()))

	state := ReplayState(result.Events())
	require.NotNil(t, state.Case)
	assert.Equal(t, URNString("87GD9945217"), state.Case.URN)
	assert.Equal(t, CaseStatusActive, state.Case.Status)
	assert.Len(t, state.Case.Defendants, 1)
}

func Test_Decide_InitiateProceedings_IgnoredWhenAlreadyInitiated(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))

	// act
	result := aggregate.InitiateProceedings(InitiateProceedingsCommand{
		CaseID: "case-1", URN: "87GD9945217", OccurredAt: fixedTime,
	})

	// assert
	require.NoError(t, result.Error())
	assert.True(t, result.IsIgnored())
	assert.Equal(t, []string{ProceedingsInitiationIgnoredEventType}, eventTypes(result.Events()))
}

func Test_Decide_InitiateProceedings_FailsOnDuplicateDefendantID(t *testing.T) {
	// arrange
	aggregate := NewAggregate()
	command := InitiateProceedingsCommand{
		CaseID: "case-1",
		URN:    "87GD9945217",
		Defendants: []Defendant{
			givenPersonDefendant("def-1"),
			givenPersonDefendant("def-1"),
		},
		OccurredAt: fixedTime,
	}

	// act
	result := aggregate.InitiateProceedings(command)

	// assert
	require.Error(t, result.Error())
	assert.Equal(t, []string{OperationFailedEventType}, eventTypes(result.Events()))
}

func Test_Decide_EjectCase_Succeeds(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))

	// act
	result := aggregate.EjectCase(EjectCaseCommand{CaseID: "case-1", OccurredAt: fixedTime})

	// assert
	require.NoError(t, result.Error())
	require.Equal(t, []string{CaseEjectedEventType}, eventTypes(result.Events()))

	aggregate.ApplyAll(result.Events())
	assert.Equal(t, CaseStatusEjected, aggregate.State().Case.Status)
}

func Test_Decide_EjectCase_CaseNotFound(t *testing.T) {
	result := NewAggregate().EjectCase(EjectCaseCommand{CaseID: "case-1", OccurredAt: fixedTime})

	require.Error(t, result.Error())
	assert.Equal(t, []string{CaseNotFoundEventType}, eventTypes(result.Events()))
}

func Test_Decide_EjectCase_SecondEjectionRecordsNothing(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))
	aggregate.Apply(BuildCaseEjected("case-1", fixedTime))

	// act
	result := aggregate.EjectCase(EjectCaseCommand{CaseID: "case-1", OccurredAt: fixedTime})

	// assert
	require.NoError(t, result.Error())
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_ReferCaseToSJP_Succeeds(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))

	// act
	result := aggregate.ReferCaseToSJP(ReferCaseToSJPCommand{CaseID: "case-1", OccurredAt: fixedTime})

	// assert
	require.NoError(t, result.Error())
	require.Equal(t, []string{CaseReferredToSJPEventType}, eventTypes(result.Events()))

	aggregate.ApplyAll(result.Events())
	assert.Equal(t, CaseStatusSJPReferral, aggregate.State().Case.Status)
}

func Test_Decide_ReferCaseToSJP_EjectedCaseRecordsNothing(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))
	aggregate.Apply(BuildCaseEjected("case-1", fixedTime))

	// act
	result := aggregate.ReferCaseToSJP(ReferCaseToSJPCommand{CaseID: "case-1", OccurredAt: fixedTime})

	// assert
	assert.False(t, result.HasEventsToAppend())
}

func Test_Apply_EjectionIsSticky(t *testing.T) {
	// ejected status shadows later derived status changes
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	aggregate.Apply(BuildCaseEjected("case-1", fixedTime))

	aggregate.Apply(BuildCaseStatusChanged("case-1", CaseStatusActive, CaseStatusInactive, fixedTime))

	assert.Equal(t, CaseStatusEjected, aggregate.State().Case.Status)
}
