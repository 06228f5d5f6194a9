package casecore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func givenCaseWithForm(formType FormType) *Aggregate {
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))
	aggregate.Apply(BuildFormCreated("case-1", "form-1", formType,
		[]FormDefendantRef{{DefendantID: "def-1", OffenceIDs: []OffenceIDString{"off-1"}}}, fixedTime))

	return aggregate
}

func Test_Decide_CreateForm_Succeeds(t *testing.T) {
	// arrange
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1", givenOpenOffence("off-1")))

	// act
	result := aggregate.CreateForm(CreateFormCommand{
		CaseID:     "case-1",
		FormID:     "form-1",
		FormType:   FormTypePTPH,
		Defendants: []FormDefendantRef{{DefendantID: "def-1", OffenceIDs: []OffenceIDString{"off-1"}}},
		OccurredAt: fixedTime,
	})

	// assert
	require.NoError(t, result.Error())
	require.Equal(t, []string{FormCreatedEventType}, eventTypes(result.Events()))

	aggregate.ApplyAll(result.Events())
	assert.True(t, aggregate.State().HasForm("form-1"))
}

func Test_Decide_CreateForm_DuplicateIDIsIgnored(t *testing.T) {
	aggregate := givenCaseWithForm(FormTypePTPH)

	result := aggregate.CreateForm(CreateFormCommand{
		CaseID: "case-1", FormID: "form-1", FormType: FormTypePTPH, OccurredAt: fixedTime,
	})

	require.NoError(t, result.Error())
	assert.True(t, result.IsIgnored())
	assert.Equal(t, []string{FormCreationIgnoredEventType}, eventTypes(result.Events()))
}

func Test_Decide_CreateForm_CaseMissingFails(t *testing.T) {
	result := NewAggregate().CreateForm(CreateFormCommand{
		CaseID: "case-1", FormID: "form-1", FormType: FormTypeBCM, OccurredAt: fixedTime,
	})

	require.Error(t, result.Error())
	assert.Equal(t, []string{OperationFailedEventType}, eventTypes(result.Events()))
}

func Test_Decide_RequestFormEdit_GrantsLockOnUnlockedForm(t *testing.T) {
	// arrange
	aggregate := givenCaseWithForm(FormTypePTPH)

	// act
	result := aggregate.RequestFormEdit(RequestFormEditCommand{
		CaseID: "case-1", FormID: "form-1", RequestedBy: "user-a", OccurredAt: fixedTime,
	})

	// assert
	require.NoError(t, result.Error())
	require.Equal(t, []string{FormLockStatusRecordedEventType}, eventTypes(result.Events()))

	lockStatus := result.Events()[0].(FormLockStatusRecorded)
	assert.False(t, lockStatus.IsLocked)
	assert.Equal(t, "user-a", lockStatus.LockedBy)
	assert.Equal(t, fixedTime.Add(60*time.Minute), lockStatus.LockExpiresAt)

	aggregate.ApplyAll(result.Events())
	assert.Equal(t, "user-a", aggregate.State().Forms["form-1"].LockedBy)
}

func Test_Decide_RequestFormEdit_ReportsContention(t *testing.T) {
	// arrange
	aggregate := givenCaseWithForm(FormTypePTPH)
	granted := aggregate.RequestFormEdit(RequestFormEditCommand{
		CaseID: "case-1", FormID: "form-1", RequestedBy: "user-a", OccurredAt: fixedTime,
	})
	aggregate.ApplyAll(granted.Events())

	// act
	result := aggregate.RequestFormEdit(RequestFormEditCommand{
		CaseID: "case-1", FormID: "form-1", RequestedBy: "user-b", OccurredAt: fixedTime.Add(time.Minute),
	})

	// assert
	require.NoError(t, result.Error())
	lockStatus := result.Events()[0].(FormLockStatusRecorded)
	assert.True(t, lockStatus.IsLocked)
	assert.Equal(t, "user-a", lockStatus.LockedBy)
	assert.Equal(t, "user-b", lockStatus.LockRequestedBy)

	// denied requests leave the lock untouched
	aggregate.ApplyAll(result.Events())
	assert.Equal(t, "user-a", aggregate.State().Forms["form-1"].LockedBy)
}

func Test_Decide_RequestFormEdit_GrantsAfterExpiry(t *testing.T) {
	// arrange
	aggregate := givenCaseWithForm(FormTypeBCM)
	granted := aggregate.RequestFormEdit(RequestFormEditCommand{
		CaseID: "case-1", FormID: "form-1", RequestedBy: "user-a", OccurredAt: fixedTime,
	})
	aggregate.ApplyAll(granted.Events())

	// act: BCM default is 30 minutes
	result := aggregate.RequestFormEdit(RequestFormEditCommand{
		CaseID: "case-1", FormID: "form-1", RequestedBy: "user-b", OccurredAt: fixedTime.Add(31 * time.Minute),
	})

	// assert
	lockStatus := result.Events()[0].(FormLockStatusRecorded)
	assert.False(t, lockStatus.IsLocked)
	assert.Equal(t, "user-b", lockStatus.LockedBy)
}

func Test_Decide_RequestFormEdit_FormMissingFails(t *testing.T) {
	aggregate := givenInitiatedCase(givenPersonDefendant("def-1"))

	result := aggregate.RequestFormEdit(RequestFormEditCommand{
		CaseID: "case-1", FormID: "form-9", RequestedBy: "user-a", OccurredAt: fixedTime,
	})

	require.Error(t, result.Error())
	assert.Equal(t, []string{OperationFailedEventType}, eventTypes(result.Events()))
}

func Test_Decide_UpdateFormData_ReleasesLock(t *testing.T) {
	// arrange
	aggregate := givenCaseWithForm(FormTypePTPH)
	granted := aggregate.RequestFormEdit(RequestFormEditCommand{
		CaseID: "case-1", FormID: "form-1", RequestedBy: "user-a", OccurredAt: fixedTime,
	})
	aggregate.ApplyAll(granted.Events())

	// act
	result := aggregate.UpdateFormData(UpdateFormDataCommand{
		CaseID:     "case-1",
		FormID:     "form-1",
		UpdatedBy:  "user-a",
		Data:       json.RawMessage(`{"plea":"not guilty"}`),
		OccurredAt: fixedTime.Add(5 * time.Minute),
	})

	// assert
	require.NoError(t, result.Error())
	require.Equal(t, []string{FormUpdatedEventType}, eventTypes(result.Events()))

	aggregate.ApplyAll(result.Events())
	form := aggregate.State().Forms["form-1"]
	assert.JSONEq(t, `{"plea":"not guilty"}`, string(form.Data))
	assert.Empty(t, form.LockedBy)
	assert.True(t, form.LockExpiresAt.IsZero())
	assert.False(t, form.LockActive(fixedTime.Add(6*time.Minute)))
}

func Test_Decide_FinaliseForm_ExactlyOnce(t *testing.T) {
	// arrange
	aggregate := givenCaseWithForm(FormTypePET)

	// act
	first := aggregate.FinaliseForm(FinaliseFormCommand{CaseID: "case-1", FormID: "form-1", OccurredAt: fixedTime})

	// assert
	require.NoError(t, first.Error())
	require.Equal(t, []string{FormFinalisedEventType}, eventTypes(first.Events()))

	finalised := first.Events()[0].(FormFinalised)
	assert.Len(t, finalised.Defendants, 1)

	aggregate.ApplyAll(first.Events())
	assert.True(t, aggregate.State().Forms["form-1"].Finalised)

	second := aggregate.FinaliseForm(FinaliseFormCommand{CaseID: "case-1", FormID: "form-1", OccurredAt: fixedTime})
	require.Error(t, second.Error())
	assert.Equal(t, []string{OperationFailedEventType}, eventTypes(second.Events()))
}

func Test_Decide_FinaliseForm_MissingCaseOrFormFails(t *testing.T) {
	noCase := NewAggregate().FinaliseForm(FinaliseFormCommand{CaseID: "case-1", FormID: "form-1", OccurredAt: fixedTime})
	require.Error(t, noCase.Error())

	noForm := givenInitiatedCase(givenPersonDefendant("def-1")).
		FinaliseForm(FinaliseFormCommand{CaseID: "case-1", FormID: "form-1", OccurredAt: fixedTime})
	require.Error(t, noForm.Error())
	assert.Equal(t, []string{OperationFailedEventType}, eventTypes(noForm.Events()))
}
