package casecore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_DecideLock_GrantsOnUnlockedForm(t *testing.T) {
	policy := DefaultFormLockPolicy()
	form := Form{ID: "form-1", Type: FormTypePTPH}

	decision := policy.DecideLock(form, "user-a", fixedTime, 0)

	assert.True(t, decision.Granted)
	assert.Equal(t, "user-a", decision.HeldBy)
	assert.Equal(t, fixedTime.Add(60*time.Minute), decision.ExpiresAt)
}

func Test_DecideLock_DeniesWhileAnotherUserHoldsIt(t *testing.T) {
	policy := DefaultFormLockPolicy()
	form := Form{
		ID:            "form-1",
		Type:          FormTypeBCM,
		LockedBy:      "user-a",
		LockExpiresAt: fixedTime.Add(15 * time.Minute),
	}

	decision := policy.DecideLock(form, "user-b", fixedTime, 0)

	assert.False(t, decision.Granted)
	assert.Equal(t, "user-a", decision.HeldBy)
	assert.Equal(t, form.LockExpiresAt, decision.ExpiresAt)
}

func Test_DecideLock_GrantsAfterExpiry(t *testing.T) {
	policy := DefaultFormLockPolicy()
	form := Form{
		ID:            "form-1",
		Type:          FormTypeBCM,
		LockedBy:      "user-a",
		LockExpiresAt: fixedTime.Add(-time.Minute),
	}

	decision := policy.DecideLock(form, "user-b", fixedTime, 0)

	assert.True(t, decision.Granted)
	assert.Equal(t, "user-b", decision.HeldBy)
}

func Test_DecideLock_HolderCanReacquire(t *testing.T) {
	policy := DefaultFormLockPolicy()
	form := Form{
		ID:            "form-1",
		Type:          FormTypePET,
		LockedBy:      "user-a",
		LockExpiresAt: fixedTime.Add(15 * time.Minute),
	}

	decision := policy.DecideLock(form, "user-a", fixedTime, 0)

	assert.True(t, decision.Granted)
	assert.Equal(t, fixedTime.Add(30*time.Minute), decision.ExpiresAt)
}

func Test_DecideLock_ExplicitDurationOverridesDefault(t *testing.T) {
	policy := DefaultFormLockPolicy()
	form := Form{ID: "form-1", Type: FormTypeBCM}

	decision := policy.DecideLock(form, "user-a", fixedTime, 2*time.Hour)

	assert.Equal(t, fixedTime.Add(2*time.Hour), decision.ExpiresAt)
}

func Test_DecideLock_FloorAppliesToShortDurations(t *testing.T) {
	policy := DefaultFormLockPolicy()
	form := Form{ID: "form-1", Type: FormTypeBCM}

	decision := policy.DecideLock(form, "user-a", fixedTime, 2*time.Minute)

	assert.Equal(t, fixedTime.Add(10*time.Minute), decision.ExpiresAt)
}

func Test_DecideLock_UnknownFormTypeFallsBackToFloor(t *testing.T) {
	policy := BuildFormLockPolicy(nil)
	form := Form{ID: "form-1", Type: FormType("OTHER")}

	decision := policy.DecideLock(form, "user-a", fixedTime, 0)

	assert.True(t, decision.Granted)
	assert.Equal(t, fixedTime.Add(10*time.Minute), decision.ExpiresAt)
}
