package casecore

import (
	"time"
)

// minimumLockDuration is the floor below which no lock is ever granted.
const minimumLockDuration = 10 * time.Minute

// FormLockPolicy holds the default lock durations per form type.
type FormLockPolicy struct {
	defaults map[FormType]time.Duration
}

// DefaultFormLockPolicy returns the standard lock durations.
func DefaultFormLockPolicy() FormLockPolicy {
	return FormLockPolicy{
		defaults: map[FormType]time.Duration{
			FormTypeBCM:  30 * time.Minute,
			FormTypePTPH: 60 * time.Minute,
			FormTypePET:  30 * time.Minute,
		},
	}
}

// BuildFormLockPolicy creates a policy with the given per-type defaults.
// Types without an entry fall back to the minimum lock duration.
func BuildFormLockPolicy(defaults map[FormType]time.Duration) FormLockPolicy {
	return FormLockPolicy{defaults: defaults}
}

// LockDecision is the outcome of an edit request against a form.
type LockDecision struct {
	Granted   bool
	HeldBy    string
	ExpiresAt time.Time
}

// DecideLock grants the lock when the form is unlocked, the previous lock has
// expired, or the requester already holds it. An explicit duration overrides
// the type default, the floor applies in both cases.
func (p FormLockPolicy) DecideLock(form Form, requestedBy string, now time.Time, extendBy time.Duration) LockDecision {
	if form.LockActive(now) && form.LockedBy != requestedBy {
		return LockDecision{
			Granted:   false,
			HeldBy:    form.LockedBy,
			ExpiresAt: form.LockExpiresAt,
		}
	}

	duration := extendBy
	if duration <= 0 {
		duration = p.defaults[form.Type]
	}

	if duration < minimumLockDuration {
		duration = minimumLockDuration
	}

	return LockDecision{
		Granted:   true,
		HeldBy:    requestedBy,
		ExpiresAt: now.Add(duration),
	}
}
