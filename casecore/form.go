package casecore

import (
	"encoding/json"
	"time"
)

// FormDefendantRef links a form to a defendant and a subset of their offences.
type FormDefendantRef struct {
	DefendantID DefendantIDString `json:"defendantId"`
	OffenceIDs  []OffenceIDString `json:"offenceIds,omitempty"`
}

// Form is a case-associated document with its own identifier and editing lock.
type Form struct {
	ID              FormIDString       `json:"id"`
	CaseID          CaseIDString       `json:"caseId"`
	Type            FormType           `json:"type"`
	Defendants      []FormDefendantRef `json:"defendants,omitempty"`
	Data            json.RawMessage    `json:"data,omitempty"`
	LockedBy        string             `json:"lockedBy,omitempty"`
	LockRequestedBy string             `json:"lockRequestedBy,omitempty"`
	LockExpiresAt   time.Time          `json:"lockExpiresAt,omitempty"`
	Finalised       bool               `json:"finalised,omitempty"`
}

// LockActive reports whether the form is held by someone and the hold has not expired.
func (f Form) LockActive(now time.Time) bool {
	return f.LockedBy != "" && f.LockExpiresAt.After(now)
}

func (f Form) clone() Form {
	cloned := f

	cloned.Defendants = cloneFormDefendantRefs(f.Defendants)

	if f.Data != nil {
		cloned.Data = make(json.RawMessage, len(f.Data))
		copy(cloned.Data, f.Data)
	}

	return cloned
}

func cloneFormDefendantRefs(refs []FormDefendantRef) []FormDefendantRef {
	if refs == nil {
		return nil
	}

	cloned := make([]FormDefendantRef, len(refs))
	for i, ref := range refs {
		cloned[i] = ref
		if ref.OffenceIDs != nil {
			cloned[i].OffenceIDs = make([]OffenceIDString, len(ref.OffenceIDs))
			copy(cloned[i].OffenceIDs, ref.OffenceIDs)
		}
	}

	return cloned
}
