package casecore

import (
	"time"
)

// Alias types and small helpers keep the core lean instead of full value objects.

// CaseIDString represents a prosecution case identifier
type CaseIDString = string

// URNString represents the human-readable unique reference number of a case
type URNString = string

// DefendantIDString represents a defendant identifier
type DefendantIDString = string

// MasterDefendantIDString represents the cross-case defendant identity key
type MasterDefendantIDString = string

// OffenceIDString represents an offence identifier
type OffenceIDString = string

// FormIDString represents a form identifier, distinct from the case identifier
type FormIDString = string

// HearingIDString represents a hearing identifier
type HearingIDString = string

// DateString represents a calendar date in "2006-01-02" format
type DateString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// CaseStatus enumerates the lifecycle states of a case.
type CaseStatus string

const (
	CaseStatusActive         CaseStatus = "ACTIVE"
	CaseStatusInactive       CaseStatus = "INACTIVE"
	CaseStatusReadyForReview CaseStatus = "READY_FOR_REVIEW"
	CaseStatusSJPReferral    CaseStatus = "SJP_REFERRAL"
	CaseStatusEjected        CaseStatus = "EJECTED" // terminal
)

// Jurisdiction enumerates the court jurisdiction a hearing was held under.
type Jurisdiction string

const (
	JurisdictionCrown       Jurisdiction = "CROWN"
	JurisdictionMagistrates Jurisdiction = "MAGISTRATES"
)

// LAAStatus enumerates the classified legal-aid statuses; the zero value means unclassified/unset.
type LAAStatus string

const (
	LAAStatusGranted   LAAStatus = "GRANTED"
	LAAStatusRefused   LAAStatus = "REFUSED"
	LAAStatusWithdrawn LAAStatus = "WITHDRAWN"
	LAAStatusNone      LAAStatus = ""
)

// ResultCategory enumerates judicial result categories.
type ResultCategory string

const (
	ResultCategoryFinal        ResultCategory = "FINAL"
	ResultCategoryIntermediary ResultCategory = "INTERMEDIARY"
)

// FormType enumerates the form variants a case can carry.
type FormType string

const (
	FormTypeBCM  FormType = "BCM"
	FormTypePTPH FormType = "PTPH"
	FormTypePET  FormType = "PET"
)
