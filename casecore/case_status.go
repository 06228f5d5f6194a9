package casecore

const (
	retentionYearsInactive = 7
	retentionYearsOpen     = 5
)

// caseConcludedDocumentType is requested for generation once a case goes inactive.
const caseConcludedDocumentType = "CASE_CONCLUSION_NOTICE"

// DeriveCaseStatus computes the case status from the conclusion state of the
// defendants. It never produces the sticky statuses SJP_REFERRAL and EJECTED,
// those are set by their own commands and shadow the derived value.
func DeriveCaseStatus(defendants []Defendant) CaseStatus {
	if len(defendants) == 0 {
		return CaseStatusActive
	}

	allConcluded := true
	anyConcluded := false

	for _, defendant := range defendants {
		if defendant.IsConcluded() {
			anyConcluded = true
		} else {
			allConcluded = false
		}
	}

	switch {
	case allConcluded:
		return CaseStatusInactive
	case anyConcluded:
		return CaseStatusReadyForReview
	default:
		return CaseStatusActive
	}
}

// RetentionPolicyYears returns the retention period assigned when a Crown
// Court status change is recorded. Magistrates cases and box hearings carry
// no retention policy, reported by ok being false.
func RetentionPolicyYears(jurisdiction Jurisdiction, isBoxHearing bool, status CaseStatus) (years int, ok bool) {
	if jurisdiction != JurisdictionCrown || isBoxHearing {
		return 0, false
	}

	if status == CaseStatusInactive {
		return retentionYearsInactive, true
	}

	return retentionYearsOpen, true
}
