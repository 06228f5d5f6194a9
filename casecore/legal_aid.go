package casecore

// Legal-aid status codes as supplied by the legal aid agency.
var (
	grantedLAACodes   = map[string]struct{}{"GR": {}, "G2": {}, "GT": {}}
	refusedLAACodes   = map[string]struct{}{"RE": {}, "RF": {}}
	withdrawnLAACodes = map[string]struct{}{"WD": {}, "WN": {}}
)

// ClassifyLAAStatus maps a raw status code onto a classified status.
// Unknown codes classify to LAAStatusNone.
func ClassifyLAAStatus(statusCode string) LAAStatus {
	if _, ok := grantedLAACodes[statusCode]; ok {
		return LAAStatusGranted
	}

	if _, ok := refusedLAACodes[statusCode]; ok {
		return LAAStatusRefused
	}

	if _, ok := withdrawnLAACodes[statusCode]; ok {
		return LAAStatusWithdrawn
	}

	return LAAStatusNone
}

// DeriveDefendantLAAStatus aggregates the offence-level references into one
// defendant-level status. GRANTED wins over REFUSED wins over WITHDRAWN.
func DeriveDefendantLAAStatus(offences []Offence) LAAStatus {
	anyRefused := false
	anyWithdrawn := false

	for _, offence := range offences {
		if offence.LAAReference == nil {
			continue
		}

		switch ClassifyLAAStatus(offence.LAAReference.StatusCode) {
		case LAAStatusGranted:
			return LAAStatusGranted
		case LAAStatusRefused:
			anyRefused = true
		case LAAStatusWithdrawn:
			anyWithdrawn = true
		}
	}

	switch {
	case anyRefused:
		return LAAStatusRefused
	case anyWithdrawn:
		return LAAStatusWithdrawn
	default:
		return LAAStatusNone
	}
}

// DefenceAssociationLocked reports whether the defence organisation of the
// defendant must not be removed automatically. A representation order locks
// the association for as long as any offence is still open.
func DefenceAssociationLocked(defendant Defendant) bool {
	if !defendant.LockedByRepresentationOrder {
		return false
	}

	for _, offence := range defendant.Offences {
		if !offence.ProceedingsConcluded {
			return true
		}
	}

	return false
}
