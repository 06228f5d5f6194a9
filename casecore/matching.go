package casecore

// EligibleCandidates filters out candidates that carry no record of court
// proceedings having been initiated. Only initiated identities can be matched.
func EligibleCandidates(candidates []MatchCandidate) []MatchCandidate {
	var eligible []MatchCandidate

	for _, candidate := range candidates {
		if candidate.CourtProceedingsInitiated != nil {
			eligible = append(eligible, candidate)
		}
	}

	return eligible
}

// EligibleMasterIDs returns the master defendant IDs of the eligible candidates.
func EligibleMasterIDs(candidates []MatchCandidate) []MasterDefendantIDString {
	var ids []MasterDefendantIDString

	for _, candidate := range EligibleCandidates(candidates) {
		ids = append(ids, candidate.MasterDefendantID)
	}

	return ids
}
