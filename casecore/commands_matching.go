package casecore

import (
	"fmt"
	"time"
)

const (
	ApplyMatchResultsCommandType = "ApplyMatchResults"
	MatchDefendantsCommandType   = "MatchDefendants"
)

// DefendantMatchResult is the search outcome for one defendant.
type DefendantMatchResult struct {
	DefendantID DefendantIDString
	Exact       bool
	Candidates  []MatchCandidate
}

// ApplyMatchResultsCommand folds asynchronous identity-search results into the case.
type ApplyMatchResultsCommand struct {
	CaseID     CaseIDString
	HearingID  HearingIDString
	Results    []DefendantMatchResult
	OccurredAt time.Time
}

func (c ApplyMatchResultsCommand) CommandType() string {
	return ApplyMatchResultsCommandType
}

// ApplyMatchResults records matches and partial matches from a search run.
// Results arrive asynchronously, so anything the case no longer supports is
// skipped silently: duplicate hearings, removed hearing links, unknown
// defendants and candidates whose proceedings were never initiated.
// Organisation defendants never produce partial matches.
func (a *Aggregate) ApplyMatchResults(command ApplyMatchResultsCommand) BatchResult {
	if !a.CaseExists() {
		return NoOpBatch()
	}

	if a.state.DuplicateHearings[command.HearingID] {
		return NoOpBatch()
	}

	if command.HearingID != "" && !a.state.KnownHearings[command.HearingID] {
		var events DomainEvents
		seen := make(map[DefendantIDString]bool, len(command.Results))

		for _, result := range command.Results {
			if seen[result.DefendantID] {
				continue
			}
			seen[result.DefendantID] = true

			if !a.state.Case.HasDefendant(result.DefendantID) {
				continue
			}

			events = append(events, BuildDefendantMatchedWithAbsentHearingLink(
				command.CaseID, result.DefendantID, command.OccurredAt,
			))
		}

		if len(events) == 0 {
			return NoOpBatch()
		}

		return SuccessBatch(events...)
	}

	var events DomainEvents
	seen := make(map[DefendantIDString]bool, len(command.Results))

	for _, result := range command.Results {
		if seen[result.DefendantID] {
			continue
		}
		seen[result.DefendantID] = true

		i := a.state.Case.DefendantIndex(result.DefendantID)
		if i < 0 {
			continue
		}

		if a.state.RemovedHearingLinks[result.DefendantID] {
			continue
		}

		eligible := EligibleCandidates(result.Candidates)
		if len(eligible) == 0 {
			continue
		}

		if result.Exact {
			events = append(events, BuildDefendantMatched(
				command.CaseID,
				result.DefendantID,
				EligibleMasterIDs(eligible),
				command.OccurredAt,
			))
			continue
		}

		if a.state.Case.Defendants[i].IsLegalEntity() {
			continue
		}

		events = append(events, BuildPartialMatchCreated(
			command.CaseID, result.DefendantID, eligible, command.OccurredAt,
		))
	}

	if len(events) == 0 {
		return NoOpBatch()
	}

	return SuccessBatch(events...)
}

// DirectDefendantMatch confirms one defendant's master identity.
type DirectDefendantMatch struct {
	DefendantID       DefendantIDString
	MasterDefendantID MasterDefendantIDString
}

// MatchDefendantsCommand confirms master identities chosen by a caseworker.
type MatchDefendantsCommand struct {
	CaseID     CaseIDString
	Matches    []DirectDefendantMatch
	OccurredAt time.Time
}

func (c MatchDefendantsCommand) CommandType() string {
	return MatchDefendantsCommandType
}

// MatchDefendants records confirmed identities. A case whose latest hearing
// was flagged duplicate is skipped entirely.
func (a *Aggregate) MatchDefendants(command MatchDefendantsCommand) BatchResult {
	if !a.CaseExists() {
		return FailedBatch(
			BuildCaseNotFound(command.CaseID, MatchDefendantsCommandType, command.OccurredAt),
			fmt.Errorf("matching defendants on case %s: case not found", command.CaseID),
		)
	}

	if a.state.LatestHearingID != "" && a.state.DuplicateHearings[a.state.LatestHearingID] {
		return NoOpBatch()
	}

	var events DomainEvents
	seen := make(map[DefendantIDString]bool, len(command.Matches))

	for _, match := range command.Matches {
		if seen[match.DefendantID] {
			continue
		}
		seen[match.DefendantID] = true

		if !a.state.Case.HasDefendant(match.DefendantID) {
			continue
		}

		events = append(events, BuildDefendantMatched(
			command.CaseID,
			match.DefendantID,
			[]MasterDefendantIDString{match.MasterDefendantID},
			command.OccurredAt,
		))
	}

	if len(events) == 0 {
		return NoOpBatch()
	}

	return SuccessBatch(events...)
}
