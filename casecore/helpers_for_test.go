package casecore

import (
	"time"
)

var fixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func givenOpenOffence(id OffenceIDString) Offence {
	return Offence{ID: id, Code: "TH68010"}
}

func givenConcludedOffence(id OffenceIDString) Offence {
	return Offence{
		ID:                   id,
		Code:                 "TH68010",
		ProceedingsConcluded: true,
		JudicialResults: []JudicialResult{
			{ID: "result-" + id, Category: ResultCategoryFinal},
		},
	}
}

func givenPersonDefendant(id DefendantIDString, offences ...Offence) Defendant {
	return Defendant{
		ID:       id,
		Person:   &PersonDetails{FirstName: "Sam", LastName: "Taylor", DateOfBirth: "1990-06-02"},
		Offences: offences,
	}
}

func givenOrganisationDefendant(id DefendantIDString, offences ...Offence) Defendant {
	return Defendant{
		ID:          id,
		LegalEntity: &LegalEntityDetails{Name: "Acme Haulage Ltd"},
		Offences:    offences,
	}
}

func givenInitiatedCase(defendants ...Defendant) *Aggregate {
	aggregate := NewAggregate()
	aggregate.Apply(BuildProceedingsInitiated(
		"case-1", "87GD9945217", "police", "CPS-04", "court-centre-7", defendants, fixedTime,
	))

	return aggregate
}

func eventTypes(events DomainEvents) []string {
	types := make([]string, 0, len(events))
	for _, event := range events {
		types = append(types, event.EventType())
	}

	return types
}
