package caseshell

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/courtflow/case-aggregate-go/casecore"
	"github.com/courtflow/case-aggregate-go/eventstore"
)

// DomainEventFrom reconstructs the domain event from its storable representation.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (casecore.DomainEvent, error) {
	switch storableEvent.EventType {
	case casecore.ProceedingsInitiatedEventType:
		return unmarshalPayload[casecore.ProceedingsInitiated](storableEvent)
	case casecore.ProceedingsInitiationIgnoredEventType:
		return unmarshalPayload[casecore.ProceedingsInitiationIgnored](storableEvent)
	case casecore.CaseStatusChangedEventType:
		return unmarshalPayload[casecore.CaseStatusChanged](storableEvent)
	case casecore.CaseRetentionPolicyAppliedEventType:
		return unmarshalPayload[casecore.CaseRetentionPolicyApplied](storableEvent)
	case casecore.DocumentGenerationRequestedEventType:
		return unmarshalPayload[casecore.DocumentGenerationRequested](storableEvent)
	case casecore.CaseEjectedEventType:
		return unmarshalPayload[casecore.CaseEjected](storableEvent)
	case casecore.CaseReferredToSJPEventType:
		return unmarshalPayload[casecore.CaseReferredToSJP](storableEvent)
	case casecore.HearingResultsRecordedEventType:
		return unmarshalPayload[casecore.HearingResultsRecorded](storableEvent)
	case casecore.OffencesUpdatedEventType:
		return unmarshalPayload[casecore.OffencesUpdated](storableEvent)
	case casecore.DefendantOffencesChangedEventType:
		return unmarshalPayload[casecore.DefendantOffencesChanged](storableEvent)
	case casecore.HearingMarkedAsDuplicateEventType:
		return unmarshalPayload[casecore.HearingMarkedAsDuplicate](storableEvent)
	case casecore.DefendantHearingLinkRemovedEventType:
		return unmarshalPayload[casecore.DefendantHearingLinkRemoved](storableEvent)
	case casecore.ConvictionDateAddedEventType:
		return unmarshalPayload[casecore.ConvictionDateAdded](storableEvent)
	case casecore.ConvictionDateRemovedEventType:
		return unmarshalPayload[casecore.ConvictionDateRemoved](storableEvent)
	case casecore.CustodialEstablishmentUpdatedEventType:
		return unmarshalPayload[casecore.CustodialEstablishmentUpdated](storableEvent)
	case casecore.CustodialEstablishmentUnchangedEventType:
		return unmarshalPayload[casecore.CustodialEstablishmentUnchanged](storableEvent)
	case casecore.OnlinePleaRecordedEventType:
		return unmarshalPayload[casecore.OnlinePleaRecorded](storableEvent)
	case casecore.SendingSheetCompletedEventType:
		return unmarshalPayload[casecore.SendingSheetCompleted](storableEvent)
	case casecore.SendingSheetCompletionIgnoredEventType:
		return unmarshalPayload[casecore.SendingSheetCompletionIgnored](storableEvent)
	case casecore.DefendantLAAStatusUpdatedEventType:
		return unmarshalPayload[casecore.DefendantLAAStatusUpdated](storableEvent)
	case casecore.DefenceOrganisationChangedEventType:
		return unmarshalPayload[casecore.DefenceOrganisationChanged](storableEvent)
	case casecore.DefenceOrganisationDisassociatedEventType:
		return unmarshalPayload[casecore.DefenceOrganisationDisassociated](storableEvent)
	case casecore.FormCreatedEventType:
		return unmarshalPayload[casecore.FormCreated](storableEvent)
	case casecore.FormCreationIgnoredEventType:
		return unmarshalPayload[casecore.FormCreationIgnored](storableEvent)
	case casecore.FormLockStatusRecordedEventType:
		return unmarshalPayload[casecore.FormLockStatusRecorded](storableEvent)
	case casecore.FormUpdatedEventType:
		return unmarshalPayload[casecore.FormUpdated](storableEvent)
	case casecore.FormFinalisedEventType:
		return unmarshalPayload[casecore.FormFinalised](storableEvent)
	case casecore.DefendantMatchedEventType:
		return unmarshalPayload[casecore.DefendantMatched](storableEvent)
	case casecore.PartialMatchCreatedEventType:
		return unmarshalPayload[casecore.PartialMatchCreated](storableEvent)
	case casecore.OperationFailedEventType:
		return unmarshalPayload[casecore.OperationFailed](storableEvent)
	case casecore.CaseNotFoundEventType:
		return unmarshalPayload[casecore.CaseNotFound](storableEvent)
	case casecore.DefendantNotFoundEventType:
		return unmarshalPayload[casecore.DefendantNotFound](storableEvent)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventType, storableEvent.EventType)
	}
}

// DomainEventsFrom reconstructs an ordered event history from stored events.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (casecore.DomainEvents, error) {
	history := make(casecore.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		event, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		history = append(history, event)
	}

	return history, nil
}

func unmarshalPayload[E casecore.DomainEvent](storableEvent eventstore.StorableEvent) (E, error) {
	var event E

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.PayloadJSON, &event); err != nil {
		return event, fmt.Errorf("unmarshaling %s payload: %w", storableEvent.EventType, err)
	}

	return event, nil
}
