package caseshell

import (
	"encoding/json"
	"errors"

	"github.com/courtflow/case-aggregate-go/casecore"
	"github.com/courtflow/case-aggregate-go/eventstore"
)

// StorableEventFrom converts a domain event into its storable representation.
func StorableEventFrom(event casecore.DomainEvent, metadata EventMetadata) (eventstore.StorableEvent, error) {
	payloadJSON, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMarshalingPayloadFailed, marshalErr)
	}

	metadataJSON, marshalErr := json.Marshal(metadata)
	if marshalErr != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMarshalingPayloadFailed, marshalErr)
	}

	return eventstore.BuildStorableEvent(
		event.HasCaseID(),
		event.EventType(),
		event.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)
}

// StorableEventsFrom converts an ordered batch of domain events. Each event
// gets its own message ID, causation and correlation are shared.
func StorableEventsFrom(events casecore.DomainEvents, causationID string, correlationID string) (eventstore.StorableEvents, error) {
	storableEvents := make(eventstore.StorableEvents, 0, len(events))

	for _, event := range events {
		storableEvent, err := StorableEventFrom(event, BuildEventMetadata(causationID, correlationID))
		if err != nil {
			return nil, err
		}

		storableEvents = append(storableEvents, storableEvent)
	}

	return storableEvents, nil
}
