package caseshell

import (
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/courtflow/case-aggregate-go/eventstore"
)

// EventMetadata carries the message identity attached to every stored event.
type EventMetadata struct {
	MessageID     string `json:"messageId"`
	CausationID   string `json:"causationId"`
	CorrelationID string `json:"correlationId"`
}

// BuildEventMetadata creates metadata for an event caused by the given
// command message within the given correlation.
func BuildEventMetadata(causationID string, correlationID string) EventMetadata {
	return EventMetadata{
		MessageID:     uuid.NewString(),
		CausationID:   causationID,
		CorrelationID: correlationID,
	}
}

// BuildCommandMetadata creates metadata for a command that starts a new correlation.
func BuildCommandMetadata() EventMetadata {
	messageID := uuid.NewString()

	return EventMetadata{
		MessageID:     messageID,
		CausationID:   messageID,
		CorrelationID: messageID,
	}
}

// EventMetadataFrom deserializes the metadata of a stored event.
func EventMetadataFrom(storableEvent eventstore.StorableEvent) (EventMetadata, error) {
	var metadata EventMetadata

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, &metadata); err != nil {
		return EventMetadata{}, err
	}

	return metadata, nil
}
