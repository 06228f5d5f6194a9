package caseshell

import (
	"errors"
)

var (
	ErrUnknownEventType        = errors.New("unknown event type")
	ErrMarshalingPayloadFailed = errors.New("marshaling event payload failed")
	ErrRetriesExhausted        = errors.New("retries exhausted")
)
