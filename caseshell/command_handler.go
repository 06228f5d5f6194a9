package caseshell

import (
	"context"
	"time"

	"github.com/courtflow/case-aggregate-go/casecore"
	"github.com/courtflow/case-aggregate-go/eventstore"
)

// ForStoringCaseEvents is the event store as the shell needs it.
type ForStoringCaseEvents interface {
	Query(
		ctx context.Context,
		filter eventstore.Filter,
	) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint, error)

	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		event eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Command is any command the aggregate can decide.
type Command interface {
	CommandType() string
}

// CommandHandler runs the query/replay/decide/append cycle for one command.
// Concurrency conflicts on append are retried with a fresh replay, so every
// decision is made against the stream as it was at append time.
type CommandHandler struct {
	eventStore       ForStoringCaseEvents
	logger           eventstore.Logger
	metrics          eventstore.MetricsCollector
	retryOptions     []RetryOption
	aggregateOptions []casecore.AggregateOption
}

// HandlerOption configures a CommandHandler.
type HandlerOption func(*CommandHandler)

// WithHandlerLogger sets the logger for command handling.
func WithHandlerLogger(logger eventstore.Logger) HandlerOption {
	return func(h *CommandHandler) {
		h.logger = logger
	}
}

// WithHandlerMetrics sets the metrics collector for command handling.
func WithHandlerMetrics(metrics eventstore.MetricsCollector) HandlerOption {
	return func(h *CommandHandler) {
		h.metrics = metrics
	}
}

// WithRetryOptions overrides the retry behavior on concurrency conflicts.
func WithRetryOptions(options ...RetryOption) HandlerOption {
	return func(h *CommandHandler) {
		h.retryOptions = options
	}
}

// WithAggregateOptions configures the aggregates the handler replays.
func WithAggregateOptions(options ...casecore.AggregateOption) HandlerOption {
	return func(h *CommandHandler) {
		h.aggregateOptions = options
	}
}

// NewCommandHandler creates a handler on top of the given event store.
func NewCommandHandler(eventStore ForStoringCaseEvents, options ...HandlerOption) *CommandHandler {
	handler := &CommandHandler{eventStore: eventStore}

	for _, option := range options {
		option(handler)
	}

	return handler
}

// Handle replays the case stream, lets decide produce a batch against the
// rebuilt aggregate and appends the batch guarded by the sequence number
// observed at query time. The returned error is either an infrastructure
// error or the business error of a failed decision; failed decisions still
// append their failure event.
func (h *CommandHandler) Handle(
	ctx context.Context,
	caseID casecore.CaseIDString,
	command Command,
	decide func(*casecore.Aggregate) casecore.BatchResult,
) (HandlerResult, error) {

	start := time.Now()
	metadata := BuildCommandMetadata()

	filter, filterErr := eventstore.BuildCaseStreamFilter(caseID).Finalize()
	if filterErr != nil {
		return newHandlerResult(HandlerOutcomeError, 0, RetryStats{}), filterErr
	}

	var batch casecore.BatchResult

	operation := func() error {
		storableEvents, maxSequenceNumber, queryErr := h.eventStore.Query(ctx, filter)
		if queryErr != nil {
			return queryErr
		}

		history, convertErr := DomainEventsFrom(storableEvents)
		if convertErr != nil {
			return convertErr
		}

		batch = decide(casecore.ReplayAggregate(history, h.aggregateOptions...))
		if !batch.HasEventsToAppend() {
			return nil
		}

		eventsToAppend, buildErr := StorableEventsFrom(batch.Events(), metadata.MessageID, metadata.CorrelationID)
		if buildErr != nil {
			return buildErr
		}

		return h.eventStore.Append(ctx, filter, maxSequenceNumber, eventsToAppend[0], eventsToAppend[1:]...)
	}

	retryStats, operationErr := RetryWithExponentialBackoff(ctx, operation, h.retryOptions...)
	if operationErr != nil {
		h.observe(command, HandlerOutcomeError, caseID, retryStats, time.Since(start))

		return newHandlerResult(HandlerOutcomeError, 0, retryStats), operationErr
	}

	h.observe(command, batch.Outcome(), caseID, retryStats, time.Since(start))

	return newHandlerResult(batch.Outcome(), len(batch.Events()), retryStats), batch.Error()
}

func (h *CommandHandler) observe(
	command Command,
	outcome string,
	caseID casecore.CaseIDString,
	retryStats RetryStats,
	duration time.Duration,
) {

	if h.metrics != nil {
		labels := map[string]string{"command_type": command.CommandType(), "outcome": outcome}
		h.metrics.RecordDuration("commandhandler_duration", duration, labels)
		h.metrics.IncrementCounter("commandhandler_commands", labels)

		if retryStats.Attempts > 1 {
			h.metrics.RecordValue("commandhandler_retry_attempts", float64(retryStats.Attempts), labels)
		}
	}

	if h.logger != nil {
		h.logger.Info("command handled",
			"commandType", command.CommandType(),
			"caseId", caseID,
			"outcome", outcome,
			"attempts", retryStats.Attempts,
			"durationMs", float64(duration.Microseconds())/1000.0,
		)
	}
}
