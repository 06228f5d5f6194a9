// Package eventstore provides the storage-agnostic contracts for the
// per-case event streams the case aggregate is sourced from.
//
// Each prosecution case owns one strictly ordered, append-only stream of
// typed events. This package defines the types shared by every engine
// implementation:
//   - Filter: targets one case stream, optionally narrowed by event type
//     or occurred-at range
//   - StorableEvent: a scalar DTO for appending events and querying them back
//   - Logger / MetricsCollector: dependency-free observability interfaces
//
// Common usage pattern:
//
//	filter, err := eventstore.BuildCaseStreamFilter(caseID).Finalize()
//	if err != nil {
//		// handle error
//	}
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	newEvent, err := eventstore.BuildStorableEvent(caseID, eventType, time.Now(), payload, metadata)
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//
// Append is guarded by the max sequence number observed at query time; a lost
// guard surfaces as ErrConcurrencyConflict and the caller replays and retries.
package eventstore
