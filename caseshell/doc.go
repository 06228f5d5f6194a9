// Package caseshell is the imperative shell around the casecore domain. It
// converts between domain events and their storable representation, replays
// case streams from the event store and appends decision batches with
// optimistic concurrency control and retries.
package caseshell
