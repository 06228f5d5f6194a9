// Package postgresengine implements the per-case event store on PostgreSQL.
//
// Events live in one table (default "case_events") with the columns
// case_id, sequence_number, event_type, occurred_at, payload (jsonb) and
// metadata (jsonb); (case_id, sequence_number) is unique and sequence numbers
// are dense per case stream.
//
// Query returns the matching events of one case stream in sequence order
// together with the stream's max sequence number. Append builds an
// INSERT ... SELECT guarded by that max sequence number via a CTE, so the
// batch only lands when no other writer appended in between; a lost guard
// surfaces as eventstore.ErrConcurrencyConflict.
//
// The engine works with pgxpool.Pool, sql.DB or sqlx.DB through the internal
// adapters package; SQL is built with goqu.
package postgresengine
