package eventstore

import (
	"errors"
)

var (
	// ErrEmptyEventsTableName is returned when an empty events table name is supplied.
	ErrEmptyEventsTableName = errors.New("empty events table name supplied")

	// ErrEmptyCaseID is returned when a storable event or filter is built without a case identifier.
	ErrEmptyCaseID = errors.New("empty case id supplied")

	// ErrNilDatabaseConnection is returned when a nil database handle is supplied to an engine factory.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrConcurrencyConflict is returned when an append loses the optimistic sequence-number guard,
	// meaning the case stream grew between Query and Append.
	ErrConcurrencyConflict = errors.New("concurrency conflict, no rows were affected")

	// ErrBuildingQueryFailed is returned when SQL query construction fails.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingEventsFailed is returned when the select against the events table fails.
	ErrQueryingEventsFailed = errors.New("querying events failed")

	// ErrScanningDBRowFailed is returned when scanning a queried row fails.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrBuildingStorableEventFailed is returned when a queried row does not form a valid storable event.
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")

	// ErrAppendingEventFailed is returned when the insert into the events table fails.
	ErrAppendingEventFailed = errors.New("appending event failed")

	// ErrGettingRowsAffectedFailed is returned when the affected-row count cannot be read after an append.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
)

// MaxSequenceNumberUint is a type alias for uint, representing the highest sequence number
// recorded for one case stream at the time of a query.
type MaxSequenceNumberUint = uint

// CaseIDString identifies the case stream an event belongs to.
type CaseIDString = string
