// Package casecore holds the pure domain of the prosecution case aggregate.
//
// A case is rebuilt by folding its ordered event history into State. Command
// methods on Aggregate decide against that state and return a BatchResult
// carrying the ordered events to append. Nothing in this package performs IO,
// the shell package owns storage, serialization and retries.
package casecore
