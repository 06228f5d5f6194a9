package caseshell

// Handler outcomes for logging and metrics labels.
const (
	HandlerOutcomeSuccess = "success"
	HandlerOutcomeIgnored = "ignored"
	HandlerOutcomeFailed  = "failed"
	HandlerOutcomeNoOp    = "no-op"
	HandlerOutcomeError   = "error"
)

// HandlerResult reports what handling a command did.
type HandlerResult struct {
	Outcome        string
	AppendedEvents int
	Retry          RetryStats
}

func newHandlerResult(outcome string, appendedEvents int, retry RetryStats) HandlerResult {
	return HandlerResult{
		Outcome:        outcome,
		AppendedEvents: appendedEvents,
		Retry:          retry,
	}
}
