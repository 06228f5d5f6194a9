package eventstore

import (
	"slices"
	"time"
)

// FilterEventTypeString is an alias type for an event type used in a Filter.
type FilterEventTypeString = string

// Filter describes which events of one case stream a query should return.
//
// A filter always targets exactly one case stream; event types and the
// occurred-at range are optional narrowing criteria. Command handlers replay
// the full stream and therefore use the bare case filter; read-side
// projections may narrow by event type.
type Filter struct {
	caseID        CaseIDString
	eventTypes    []FilterEventTypeString
	occurredFrom  time.Time
	occurredUntil time.Time
}

// CaseID returns the case stream this filter targets.
func (f Filter) CaseID() CaseIDString {
	return f.caseID
}

// EventTypes returns the event types this filter narrows to, empty meaning all.
func (f Filter) EventTypes() []FilterEventTypeString {
	return f.eventTypes
}

// OccurredFrom returns the inclusive lower bound of the occurred-at range, zero meaning unbounded.
func (f Filter) OccurredFrom() time.Time {
	return f.occurredFrom
}

// OccurredUntil returns the inclusive upper bound of the occurred-at range, zero meaning unbounded.
func (f Filter) OccurredUntil() time.Time {
	return f.occurredUntil
}

// FilterBuilder accumulates filter criteria for one case stream.
type FilterBuilder struct {
	filter Filter
}

// BuildCaseStreamFilter starts a FilterBuilder for the given case stream.
// The builder must eventually be finalized with Finalize().
func BuildCaseStreamFilter(caseID CaseIDString) *FilterBuilder {
	return &FilterBuilder{filter: Filter{caseID: caseID}}
}

// AnyEventTypeOf narrows the filter to one or multiple event types.
//
// It sanitizes the input:
//   - removing empty event types ("")
//   - sorting the event types
//   - removing duplicate event types
func (fb *FilterBuilder) AnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) *FilterBuilder {

	allEventTypes := append([]FilterEventTypeString{eventType}, eventTypes...)
	allEventTypes = slices.DeleteFunc(
		allEventTypes,
		func(e FilterEventTypeString) bool {
			return e == ""
		})
	slices.Sort(allEventTypes)
	allEventTypes = slices.Compact(allEventTypes)
	allEventTypes = slices.Clip(allEventTypes)

	fb.filter.eventTypes = append(fb.filter.eventTypes, allEventTypes...)

	return fb
}

// OccurredFrom sets the inclusive lower bound of the occurred-at range.
func (fb *FilterBuilder) OccurredFrom(t time.Time) *FilterBuilder {
	fb.filter.occurredFrom = t

	return fb
}

// OccurredUntil sets the inclusive upper bound of the occurred-at range.
func (fb *FilterBuilder) OccurredUntil(t time.Time) *FilterBuilder {
	fb.filter.occurredUntil = t

	return fb
}

// Finalize returns the Filter. It returns an error if the case identifier is empty.
func (fb *FilterBuilder) Finalize() (Filter, error) {
	if fb.filter.caseID == "" {
		return Filter{}, ErrEmptyCaseID
	}

	return fb.filter, nil
}
