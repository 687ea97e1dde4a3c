// Implements the WindowQueue, the sliding deque of event instants inside
// the live fixed-length window. Advancing past the head emits
// window-completion events consumed by the busy-window trackers.

package analyze

import "time"

// WindowEvent reports a completed window: Start is the instant of the event
// that opened it, Count the number of events that were inside
// [Start, Start+W) when it closed.
type WindowEvent struct {
	Count int
	Start LogTime
}

// WindowQueue is a FIFO of event instants no older than one window length
// before the most recent push.
type WindowQueue struct {
	window time.Duration
	times  []LogTime
}

// NewWindowQueue builds an empty queue over a window of the given length.
func NewWindowQueue(window time.Duration) *WindowQueue {
	return &WindowQueue{window: window}
}

// Len returns the number of instants currently inside the live window.
func (q *WindowQueue) Len() int { return len(q.times) }

// Push appends t and, when t has moved past the head window, pops every
// instant at or before t-W, emitting one completion event per distinct
// popped instant. Runs of equal instants at the head coalesce into the
// event for the last of the run, which carries their count. The window
// still in flight emits nothing.
func (q *WindowQueue) Push(t LogTime) []WindowEvent {
	q.times = append(q.times, t)

	// The head window closes at head+W; an event exactly on the boundary
	// closes it.
	if t.Before(q.times[0].Add(q.window)) {
		return nil
	}

	var events []WindowEvent
	cutoff := t.Add(-q.window)
	coalesced := 0
	for len(q.times) > 1 && !q.times[0].After(cutoff) {
		head := q.times[0]
		q.times = q.times[1:]
		if head.Equal(q.times[0]) {
			coalesced++
			continue
		}
		events = append(events, WindowEvent{Count: len(q.times) + coalesced, Start: head})
		coalesced = 0
	}
	return events
}

// Reset drops every queued instant.
func (q *WindowQueue) Reset() { q.times = nil }
