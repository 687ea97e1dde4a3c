// Tracks the busiest fixed-length windows in the event stream, both as a
// strict top-N over all completed windows and as a top-N whose reported
// windows are pairwise disjoint.

package analyze

import "time"

// WindowData is a completed window candidate. The total order is
// lexicographic: count first, then start, later start winning ties. Both
// top trackers depend on this order.
type WindowData struct {
	Count int
	Start LogTime
}

func windowDataLess(a, b WindowData) bool {
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Start.Before(b.Start)
}

// WindowCount is one reported busy window.
type WindowCount struct {
	Count int
	Start string // formatted start instant, original offset preserved
}

// BusyWindows consumes completion events from a WindowQueue and maintains
// the overlap-allowed and non-overlapping top-N trackers.
//
// The non-overlap tracker defers the newest candidate in a pending slot:
// events arrive with monotonically increasing start times, so a candidate
// only ever overlaps the most recently deferred one. The slot keeps the
// greatest among overlapping candidates and is committed as soon as a
// disjoint candidate arrives.
type BusyWindows struct {
	window    time.Duration
	queue     *WindowQueue
	overlap   *TopK[WindowData]
	noOverlap *TopK[WindowData]
	pending   *WindowData
}

// NewBusyWindows builds a tracker over windows of the given length keeping
// the topN busiest.
func NewBusyWindows(window time.Duration, topN int) *BusyWindows {
	return &BusyWindows{
		window:    window,
		queue:     NewWindowQueue(window),
		overlap:   NewTopK(topN, windowDataLess),
		noOverlap: NewTopK(topN, windowDataLess),
	}
}

// Update feeds one record's instant through the queue and routes every
// completed window to both trackers.
func (b *BusyWindows) Update(rec *Record) {
	b.observe(rec.Time)
}

func (b *BusyWindows) observe(t LogTime) {
	for _, ev := range b.queue.Push(t) {
		data := WindowData{Count: ev.Count, Start: ev.Start}
		b.overlap.Offer(data)
		b.offerNoOverlap(data)
	}
}

// offerNoOverlap runs the pending-slot algorithm. cand overlaps the pending
// candidate iff cand.Start-W < pending.Start; windows are half-open, so
// exactly W apart is disjoint.
func (b *BusyWindows) offerNoOverlap(cand WindowData) {
	if b.pending != nil && cand.Start.Add(-b.window).Before(b.pending.Start) {
		if windowDataLess(*b.pending, cand) {
			*b.pending = cand
		}
		return
	}
	if b.pending != nil {
		b.noOverlap.Offer(*b.pending)
		b.pending = nil
	}
	if !b.noOverlap.Full() {
		b.pending = &WindowData{Count: cand.Count, Start: cand.Start}
		return
	}
	if min, ok := b.noOverlap.Min(); ok && windowDataLess(min, cand) {
		b.pending = &WindowData{Count: cand.Count, Start: cand.Start}
	}
}

// Finalize drains the windows still in flight by pushing a synthetic
// instant one window past the last record, then commits any deferred
// non-overlap candidate. The queue is left empty. last may be nil when no
// record was ever accepted.
func (b *BusyWindows) Finalize(last *Record) {
	if last == nil {
		return
	}
	b.observe(last.Time.Add(b.window))
	if b.pending != nil {
		b.noOverlap.Offer(*b.pending)
		b.pending = nil
	}
	b.queue.Reset()
}

// QueueLen returns the number of instants still inside the live window.
func (b *BusyWindows) QueueLen() int { return b.queue.Len() }

// Top returns up to topN busiest windows, count descending with later
// starts ranking higher on ties. Windows may overlap.
func (b *BusyWindows) Top() []WindowCount {
	return formatWindows(b.overlap.Descending())
}

// TopNoOverlap returns up to topN busiest pairwise-disjoint windows in the
// same order as Top.
func (b *BusyWindows) TopNoOverlap() []WindowCount {
	return formatWindows(b.noOverlap.Descending())
}

func formatWindows(data []WindowData) []WindowCount {
	out := make([]WindowCount, len(data))
	for i, d := range data {
		out[i] = WindowCount{Count: d.Count, Start: d.Start.Format()}
	}
	return out
}
