package sim

import (
	"fmt"
	"sort"
)

// Cycled is carried by every event type an XEQ can hold: the cycle it
// is scheduled for, and the name of the IR site that scheduled it
// (quoted in a collision diagnostic) — mirrors
// tools/rust-sim-runtime/src/runtime/xeq.rs's `Cycled` trait.
type Cycled interface {
	Cycle() int
	Pusher() string
}

// XEQ is an exclusive event queue: an ordered map from cycle to a
// single event. Push fails fatally, via sink, if an event already
// exists at the new event's cycle, quoting both events' pushers. Pop
// returns the earliest event whose cycle is at most current, else
// false. Mirrors tools/rust-sim-runtime/src/runtime/xeq.rs's `XEQ<T>`.
type XEQ[T Cycled] struct {
	events map[int]T
	order  []int // ascending cycle keys
}

// NewXEQ returns an empty exclusive event queue.
func NewXEQ[T Cycled]() *XEQ[T] {
	return &XEQ[T]{events: make(map[int]T)}
}

// Push schedules event, aborting via sink if its cycle is already
// occupied.
func (q *XEQ[T]) Push(event T, sink FailureSink) {
	c := event.Cycle()
	if existing, ok := q.events[c]; ok {
		sink.Fatal(fmt.Sprintf("%s: already occupied by %s, cannot accept %s",
			Cyclize(c), existing.Pusher(), event.Pusher()))
		return
	}
	q.events[c] = event
	at := sort.SearchInts(q.order, c)
	q.order = append(q.order, 0)
	copy(q.order[at+1:], q.order[at:])
	q.order[at] = c
}

// Pop removes and returns the earliest event at or before current, if
// any.
func (q *XEQ[T]) Pop(current int) (T, bool) {
	var zero T
	if len(q.order) == 0 || q.order[0] > current {
		return zero, false
	}
	c := q.order[0]
	q.order = q.order[1:]
	e := q.events[c]
	delete(q.events, c)
	return e, true
}

// Len reports how many events remain queued.
func (q *XEQ[T]) Len() int { return len(q.order) }

// Cyclize renders an absolute cycle stamp as "Cycle @<cycle>.<half>",
// splitting stamp into a whole cycle and a sub-cycle "half" counted in
// hundredths — mirrors
// tools/rust-sim-runtime/src/runtime/utils.rs's `cyclize`.
func Cyclize(stamp int) string {
	return fmt.Sprintf("Cycle @%d.%02d", stamp/100, stamp%100)
}
