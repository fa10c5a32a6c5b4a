package sim

// FIFOPush is a scheduled enqueue of data, attributed to pusher.
type FIFOPush[T any] struct {
	cycle  int
	data   T
	pusher string
}

func NewFIFOPush[T any](cycle int, data T, pusher string) FIFOPush[T] {
	return FIFOPush[T]{cycle: cycle, data: data, pusher: pusher}
}

func (p FIFOPush[T]) Cycle() int     { return p.cycle }
func (p FIFOPush[T]) Pusher() string { return p.pusher }

// FIFOPop is a scheduled dequeue, attributed to pusher.
type FIFOPop struct {
	cycle  int
	pusher string
}

func NewFIFOPop(cycle int, pusher string) FIFOPop {
	return FIFOPop{cycle: cycle, pusher: pusher}
}

func (p FIFOPop) Cycle() int     { return p.cycle }
func (p FIFOPop) Pusher() string { return p.pusher }

// FIFO is an in-order buffer with two exclusive event queues, one for
// pushes and one for pops. Tick drains at most one pop and then at
// most one push per cycle, pop first: matches spec §4.11's "pop before
// push" ordering so a push that lands the same cycle a pop drains
// never overtakes it. Mirrors
// tools/rust-sim-runtime/src/runtime/xeq.rs's `FIFO<T>`.
type FIFO[T any] struct {
	Payload []T
	push    *XEQ[FIFOPush[T]]
	pop     *XEQ[FIFOPop]
}

// NewFIFO returns an empty FIFO.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{push: NewXEQ[FIFOPush[T]](), pop: NewXEQ[FIFOPop]()}
}

// IsEmpty reports whether the buffer currently holds no element.
func (f *FIFO[T]) IsEmpty() bool { return len(f.Payload) == 0 }

// Front returns the head element, if any.
func (f *FIFO[T]) Front() (T, bool) {
	var zero T
	if f.IsEmpty() {
		return zero, false
	}
	return f.Payload[0], true
}

// SchedulePush schedules an enqueue of data at cycle.
func (f *FIFO[T]) SchedulePush(cycle int, data T, pusher string, sink FailureSink) {
	f.push.Push(NewFIFOPush(cycle, data, pusher), sink)
}

// SchedulePop schedules a dequeue at cycle.
func (f *FIFO[T]) SchedulePop(cycle int, pusher string, sink FailureSink) {
	f.pop.Push(NewFIFOPop(cycle, pusher), sink)
}

// Tick drains this cycle's due pop (if the buffer is non-empty), then
// this cycle's due push.
func (f *FIFO[T]) Tick(cycle int) {
	if _, ok := f.pop.Pop(cycle); ok && !f.IsEmpty() {
		f.Payload = f.Payload[1:]
	}
	if push, ok := f.push.Pop(cycle); ok {
		f.Payload = append(f.Payload, push.data)
	}
}
