package boundedbuffer

import (
	"context"
	"sync"

	"github.com/huynhanx03/go-boundedbuffer/pkg/trace"
)

var _ BlockingQueue[int] = (*Bounded[int])(nil)

// Bounded is a fixed-capacity FIFO buffer shared by producer and
// consumer goroutines. Insert blocks while the buffer is full, Remove
// blocks while it is empty. All state is guarded by a single mutex;
// suspended goroutines park on per-condition FIFO wait queues and are
// resumed one at a time, oldest first.
type Bounded[T any] struct {
	mu       sync.Mutex
	items    *ring[T]
	notFull  waitq // producers waiting for len < cap
	notEmpty waitq // consumers waiting for len > 0
	sink     trace.Sink
}

// Option configures a Bounded buffer.
type Option func(*options)

type options struct {
	sink trace.Sink
}

// WithSink routes buffer events to the given sink instead of discarding them.
func WithSink(sink trace.Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// New creates a buffer holding at most capacity items.
// Returns ErrInvalidCapacity if capacity is not positive.
func New[T any](capacity int, opts ...Option) (*Bounded[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	o := options{sink: trace.Nop{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &Bounded[T]{
		items: newRing[T](capacity),
		sink:  o.sink,
	}, nil
}

// Insert appends item at the tail, suspending the calling goroutine
// while the buffer is full.
func (b *Bounded[T]) Insert(item T) {
	// Background context: the wait cannot be cancelled, so the only
	// outcome is acceptance.
	_ = b.InsertContext(context.Background(), item)
}

// InsertContext appends item at the tail, suspending while the buffer
// is full. If ctx is cancelled during the wait the item is not inserted
// and ctx.Err() is returned; the buffer remains intact and usable.
func (b *Bounded[T]) InsertContext(ctx context.Context, item T) error {
	b.mu.Lock()
	for b.items.full() {
		b.sink.Emit(trace.Event{
			Kind:  trace.ProducerSuspended,
			Actor: trace.Actor(ctx),
			Size:  b.items.len(),
		})
		if err := b.wait(ctx, &b.notFull); err != nil {
			return err
		}
		// Re-check the predicate: the slot freed by the wakeup may have
		// been claimed by a non-blocking insert in the meantime.
	}

	b.items.push(item)
	b.sink.Emit(trace.Event{
		Kind:  trace.Inserted,
		Actor: trace.Actor(ctx),
		Item:  item,
		Size:  b.items.len(),
	})
	b.notEmpty.signal()
	b.mu.Unlock()
	return nil
}

// Remove pops the head item, suspending the calling goroutine while the
// buffer is empty. The returned item is always the oldest queued one.
func (b *Bounded[T]) Remove() T {
	item, _ := b.RemoveContext(context.Background())
	return item
}

// RemoveContext pops the head item, suspending while the buffer is
// empty. If ctx is cancelled during the wait no item is removed and
// ctx.Err() is returned.
func (b *Bounded[T]) RemoveContext(ctx context.Context) (T, error) {
	b.mu.Lock()
	for b.items.empty() {
		b.sink.Emit(trace.Event{
			Kind:  trace.ConsumerSuspended,
			Actor: trace.Actor(ctx),
			Size:  b.items.len(),
		})
		if err := b.wait(ctx, &b.notEmpty); err != nil {
			var zero T
			return zero, err
		}
	}

	item := b.items.pop()
	b.sink.Emit(trace.Event{
		Kind:  trace.Removed,
		Actor: trace.Actor(ctx),
		Item:  item,
		Size:  b.items.len(),
	})
	b.notFull.signal()
	b.mu.Unlock()
	return item, nil
}

// wait suspends the calling goroutine on q until it is signalled or ctx
// is cancelled. It is called with the lock held and returns with the
// lock held on success. On cancellation the lock is released and
// ctx.Err() returned; a wakeup that raced with the cancellation is
// forwarded to the next waiter so it is never lost.
func (b *Bounded[T]) wait(ctx context.Context, q *waitq) error {
	w := q.enqueue()
	b.mu.Unlock()

	select {
	case <-w.ready:
		b.mu.Lock()
		return nil
	case <-ctx.Done():
		b.mu.Lock()
		if !q.remove(w) {
			// Signalled between cancellation and cleanup: pass the
			// wakeup on instead of dropping it.
			q.signal()
		}
		b.mu.Unlock()
		return ctx.Err()
	}
}

// TryInsert appends item without blocking. Returns false if the buffer is full.
func (b *Bounded[T]) TryInsert(item T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.items.full() {
		return false
	}

	b.items.push(item)
	b.sink.Emit(trace.Event{Kind: trace.Inserted, Item: item, Size: b.items.len()})
	b.notEmpty.signal()
	return true
}

// TryRemove pops the head item without blocking. Returns false if the
// buffer is empty.
func (b *Bounded[T]) TryRemove() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.items.empty() {
		var zero T
		return zero, false
	}

	item := b.items.pop()
	b.sink.Emit(trace.Event{Kind: trace.Removed, Item: item, Size: b.items.len()})
	b.notFull.signal()
	return item, true
}

// Len returns the current number of buffered items.
func (b *Bounded[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items.len()
}

// Cap returns the buffer capacity.
func (b *Bounded[T]) Cap() int {
	return b.items.cap()
}
