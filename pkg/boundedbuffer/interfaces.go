package boundedbuffer

import "context"

// BlockingQueue is a generic interface for fixed-capacity blocking FIFO queues.
type BlockingQueue[T any] interface {
	// Insert appends an item, blocking while the queue is full.
	Insert(item T)

	// Remove pops the oldest item, blocking while the queue is empty.
	Remove() T

	// InsertContext is Insert with cancellation. It returns ctx.Err()
	// if the wait is abandoned before the item is accepted.
	InsertContext(ctx context.Context, item T) error

	// RemoveContext is Remove with cancellation. It returns ctx.Err()
	// if the wait is abandoned before an item is obtained.
	RemoveContext(ctx context.Context) (T, error)

	// TryInsert appends an item without blocking.
	// Returns true if successful, false if the queue is full.
	TryInsert(item T) bool

	// TryRemove pops the oldest item without blocking.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	TryRemove() (T, bool)

	// Len returns the current number of queued items.
	Len() int

	// Cap returns the total capacity of the queue.
	Cap() int
}
