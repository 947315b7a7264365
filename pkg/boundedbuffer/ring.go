package boundedbuffer

// ring is a fixed-capacity FIFO ring of items. Unlike a byte ring it
// never grows: full is a state the caller must handle, not a trigger
// for reallocation. It is not safe for concurrent use; Bounded only
// touches it while holding its lock.
type ring[T any] struct {
	slots    []T
	capacity int
	readPos  int // next position to pop from
	writePos int // next position to push to
	size     int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{
		slots:    make([]T, capacity),
		capacity: capacity,
	}
}

// push appends item at the tail. The caller must ensure the ring is not full.
func (r *ring[T]) push(item T) {
	r.slots[r.writePos] = item
	r.writePos++
	if r.writePos == r.capacity {
		r.writePos = 0
	}
	r.size++
}

// pop removes and returns the head item. The caller must ensure the
// ring is not empty. The vacated slot is zeroed so popped items do not
// pin memory.
func (r *ring[T]) pop() T {
	var zero T
	item := r.slots[r.readPos]
	r.slots[r.readPos] = zero
	r.readPos++
	if r.readPos == r.capacity {
		r.readPos = 0
	}
	r.size--
	return item
}

func (r *ring[T]) len() int { return r.size }

func (r *ring[T]) cap() int { return r.capacity }

func (r *ring[T]) full() bool { return r.size == r.capacity }

func (r *ring[T]) empty() bool { return r.size == 0 }
