package boundedbuffer

// waiter represents one goroutine suspended on a condition. Its ready
// channel is closed exactly once, by signal, to resume the goroutine.
type waiter struct {
	ready chan struct{}
}

// waitq is a FIFO queue of goroutines suspended on one condition
// ("not full" or "not empty"). Waiters are resumed in arrival order,
// which bounds the waiting time of any suspended goroutine.
//
// Every method must be called with the owning buffer's lock held.
type waitq struct {
	waiters []*waiter
}

// enqueue registers the calling goroutine as the newest waiter.
func (q *waitq) enqueue() *waiter {
	w := &waiter{ready: make(chan struct{})}
	q.waiters = append(q.waiters, w)
	return w
}

// signal resumes the oldest waiter, if any. Waking is a hint, not a
// handoff: the resumed goroutine re-checks the predicate under the lock.
func (q *waitq) signal() {
	if len(q.waiters) == 0 {
		return
	}
	w := q.waiters[0]
	q.waiters[0] = nil
	q.waiters = q.waiters[1:]
	close(w.ready)
}

// remove unregisters w after a cancelled wait. It reports false when w
// was already resumed by signal, in which case the caller must forward
// the wakeup so it is not lost.
func (q *waitq) remove(w *waiter) bool {
	for i, cur := range q.waiters {
		if cur == w {
			q.waiters = append(q.waiters[:i], q.waiters[i+1:]...)
			return true
		}
	}
	return false
}
