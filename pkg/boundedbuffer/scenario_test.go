package boundedbuffer

import (
	"sync"
	"testing"
	"time"

	"github.com/huynhanx03/go-boundedbuffer/pkg/trace"
)

// recordingSink captures events for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []trace.Event
}

func (s *recordingSink) Emit(ev trace.Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *recordingSink) kinds() []trace.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]trace.Kind, len(s.events))
	for i, ev := range s.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func (s *recordingSink) count(kind trace.Kind) int {
	n := 0
	for _, k := range s.kinds() {
		if k == kind {
			n++
		}
	}
	return n
}

// =============================================================================
// Scenario: single-slot buffer alternates producer and consumer
// =============================================================================

func TestScenario_SingleSlotAlternation(t *testing.T) {
	sink := &recordingSink{}
	b, err := New[int](1, WithSink(sink))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b.Insert(5)
		b.Insert(7) // must block until the consumer takes 5
	}()

	time.Sleep(settleDelay)

	if got := b.Remove(); got != 5 {
		t.Errorf("first Remove() = %d; want 5", got)
	}
	if got := b.Remove(); got != 7 {
		t.Errorf("second Remove() = %d; want 7", got)
	}
	wg.Wait()

	// The second insert found the buffer full and had to suspend.
	if sink.count(trace.ProducerSuspended) == 0 {
		t.Error("expected a producer_suspended event for the second insert")
	}
	if n := sink.count(trace.Inserted); n != 2 {
		t.Errorf("inserted events = %d; want 2", n)
	}
	if n := sink.count(trace.Removed); n != 2 {
		t.Errorf("removed events = %d; want 2", n)
	}
}

// =============================================================================
// Scenario: insert beyond capacity waits for the next remove
// =============================================================================

func TestScenario_InsertBeyondCapacityWaits(t *testing.T) {
	b, err := New[int](3)
	if err != nil {
		t.Fatal(err)
	}

	b.Insert(1)
	b.Insert(2)
	b.Insert(3)

	fourthDone := make(chan struct{})
	go func() {
		b.Insert(4)
		close(fourthDone)
	}()

	select {
	case <-fourthDone:
		t.Fatal("fourth insert completed with the buffer full")
	case <-time.After(settleDelay):
	}

	if got := b.Remove(); got != 1 {
		t.Fatalf("Remove() = %d; want 1", got)
	}

	select {
	case <-fourthDone:
	case <-time.After(completionTimeout):
		t.Fatal("fourth insert did not complete after the remove")
	}

	for _, want := range []int{2, 3, 4} {
		if got := b.Remove(); got != want {
			t.Errorf("Remove() = %d; want %d", got, want)
		}
	}
}

// =============================================================================
// Scenario: balanced two-by-two workload drains clean
// =============================================================================

func TestScenario_BalancedWorkloadDrainsClean(t *testing.T) {
	const (
		producers       = 2
		consumers       = 2
		itemsPerWorker  = 250
		totalOperations = producers * itemsPerWorker
	)

	b, err := New[int](2)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	var insertedSum, removedSum int64
	var mu sync.Mutex

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			local := int64(0)
			for i := 0; i < itemsPerWorker; i++ {
				v := id*itemsPerWorker + i
				b.Insert(v)
				local += int64(v)
			}
			mu.Lock()
			insertedSum += local
			mu.Unlock()
		}(p)
	}

	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := int64(0)
			for i := 0; i < totalOperations/consumers; i++ {
				local += int64(b.Remove())
			}
			mu.Lock()
			removedSum += local
			mu.Unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("workload deadlocked")
	}

	if insertedSum != removedSum {
		t.Errorf("inserted sum %d != removed sum %d", insertedSum, removedSum)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d; want 0 at completion", b.Len())
	}
}
