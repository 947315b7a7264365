package trace

import (
	"context"
)

// Kind identifies a buffer lifecycle event.
type Kind uint8

const (
	// ProducerSuspended fires when an insert finds the buffer full and the
	// calling goroutine is about to suspend.
	ProducerSuspended Kind = iota + 1
	// Inserted fires after an item has been appended to the buffer.
	Inserted
	// ConsumerSuspended fires when a remove finds the buffer empty and the
	// calling goroutine is about to suspend.
	ConsumerSuspended
	// Removed fires after an item has been popped from the buffer.
	Removed
)

// String returns the event name used in diagnostic output.
func (k Kind) String() string {
	switch k {
	case ProducerSuspended:
		return "producer_suspended"
	case Inserted:
		return "inserted"
	case ConsumerSuspended:
		return "consumer_suspended"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event describes one observable buffer transition.
type Event struct {
	Kind  Kind
	Actor string // worker label from the context, empty when untagged
	Item  any    // item involved; nil for suspension events
	Size  int    // buffer length observed when the event fired
}

// Sink receives buffer events. Implementations must be safe for
// concurrent use; Emit is called while the buffer lock is held, so
// implementations should not call back into the buffer.
type Sink interface {
	Emit(Event)
}

// Nop is a Sink that discards every event.
type Nop struct{}

// Emit implements Sink.
func (Nop) Emit(Event) {}

type actorKey struct{}

// WithActor returns a context tagged with a worker label. The label shows
// up as the Actor field on events emitted for operations using this context.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey{}, name)
}

// Actor returns the worker label carried by ctx, or "" when untagged.
func Actor(ctx context.Context) string {
	name, _ := ctx.Value(actorKey{}).(string)
	return name
}
