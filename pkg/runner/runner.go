package runner

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-boundedbuffer/pkg/boundedbuffer"
	"github.com/huynhanx03/go-boundedbuffer/pkg/settings"
	"github.com/huynhanx03/go-boundedbuffer/pkg/trace"
)

// Generator produces the value a producer inserts for its seq-th item.
// producer is 1-based, seq is 0-based.
type Generator func(producer, seq int) int

// SequentialValues is the default generator: each producer inserts a
// distinct contiguous range, so every value in a run is unique.
func SequentialValues(itemsPerProducer int) Generator {
	return func(producer, seq int) int {
		return (producer-1)*itemsPerProducer + seq
	}
}

// Stats summarizes one producer/consumer run.
type Stats struct {
	Produced    int64
	Consumed    int64
	ProducedSum int64
	ConsumedSum int64
}

// Runner drives a shared buffer with a configured number of producer
// and consumer goroutines. It is the session driver: the buffer itself
// stays oblivious to who calls it.
type Runner struct {
	buf *boundedbuffer.Bounded[int]
	cfg settings.Workload
	log *zap.Logger
	gen Generator
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithGenerator overrides the produced values.
func WithGenerator(gen Generator) RunnerOption {
	return func(r *Runner) {
		r.gen = gen
	}
}

// New creates a runner over buf. log may be zap.NewNop() for silent runs.
func New(buf *boundedbuffer.Bounded[int], cfg settings.Workload, log *zap.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		buf: buf,
		cfg: cfg,
		log: log,
		gen: SequentialValues(cfg.ItemsPerProducer),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run spawns the workers and blocks until every produced item has been
// consumed or ctx is cancelled. On a clean run Produced == Consumed,
// ProducedSum == ConsumedSum and the buffer ends empty.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	total := r.cfg.Producers * r.cfg.ItemsPerProducer
	g, ctx := errgroup.WithContext(ctx)

	for p := 1; p <= r.cfg.Producers; p++ {
		p := p
		g.Go(func() error {
			name := fmt.Sprintf("producer-%d", p)
			wctx := trace.WithActor(ctx, name)
			for i := 0; i < r.cfg.ItemsPerProducer; i++ {
				item := r.gen(p, i)
				if err := r.buf.InsertContext(wctx, item); err != nil {
					r.log.Warn("producer stopped", zap.String("actor", name), zap.Error(err))
					return err
				}
				atomic.AddInt64(&stats.Produced, 1)
				atomic.AddInt64(&stats.ProducedSum, int64(item))
			}
			return nil
		})
	}

	for c := 1; c <= r.cfg.Consumers; c++ {
		c := c
		// Spread the total across consumers; the first ones take the remainder.
		count := total / r.cfg.Consumers
		if c <= total%r.cfg.Consumers {
			count++
		}
		g.Go(func() error {
			name := fmt.Sprintf("consumer-%d", c)
			wctx := trace.WithActor(ctx, name)
			for i := 0; i < count; i++ {
				item, err := r.buf.RemoveContext(wctx)
				if err != nil {
					r.log.Warn("consumer stopped", zap.String("actor", name), zap.Error(err))
					return err
				}
				atomic.AddInt64(&stats.Consumed, 1)
				atomic.AddInt64(&stats.ConsumedSum, int64(item))
			}
			return nil
		})
	}

	err := g.Wait()
	return stats, err
}
