// Package demo runs paced producers and consumers over one bounded queue
// and logs every transfer.
package demo

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/randomizedcoder/boundedq/internal/queue"
)

// Report summarizes a run. Sequence holds popped items in the order the
// consumers recorded them.
type Report struct {
	Produced int
	Consumed int
	Sequence []int
}

// NewQueue builds the queue named by cfg.Impl.
func NewQueue(cfg Config) (queue.Cancellable[int], error) {
	switch cfg.Impl {
	case ImplBlocking:
		return queue.New[int](cfg.Capacity)
	case ImplLazy:
		return queue.New[int](cfg.Capacity, queue.WithLazyBuffer())
	case ImplChannel:
		return queue.NewChannel[int](cfg.Capacity)
	}
	return nil, errors.Errorf("demo: unknown queue implementation %q", cfg.Impl)
}

// Run pushes Items values from each producer and pops the same total across
// the consumers. Producer p pushes p*Items+1 .. p*Items+Items. Run returns
// when every item has been transferred or ctx is done; on cancellation the
// returned Report covers the work finished so far.
func Run(ctx context.Context, cfg Config, log *zap.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	q, err := NewQueue(cfg)
	if err != nil {
		return Report{}, err
	}

	r := &runner{
		q:   q,
		cfg: cfg,
		log: log,
	}
	r.remaining.Store(int64(cfg.Total()))

	log.Info("demo starting",
		zap.String("impl", cfg.Impl),
		zap.Int("capacity", q.Size()),
		zap.Int("producers", cfg.Producers),
		zap.Int("consumers", cfg.Consumers),
		zap.Int("items", cfg.Total()),
	)

	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < cfg.Producers; p++ {
		g.Go(func() error { return r.produce(gctx, p) })
	}
	for c := 0; c < cfg.Consumers; c++ {
		g.Go(func() error { return r.consume(gctx, c) })
	}
	err = g.Wait()

	rep := r.report()
	log.Info("demo finished",
		zap.Int("produced", rep.Produced),
		zap.Int("consumed", rep.Consumed),
		zap.Int("left", q.Count()),
		zap.Error(err),
	)
	return rep, err
}

type runner struct {
	q   queue.Cancellable[int]
	cfg Config
	log *zap.Logger

	produced  atomic.Int64
	remaining atomic.Int64 // pops not yet claimed by a consumer

	mu  sync.Mutex
	seq []int
}

func (r *runner) produce(ctx context.Context, id int) error {
	lim := limiter(r.cfg.WriteDelay)
	base := id * r.cfg.Items
	for i := 1; i <= r.cfg.Items; i++ {
		if err := lim.Wait(ctx); err != nil {
			return errors.Wrapf(err, "producer %d", id)
		}
		v := base + i
		if err := r.q.PushContext(ctx, v); err != nil {
			return errors.Wrapf(err, "producer %d: push %d", id, v)
		}
		r.produced.Add(1)
		r.log.Info("pushed",
			zap.Int("producer", id),
			zap.Int("item", v),
			zap.Int("count", r.q.Count()),
		)
	}
	return nil
}

func (r *runner) consume(ctx context.Context, id int) error {
	lim := limiter(r.cfg.ReadDelay)
	for r.remaining.Add(-1) >= 0 {
		if err := lim.Wait(ctx); err != nil {
			return errors.Wrapf(err, "consumer %d", id)
		}
		v, err := r.q.PopContext(ctx)
		if err != nil {
			return errors.Wrapf(err, "consumer %d: pop", id)
		}
		r.record(v)
		r.log.Info("popped",
			zap.Int("consumer", id),
			zap.Int("item", v),
			zap.Int("count", r.q.Count()),
		)
	}
	return nil
}

func (r *runner) record(v int) {
	r.mu.Lock()
	r.seq = append(r.seq, v)
	r.mu.Unlock()
}

func (r *runner) report() Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	seq := make([]int, len(r.seq))
	copy(seq, r.seq)
	return Report{
		Produced: int(r.produced.Load()),
		Consumed: len(seq),
		Sequence: seq,
	}
}

func limiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
