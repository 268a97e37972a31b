package combined_test

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/boundedq/internal/queue"
)

// Sink variables
var sinkInt int

const pipelineSize = 1024

func newBlocking(b *testing.B, size int, opts ...queue.Option) queue.Cancellable[int] {
	q, err := queue.New[int](size, opts...)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

func newChannel(b *testing.B, size int) queue.Cancellable[int] {
	q, err := queue.NewChannel[int](size)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

// pipeline moves b.N items from producers to consumers through q.
// Consumers share the b.N pops between them.
func pipeline(b *testing.B, q queue.Queue[int], producers, consumers int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		n := b.N / producers
		if p < b.N%producers {
			n++
		}
		g.Go(func() error {
			for i := 0; i < n; i++ {
				q.Push(i)
			}
			return nil
		})
	}
	for c := 0; c < consumers; c++ {
		n := b.N / consumers
		if c < b.N%consumers {
			n++
		}
		g.Go(func() error {
			var val int
			for i := 0; i < n; i++ {
				val = q.Pop()
			}
			sinkInt = val
			return nil
		})
	}
	_ = g.Wait()

	b.StopTimer()
}

// ============================================================================
// SPSC: 1 producer -> 1 consumer
// ============================================================================

func BenchmarkPipeline_SPSC_Blocking(b *testing.B) {
	pipeline(b, newBlocking(b, pipelineSize), 1, 1)
}

func BenchmarkPipeline_SPSC_BlockingLazy(b *testing.B) {
	pipeline(b, newBlocking(b, pipelineSize, queue.WithLazyBuffer()), 1, 1)
}

func BenchmarkPipeline_SPSC_Channel(b *testing.B) {
	pipeline(b, newChannel(b, pipelineSize), 1, 1)
}

// ============================================================================
// MPMC: 4 producers -> 4 consumers
// ============================================================================

func BenchmarkPipeline_MPMC_4x4_Blocking(b *testing.B) {
	pipeline(b, newBlocking(b, pipelineSize), 4, 4)
}

func BenchmarkPipeline_MPMC_4x4_Channel(b *testing.B) {
	pipeline(b, newChannel(b, pipelineSize), 4, 4)
}

// ============================================================================
// Tight capacity: every push/pop contends for the same slot
// ============================================================================

func BenchmarkPipeline_Cap1_Blocking(b *testing.B) {
	pipeline(b, newBlocking(b, 1), 1, 1)
}

func BenchmarkPipeline_Cap1_Channel(b *testing.B) {
	pipeline(b, newChannel(b, 1), 1, 1)
}

// ============================================================================
// Context path: same pipeline through PushContext/PopContext
// ============================================================================

func contextPipeline(b *testing.B, q queue.Cancellable[int]) {
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()

	done := make(chan struct{})
	go func() {
		defer close(done)
		var val int
		for i := 0; i < b.N; i++ {
			val, _ = q.PopContext(ctx)
		}
		sinkInt = val
	}()

	for i := 0; i < b.N; i++ {
		_ = q.PushContext(ctx, i)
	}
	<-done

	b.StopTimer()
}

func BenchmarkPipeline_Context_Blocking(b *testing.B) {
	contextPipeline(b, newBlocking(b, pipelineSize))
}

func BenchmarkPipeline_Context_Channel(b *testing.B) {
	contextPipeline(b, newChannel(b, pipelineSize))
}
