// Command throughput measures producer/consumer throughput of the queue
// implementations.
//
// Usage:
//
//	go run ./cmd/throughput -n 10000000 -size 1024 -producers 4 -consumers 4
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/boundedq/internal/queue"
)

type candidate struct {
	name string
	q    queue.Queue[int]
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of items to move")
	size := flag.Int("size", 1024, "queue capacity")
	producers := flag.Int("producers", 1, "number of producer goroutines")
	consumers := flag.Int("consumers", 1, "number of consumer goroutines")
	flag.Parse()

	if *producers < 1 || *consumers < 1 || *iterations < 1 {
		fmt.Fprintln(os.Stderr, "n, producers and consumers must be positive")
		os.Exit(2)
	}

	candidates, err := build(*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Benchmarking bounded queues (%d items, size=%d, %dP/%dC)\n",
		*iterations, *size, *producers, *consumers)
	fmt.Println("─────────────────────────────────────────────────")

	perOp := make([]float64, len(candidates))
	for i, c := range candidates {
		dur := run(c.q, *iterations, *producers, *consumers)
		perOp[i] = float64(dur.Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-14s %v (%.2f ns/item)\n", c.name+":", dur, perOp[i])
	}

	fastest := 0
	for i := range perOp {
		if perOp[i] < perOp[fastest] {
			fastest = i
		}
	}
	fmt.Printf("\n  Fastest: %s\n", candidates[fastest].name)

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput:\n")
	for i, c := range candidates {
		fmt.Printf("  %-14s %.2f M items/sec\n", c.name+":", 1000/perOp[i])
	}
}

func build(size int) ([]candidate, error) {
	ring, err := queue.New[int](size)
	if err != nil {
		return nil, err
	}
	lazy, err := queue.New[int](size, queue.WithLazyBuffer())
	if err != nil {
		return nil, err
	}
	ch, err := queue.NewChannel[int](size)
	if err != nil {
		return nil, err
	}
	return []candidate{
		{"Blocking", ring},
		{"BlockingLazy", lazy},
		{"Channel", ch},
	}, nil
}

// run splits n items across the producers and consumers and returns the
// wall time until every item has been popped.
func run(q queue.Queue[int], n, producers, consumers int) time.Duration {
	var g errgroup.Group
	start := time.Now()

	for p := 0; p < producers; p++ {
		share := split(n, producers, p)
		g.Go(func() error {
			for i := 0; i < share; i++ {
				q.Push(i)
			}
			return nil
		})
	}
	for c := 0; c < consumers; c++ {
		share := split(n, consumers, c)
		g.Go(func() error {
			for i := 0; i < share; i++ {
				q.Pop()
			}
			return nil
		})
	}
	_ = g.Wait()
	return time.Since(start)
}

func split(n, parts, idx int) int {
	share := n / parts
	if idx < n%parts {
		share++
	}
	return share
}
