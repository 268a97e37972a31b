// Command demo runs paced producers and consumers over one bounded queue,
// logging every push and pop.
//
// Usage:
//
//	go run ./cmd/demo -capacity 2 -items 5 -write-delay 1s -read-delay 1.5s
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/randomizedcoder/boundedq/internal/demo"
	"github.com/randomizedcoder/boundedq/internal/logger"
)

func main() {
	cfg := demo.DefaultConfig()
	logCfg := logger.DefaultConfig()

	flag.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "queue capacity")
	flag.IntVar(&cfg.Items, "items", cfg.Items, "items pushed by each producer")
	flag.IntVar(&cfg.Producers, "producers", cfg.Producers, "number of producers")
	flag.IntVar(&cfg.Consumers, "consumers", cfg.Consumers, "number of consumers")
	flag.StringVar(&cfg.Impl, "impl", cfg.Impl, "queue implementation: blocking, lazy or channel")
	flag.DurationVar(&cfg.WriteDelay, "write-delay", cfg.WriteDelay, "minimum time between pushes per producer")
	flag.DurationVar(&cfg.ReadDelay, "read-delay", cfg.ReadDelay, "minimum time between pops per consumer")
	flag.StringVar(&logCfg.Level, "log-level", logCfg.Level, "log level")
	flag.StringVar(&logCfg.FileName, "log-file", "", "also write JSON logs to this rotating file")
	flag.Parse()

	log, closeLog, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flush := func() {
		_ = log.Sync()
		_ = closeLog()
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := demo.Run(ctx, cfg, log)
	if err != nil {
		log.Error("demo failed", zap.Error(err))
		flush()
		stop()
		os.Exit(1)
	}

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Produced:  %d\n", rep.Produced)
	fmt.Printf("  Consumed:  %d\n", rep.Consumed)
	fmt.Printf("  Sequence:  %v\n", rep.Sequence)
}
