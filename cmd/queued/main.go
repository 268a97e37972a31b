// Command queued serves a bounded blocking queue over HTTP.
//
// Usage:
//
//	go run ./cmd/queued -addr :8080 -capacity 16
//
//	curl -XPOST localhost:8080/v1/items -d '{"value":"a"}'
//	curl 'localhost:8080/v1/items/next?timeout=5s'
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/randomizedcoder/boundedq/internal/logger"
	"github.com/randomizedcoder/boundedq/internal/server"
)

func main() {
	cfg := server.DefaultConfig()
	logCfg := logger.DefaultConfig()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "queue capacity")
	flag.BoolVar(&cfg.Lazy, "lazy", cfg.Lazy, "grow the buffer on demand instead of preallocating")
	flag.DurationVar(&cfg.MaxWait, "max-wait", cfg.MaxWait, "longest a request may block (0 = until the client gives up)")
	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown limit")
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

	gin.SetMode(gin.ReleaseMode)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("config", zap.Error(err))
		flush()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped", zap.Error(err))
		flush()
		stop()
		os.Exit(1)
	}
}
