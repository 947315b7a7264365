package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-boundedbuffer/pkg/boundedbuffer"
	"github.com/huynhanx03/go-boundedbuffer/pkg/runner"
	"github.com/huynhanx03/go-boundedbuffer/pkg/settings"
	"github.com/huynhanx03/go-boundedbuffer/pkg/trace"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := settings.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := trace.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	buf, err := boundedbuffer.New[int](cfg.Buffer.Capacity, boundedbuffer.WithSink(trace.NewZapSink(logger)))
	if err != nil {
		logger.Fatal("create buffer", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := runner.New(buf, cfg.Workload, logger).Run(ctx)
	if err != nil {
		logger.Error("run aborted", zap.Error(err))
	}
	logger.Info("run finished",
		zap.Int64("produced", stats.Produced),
		zap.Int64("consumed", stats.Consumed),
		zap.Int64("produced_sum", stats.ProducedSum),
		zap.Int64("consumed_sum", stats.ConsumedSum),
		zap.Int("remaining", buf.Len()),
	)
}
