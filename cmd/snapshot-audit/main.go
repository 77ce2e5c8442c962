package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ariefcatur/demo-backends/internal/audit"
	"github.com/ariefcatur/demo-backends/internal/config"
	"github.com/ariefcatur/demo-backends/internal/events"
	kafkax "github.com/ariefcatur/demo-backends/internal/kafka"
	"github.com/ariefcatur/demo-backends/internal/obs"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadAudit()
	log := obs.NewLogger("snapshot-audit", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := &audit.Service{Log: log}
	c := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.Group, events.TopicSnapshotServed, cfg.Workers, log)

	log.Info("consuming", "topic", events.TopicSnapshotServed, "group", cfg.Group, "workers", cfg.Workers)
	if err := c.Start(ctx, svc.HandleSnapshotServed); err != nil {
		log.Error("consumer stopped", "err", err)
		stop()
		os.Exit(1)
	}
	log.Info("bye")
}
