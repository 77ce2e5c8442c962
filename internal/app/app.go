// Package app runs one demo service: it builds the dataset and router,
// serves HTTP until the context ends and then shuts down gracefully.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ariefcatur/demo-backends/internal/config"
	"github.com/ariefcatur/demo-backends/internal/events"
	"github.com/ariefcatur/demo-backends/internal/httpx"
	kafkax "github.com/ariefcatur/demo-backends/internal/kafka"
)

// Run serves res on cfg.HTTPAddr. The dataset behind res is already built,
// so it exists before the listener accepts anything.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger, res httpx.Resource) error {
	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, cfg, log, res)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, ln net.Listener, cfg config.Config, log *slog.Logger, res httpx.Resource) error {
	pubCtx, stopPub := context.WithCancel(context.Background())
	defer stopPub()
	pub, closePub := newPublisher(pubCtx, cfg, log)
	defer closePub()

	router := httpx.NewServiceRouter(httpx.Options{
		Service:       cfg.ServiceName,
		Version:       cfg.Version,
		Log:           log,
		Publisher:     pub,
		WSIdleTimeout: cfg.WSIdleTimeout,
	}, res)
	srv := &http.Server{Handler: router, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func newPublisher(ctx context.Context, cfg config.Config, log *slog.Logger) (events.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		return events.Discard{}, func() {}
	}
	prod := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicSnapshotServed, 1024, log)
	prod.Start(ctx)
	log.Info("publishing snapshot events", "brokers", cfg.KafkaBrokers, "topic", events.TopicSnapshotServed)
	return events.KafkaPublisher{Producer: prod}, func() {
		prod.Close()
		prod.WaitClosed()
	}
}
