package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ariefcatur/demo-backends/internal/app"
	"github.com/ariefcatur/demo-backends/internal/config"
	"github.com/ariefcatur/demo-backends/internal/httpx"
	"github.com/ariefcatur/demo-backends/internal/obs"
	"github.com/ariefcatur/demo-backends/internal/products"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load("products", ":8092")
	log := obs.NewLogger(cfg.ServiceName, cfg.LogLevel)

	repo := products.MustSeedRepo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, log, &httpx.ProductsHandler{Repo: repo}); err != nil {
		log.Error("server stopped", "err", err)
		stop()
		os.Exit(1)
	}
}
