package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"freshstock/internal/catalog"
	"freshstock/internal/config"
	"freshstock/internal/flow"
	"freshstock/internal/httpserver"
	orderrepo "freshstock/internal/repository/order"
	stockrepo "freshstock/internal/repository/stock"
	ordersvc "freshstock/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ledger := stockrepo.NewMemory(catalog.Stock())
	registry := orderrepo.NewRegistry()
	orders := ordersvc.New(ledger, registry)

	srv := httpserver.New(cfg.HTTPAddr, logger, cfg.CORSAllowOrigins, flow.Deps{
		Ledger:   ledger,
		Registry: registry,
		Orders:   orders,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
}
