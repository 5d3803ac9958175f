package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloom-cafe/api/internal/cart"
	"github.com/bloom-cafe/api/internal/config"
	"github.com/bloom-cafe/api/internal/router"
	"github.com/bloom-cafe/api/internal/service"
	"github.com/bloom-cafe/api/internal/staff"
	"github.com/bloom-cafe/api/internal/store"
	"github.com/bloom-cafe/api/internal/store/localfile"
	"github.com/bloom-cafe/api/internal/store/postgres"
	"github.com/bloom-cafe/api/internal/ws"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Select the store backend. Postgres is the canonical shared store;
	// the file store keeps a single instance running without a database.
	var st store.Store
	switch cfg.StoreDriver {
	case "postgres":
		pg, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pg.Close()
		st = pg
		log.Println("Connected to database")
	case "file":
		lf, err := localfile.New(cfg.DataDir)
		if err != nil {
			log.Fatalf("Unable to open data directory: %v", err)
		}
		st = lf
		log.Printf("Using file store in %s", cfg.DataDir)
	default:
		log.Fatalf("Unknown STORE_DRIVER %q (want postgres or file)", cfg.StoreDriver)
	}

	hub := ws.NewHub()
	go hub.Run()

	// The dashboard pushes a refresh hint to staff clients after every
	// reload, so every connected view converges on the store's state.
	dash := staff.New(st, func(c store.Collection) {
		hub.Broadcast(ws.CollectionChanged(c))
	})
	if err := dash.Start(ctx); err != nil {
		log.Fatalf("Unable to load dashboard: %v", err)
	}
	defer dash.Stop()

	sessions := cart.NewManager()
	orders := service.NewOrderService(st)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router.New(cfg, sessions, orders, dash, st, hub),
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: shutdown: %v", err)
	}
}
