package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wahibashop/internal/cartstore"
	"wahibashop/internal/catalog"
	"wahibashop/internal/config"
	"wahibashop/internal/db"
	"wahibashop/internal/events"
	"wahibashop/internal/httpserver"
	"wahibashop/internal/kafka"
	"wahibashop/internal/order"
	"wahibashop/internal/redisx"
	"wahibashop/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	rdb := redisx.New(cfg.RedisAddr)
	if err := redisx.Ping(ctx, rdb); err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer rdb.Close()

	store := catalog.New(dbpool, rdb, logger)

	// Seed before serving so the first reader never races first init.
	seeds := seed.Defaults()
	if err := store.SeedDefaults(ctx, seeds); err != nil {
		logger.Fatalf("seed defaults: %v", err)
	}
	store.Start(ctx)
	defer store.Close()

	producer := kafka.NewProducer(cfg.KafkaBrokers, events.TopicOrderCreated, 256, logger)
	producer.Start()

	carts := cartstore.New(rdb)
	publisher := events.NewPublisher(producer, cfg.ServiceName, logger)
	orderService := order.NewService(carts, store, publisher, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Store:   store,
		Carts:   carts,
		Orders:  orderService,
		Seeds:   seeds,
		Origins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("received shutdown signal")
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}

	// Producer outlives the server so requests drained during
	// shutdown can still publish their events.
	producer.Close()
}
