package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"wahibashop/internal/catalog"
	"wahibashop/internal/config"
	"wahibashop/internal/db"
	"wahibashop/internal/redisx"
	"wahibashop/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	store := catalog.New(pool, rdb, logger)
	if err := store.SeedDefaults(ctx, seed.Defaults()); err != nil {
		logger.Fatalf("seed defaults: %v", err)
	}

	logger.Println("seed applied")
}
