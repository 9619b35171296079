package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/suugaanle/qaamuus/config"
	"github.com/suugaanle/qaamuus/internal/application"
	"github.com/suugaanle/qaamuus/internal/infrastructure/kvstore"
	"github.com/suugaanle/qaamuus/pkg/helpers"
	"github.com/suugaanle/qaamuus/pkg/mailer"
)

// Seeds the configured backend with the bootstrap accounts and the
// starter dictionary, without starting the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()

	var rdb *redis.Client
	if cfg.StorageBackend == "redis" {
		rdb = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
	}

	store, err := kvstore.Open(ctx, cfg, logger, rdb)
	if err != nil {
		log.Fatalf("failed to init %s store: %v", cfg.StorageBackend, err)
	}
	defer func() { _ = store.Close() }()

	verif := application.NewVerificationService(store, logger, mailer.NewSimulated(logger), cfg.CodeTTL, cfg.MaxCodeAttempts)
	accounts := application.NewAuthService(store, logger, verif)
	dict := application.NewDictionaryService(store, logger, nil, "", nil, "")

	if err := accounts.Bootstrap(ctx); err != nil {
		log.Fatalf("failed to seed accounts: %v", err)
	}
	for _, u := range accounts.AllUsers(ctx) {
		fmt.Printf("account: username=%s email=%s role=%s\n", u.Username, u.Email, u.Role)
	}

	entries := dict.Load(ctx)
	fmt.Printf("dictionary: %d entries in %s store\n", len(entries), cfg.StorageBackend)
}
