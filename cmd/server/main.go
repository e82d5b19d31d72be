package main

import (
	"context"

	"github.com/petswipe/petswipe/internal/app"
	"github.com/petswipe/petswipe/internal/cache"
	"github.com/petswipe/petswipe/internal/config"
	"github.com/petswipe/petswipe/internal/db"
	"github.com/petswipe/petswipe/internal/logger"
	"github.com/petswipe/petswipe/internal/server"
	"github.com/petswipe/petswipe/internal/service/messaging"
	"github.com/petswipe/petswipe/internal/service/profile"
	"github.com/petswipe/petswipe/internal/service/swipe"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Seed canned replies and demo profiles before accepting traffic.
	// Idempotent: skipped when the tables already hold rows.
	if err := db.Seed(database); err != nil {
		log.Error("failed to seed", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	// Inject shared dependencies into app context
	appCtx := app.New(cfg, database, redisCache, log)

	registrars := []server.Registrar{
		profile.NewRegistrar(appCtx),
		swipe.NewRegistrar(appCtx),
		messaging.NewRegistrar(appCtx),
	}

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr)

	if err := server.StartHTTPServer(cfg, registrars...); err != nil {
		log.Error("failed to start HTTP server", "err", err)
	}
}
