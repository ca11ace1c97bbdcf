package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bloghub/blog-platform/internal/api"
	"github.com/bloghub/blog-platform/internal/core/service"
	"github.com/bloghub/blog-platform/internal/infrastructure/config"
	"github.com/bloghub/blog-platform/internal/infrastructure/db/mysql"
	"github.com/bloghub/blog-platform/internal/infrastructure/db/redis"
	"github.com/bloghub/blog-platform/internal/infrastructure/queue"
	"github.com/bloghub/blog-platform/pkg/logger"
)

// @title        Blog Platform API
// @version      1.0
// @description  CRUD API over users and posts with token authentication and role-based visibility.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mysql.Connect(ctx, mysql.Config{DSN: cfg.MySQL.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}
	defer db.Close()

	if err := mysql.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Audit pipeline: post mutations are recorded asynchronously, sharded by
	// post id, deduplicated through Redis.
	auditRepo := mysql.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, redis.NewDedupChecker(rdb), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
