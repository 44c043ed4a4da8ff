package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/muerroui/gsm-ma-achat-simple/internal/config"
	"github.com/muerroui/gsm-ma-achat-simple/internal/db"
	"github.com/muerroui/gsm-ma-achat-simple/internal/logger"
	"github.com/muerroui/gsm-ma-achat-simple/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, db.Options{
		MaxConns:     cfg.DBMaxConns,
		ConnIdleTime: cfg.DBConnIdleTime,
		ConnLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal("apply migrations", zap.Error(err))
	}

	log.Info("migrations applied")
}
