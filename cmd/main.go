package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lwenger/vocatrain/internal/cli"
	"github.com/lwenger/vocatrain/internal/config"
	"github.com/lwenger/vocatrain/internal/importer"
	"github.com/lwenger/vocatrain/internal/repository"
	"github.com/lwenger/vocatrain/internal/service"
	"github.com/lwenger/vocatrain/internal/storage/db"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	var repo service.StoreRI
	switch cfg.Storage.Backend {
	case "sqlite":
		sqlDB, err := db.InitDB(cfg.Storage.SQLite)
		if err != nil {
			logger.Fatal("failed init db", zap.Error(err))
		}
		repo = repository.NewSQLiteStore(sqlDB)
	default:
		repo = repository.NewJSONStore(cfg.Storage.JSON.Path)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	services := service.InitServices(repo, importer.New(importer.DocxParser{}), rng, logger)

	ctx := context.Background()
	services.Load(ctx)
	services.EnsureBuiltin(ctx)

	handler := cli.New(cfg, services, logger)
	if err := handler.RootCommand().Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
