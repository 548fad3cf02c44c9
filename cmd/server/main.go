package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/memgame/memory-backend/internal/config"
	"github.com/memgame/memory-backend/internal/httpapi"
	"github.com/memgame/memory-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	st := store.New(cfg.AdminKey, cfg.BoardPairs, logger)
	handler := httpapi.SetupRoutes(st, logger, cfg.AllowedOrigins)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
