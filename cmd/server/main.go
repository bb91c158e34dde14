package main

import (
	"fmt"
	"os"

	"inventory-portal/internal/config"
	"inventory-portal/internal/database"
	"inventory-portal/internal/hash"
	"inventory-portal/internal/logger"
	"inventory-portal/internal/server"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if cfg.SessionSecret == config.DefaultSessionSecret {
		logger.Warning("SESSION_SECRET not set, using the built-in development secret")
	}
	logger.Infof("running in %s mode", cfg.Mode)

	if err := database.Init(cfg.DBPath); err != nil {
		logger.Errorf("database init: %v", err)
		os.Exit(1)
	}

	if err := database.Seed(hash.ForMode(cfg.Hardened())); err != nil {
		logger.Errorf("database seed: %v", err)
		os.Exit(1)
	}

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Errorf("server error: %v", err)
		os.Exit(1)
	}
}
