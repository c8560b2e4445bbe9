package main

import (
	"context"
	"log"

	"github.com/flowpad-app/flowpad-backend/config"
	"github.com/flowpad-app/flowpad-backend/internal/auth/token"
	"github.com/flowpad-app/flowpad-backend/internal/bootstrap"
	"github.com/flowpad-app/flowpad-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "flowpad-backend",
		Version:     cfg.App.Version,
		DB:          db,
		Tokens:      token.New(cfg.Auth.SecretKey, cfg.Auth.TokenTTL),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
