package main

import (
	"context"
	"log"

	"github.com/braetspilscafeen/go-catalog-backend/config"
	"github.com/braetspilscafeen/go-catalog-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	fb, err := bootstrap.OpenFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer fb.Firestore.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	r, scheduler := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "cafe-games-catalog",
		Config:      cfg,
		AuthClient:  fb.Auth,
		Firestore:   fb.Firestore,
		Redis:       rdb,
	})

	if err := scheduler.Start(cfg.App.StatsSpec); err != nil {
		log.Fatalf("stats scheduler: %v", err)
	}
	defer scheduler.Stop()

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
