package main

import (
	"context"
	"log"

	"bookshelf/cache"
	"bookshelf/config"
	"bookshelf/db"
	"bookshelf/library"
	"bookshelf/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	storage, err := db.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("storage %s: %v", cfg.StorageDriver, err)
	}

	cacher, err := cache.Open(cfg)
	if err != nil {
		log.Fatalf("activity cache %s: %v", cfg.ActivityDriver, err)
	}

	s := service.NewService(library.NewLibrary(storage), cacher)
	routes := service.SetupRoutes(s)

	log.Printf("Starting server on %s with %s storage", cfg.Addr(), cfg.StorageDriver)
	if err := routes.Run(cfg.Addr()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
