package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/tarunbommali/ekart/internal/config"
	"github.com/tarunbommali/ekart/internal/db"
	api "github.com/tarunbommali/ekart/internal/http"
	"github.com/tarunbommali/ekart/internal/http/handlers"
	"github.com/tarunbommali/ekart/internal/http/ratelimit"
	"github.com/tarunbommali/ekart/internal/obs"
	"github.com/tarunbommali/ekart/internal/redissvc"
	"github.com/tarunbommali/ekart/internal/repo"
)

// @title Ekart Product API
// @version 1.0
// @description REST API for managing catalog products.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()
	ctx := context.Background()

	productRepo, cleanup, err := newProductRepo(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Could not connect to store:", err)
	}
	defer cleanup()
	handlers.SetProductRepo(productRepo)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetListCache(redissvc.NewListCache(rdb, cfg.ListCacheTTL))
	}

	go ratelimit.StartCleanupLoop(ctx)

	h := api.NewServerHandler(cfg.AllowedOrigin)
	obs.Logger.Info("server_running", "port", cfg.Port, "store", cfg.StoreDriver)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		log.Fatal(err)
	}
}

func newProductRepo(ctx context.Context, cfg config.Config) (repo.ProductRepository, func(), error) {
	switch cfg.StoreDriver {
	case "mongo":
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return repo.NewMongoProductRepository(client.Database(cfg.MongoDB)), cleanup, nil
	case "postgres":
		database, err := db.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresProductRepository(database), func() { database.Close() }, nil
	case "memory":
		return repo.NewInMemoryProductRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
