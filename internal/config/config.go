// Package config provides runtime configuration values for the service.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds configuration knobs for the HTTP server and the store.
type Config struct {
	Port          string
	StoreDriver   string // mongo, postgres or memory
	MongoURI      string
	MongoDB       string
	DatabaseURL   string
	RedisAddr     string // empty disables the list cache
	AllowedOrigin string
	ListCacheTTL  time.Duration
}

// Load collects configuration from the environment with defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE_DRIVER", "mongo")
	v.SetDefault("MONGO_DB", "ekart")
	v.SetDefault("ALLOWED_ORIGIN", "http://localhost:3000")
	v.SetDefault("LIST_CACHE_TTL_SECONDS", 30)

	return Config{
		Port:          v.GetString("PORT"),
		StoreDriver:   v.GetString("STORE_DRIVER"),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDB:       v.GetString("MONGO_DB"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		AllowedOrigin: v.GetString("ALLOWED_ORIGIN"),
		ListCacheTTL:  time.Duration(v.GetInt("LIST_CACHE_TTL_SECONDS")) * time.Second,
	}
}
