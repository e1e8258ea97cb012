package main

import (
	"alcyxob/lesson-planner/internal/config"
	"alcyxob/lesson-planner/internal/logger"
	"alcyxob/lesson-planner/internal/repository"
	"alcyxob/lesson-planner/internal/repository/memory"
	"alcyxob/lesson-planner/internal/repository/mongo"
	"alcyxob/lesson-planner/internal/repository/redis"
	"fmt"
	"strings"
)

// openStore connects the key-value backend selected by store.driver.
func openStore(cfg config.Config, log *logger.Logger) (repository.KVStore, error) {
	switch driver := strings.ToLower(cfg.Store.Driver); driver {
	case "mongo", "mongodb":
		client, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		log.Info("Connected to MongoDB", "database", cfg.Database.Name, "collection", cfg.Database.Collection)
		return mongo.NewMongoKVStore(client, client.Database(cfg.Database.Name), cfg.Database.Collection), nil
	case "redis":
		store, err := redis.NewRedisKVStore(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("Connected to Redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		return store, nil
	case "memory":
		log.Warn("Using in-memory key-value store, data is lost on restart")
		return memory.NewKVStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
