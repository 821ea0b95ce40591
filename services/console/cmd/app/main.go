package main

import (
	"metro-console/pkg/cache"
	"metro-console/pkg/config"
	"metro-console/pkg/logger"
	consoleApp "metro-console/services/console/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	defer func() { _ = log.Sync() }()

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v", err)
			panic(err)
		}
	}

	consoleApp.Run(cfg, log, redisClient)
}
